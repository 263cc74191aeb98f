package request

import (
	"testing"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
)

func TestOrderRequest_ToInput(t *testing.T) {
	r := OrderRequest{
		Client:           "Maria",
		City:             "Rio de Janeiro",
		State:            "RJ",
		Service:          "Instalação",
		Priority:         "Alta",
		Description:      "Levar cabo de rede",
		IfoodIntegration: "Sim",
		IfoodEmail:       "loja@ifood.com",
		RemoteTool:       "AnyDesk",
		AssignedTo:       "none",
	}

	in := r.ToInput()
	if in.Client != "Maria" || in.Priority != entities.PriorityAlta || in.IfoodIntegration != entities.Sim {
		t.Fatalf("unexpected details: %+v", in.OrderDetails)
	}
	if in.Description != "Levar cabo de rede" || in.AssignedTo != "none" {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.RemoteTool != "AnyDesk" || in.IfoodEmail != "loja@ifood.com" {
		t.Fatalf("technical fields lost: %+v", in.OrderDetails)
	}
}
