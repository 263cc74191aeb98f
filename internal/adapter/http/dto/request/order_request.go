package request

import (
	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
	"github.com/alexferreiraaf/osmaster/internal/usecase"
)

// OrderRequest is the order form payload, used for creation and for the
// edit page. Field validation happens in the use case so the client gets one
// message per field.
type OrderRequest struct {
	Client   string `json:"client" example:"Maria"`
	Document string `json:"document" example:"12.345.678/0001-90"`
	Contact  string `json:"contact" example:"(21) 99999-0000"`
	City     string `json:"city" example:"Rio de Janeiro"`
	State    string `json:"state" example:"RJ"`

	Service     string `json:"service" example:"Instalação"`
	Priority    string `json:"priority" example:"Média"`
	Description string `json:"description"`

	OrderNow         string `json:"orderNow" example:"Não"`
	Mobile           string `json:"mobile" example:"Não"`
	IfoodIntegration string `json:"ifoodIntegration" example:"Não"`
	IfoodEmail       string `json:"ifoodEmail"`
	IfoodPassword    string `json:"ifoodPassword"`

	DLL        string `json:"dll"`
	RemoteTool string `json:"remoteTool"`
	RemoteCode string `json:"remoteCode"`

	// AssignedTo is a roster name; empty or "none" leaves the order unassigned.
	AssignedTo string `json:"assignedTo"`
}

func (r OrderRequest) ToDetails() entities.OrderDetails {
	return entities.OrderDetails{
		Client:           r.Client,
		Document:         r.Document,
		Contact:          r.Contact,
		City:             r.City,
		State:            r.State,
		Service:          r.Service,
		Priority:         entities.Priority(r.Priority),
		OrderNow:         entities.YesNo(r.OrderNow),
		Mobile:           entities.YesNo(r.Mobile),
		IfoodIntegration: entities.YesNo(r.IfoodIntegration),
		IfoodEmail:       r.IfoodEmail,
		IfoodPassword:    r.IfoodPassword,
		DLL:              r.DLL,
		RemoteTool:       r.RemoteTool,
		RemoteCode:       r.RemoteCode,
	}
}

func (r OrderRequest) ToInput() usecase.OrderInput {
	return usecase.OrderInput{
		OrderDetails: r.ToDetails(),
		Description:  r.Description,
		AssignedTo:   r.AssignedTo,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" example:"Em Andamento"`
}

// UpdateChecklistRequest carries only the items that change.
type UpdateChecklistRequest struct {
	Items map[string]bool `json:"items" binding:"required,min=1"`
}

type UpdateDescriptionRequest struct {
	Description string `json:"description"`
}

type AssignTechnicianRequest struct {
	AssignedTo string `json:"assignedTo" example:"Carlos"`
}

type SuggestTechnicianRequest struct {
	Service     string `json:"service" example:"Instalação"`
	ClientCity  string `json:"clientCity" example:"Niterói"`
	ClientState string `json:"clientState" example:"RJ"`
}
