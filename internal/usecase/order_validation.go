package usecase

import (
	"strings"
	"unicode/utf8"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
)

const (
	MaxDescriptionLength = 5000
	unassignedSentinel   = "none"
)

// OrderInput is the payload of the order form.
type OrderInput struct {
	entities.OrderDetails
	Description string
	AssignedTo  string
}

// normalizeDetails trims free text, applies defaults and validates the
// form fields, collecting every failure.
func normalizeDetails(d entities.OrderDetails, verr *ValidationError) entities.OrderDetails {
	d.Client = strings.TrimSpace(d.Client)
	d.Document = strings.TrimSpace(d.Document)
	d.Contact = strings.TrimSpace(d.Contact)
	d.City = strings.TrimSpace(d.City)
	d.State = strings.TrimSpace(d.State)
	d.Service = strings.TrimSpace(d.Service)
	d.IfoodEmail = strings.TrimSpace(d.IfoodEmail)
	d.DLL = strings.TrimSpace(d.DLL)
	d.RemoteTool = strings.TrimSpace(d.RemoteTool)
	d.RemoteCode = strings.TrimSpace(d.RemoteCode)

	if d.Client == "" {
		verr.add("client", "Nome do cliente é obrigatório.")
	}
	if d.City == "" {
		verr.add("city", "Cidade é obrigatória.")
	}
	if d.State == "" {
		verr.add("state", "Estado é obrigatório.")
	}
	if d.Service == "" {
		verr.add("service", "Título do serviço é obrigatório.")
	}

	if d.Priority == "" {
		d.Priority = entities.PriorityMedia
	} else if !d.Priority.Valid() {
		verr.add("priority", "Prioridade inválida.")
	}

	for field, v := range map[string]*entities.YesNo{
		"orderNow":         &d.OrderNow,
		"mobile":           &d.Mobile,
		"ifoodIntegration": &d.IfoodIntegration,
	} {
		if *v == "" {
			*v = entities.Nao
		} else if !v.Valid() {
			verr.add(field, "Valor deve ser Sim ou Não.")
		}
	}

	if d.IfoodIntegration != entities.Sim {
		d.IfoodEmail = ""
		d.IfoodPassword = ""
	}
	return d
}

func validateDescription(text string, verr *ValidationError) {
	if utf8.RuneCountInString(text) > MaxDescriptionLength {
		verr.add("description", "A descrição deve ter no máximo 5000 caracteres.")
	}
}

func normalizeAssignee(name string) string {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, unassignedSentinel) {
		return ""
	}
	return name
}
