package entities

import "time"

// OrderStatus is the workflow state of a service order (ordem de serviço).
//
// Allowed moves:
//   - Pendente -> Em Andamento
//   - Em Andamento -> Concluída
//   - Concluída -> Em Andamento (reopen)
//
// Anything else, including staying in the same state, is rejected.
type OrderStatus string

const (
	OrderStatusPendente    OrderStatus = "Pendente"
	OrderStatusEmAndamento OrderStatus = "Em Andamento"
	OrderStatusConcluida   OrderStatus = "Concluída"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPendente:    {OrderStatusEmAndamento},
	OrderStatusEmAndamento: {OrderStatusConcluida},
	OrderStatusConcluida:   {OrderStatusEmAndamento},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Priority string

const (
	PriorityBaixa   Priority = "Baixa"
	PriorityMedia   Priority = "Média"
	PriorityAlta    Priority = "Alta"
	PriorityUrgente Priority = "Urgente"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityBaixa, PriorityMedia, PriorityAlta, PriorityUrgente:
		return true
	}
	return false
}

// YesNo mirrors the Sim/Não toggles of the order form.
type YesNo string

const (
	Sim YesNo = "Sim"
	Nao YesNo = "Não"
)

func (v YesNo) Valid() bool {
	return v == Sim || v == Nao
}

// OrderDetails groups the fields filled in by the order form. They are set at
// creation and replaced as a whole by the edit flow.
type OrderDetails struct {
	Client   string `json:"client"`
	Document string `json:"document,omitempty"`
	Contact  string `json:"contact,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`

	Service  string   `json:"service"`
	Priority Priority `json:"priority"`

	OrderNow         YesNo  `json:"orderNow"`
	Mobile           YesNo  `json:"mobile"`
	IfoodIntegration YesNo  `json:"ifoodIntegration"`
	IfoodEmail       string `json:"ifoodEmail,omitempty"`
	IfoodPassword    string `json:"ifoodPassword,omitempty"`

	DLL        string `json:"dll,omitempty"`
	RemoteTool string `json:"remoteTool,omitempty"`
	RemoteCode string `json:"remoteCode,omitempty"`
}

// Order is the service order persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (assigned_to-index): assigned_to, only present while assigned
type Order struct {
	ID string `json:"id"`
	OrderDetails
	Description string `json:"description"`
	AssignedTo  string `json:"assignedTo,omitempty"`

	Status    OrderStatus `json:"status"`
	Checklist Checklist   `json:"checklist"`

	Certificate *Attachment `json:"certificate,omitempty"`
	Image       *Attachment `json:"image,omitempty"`

	Date          time.Time `json:"date"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// OrderPatch describes a single conditional write on an order.
//
// Nil fields are left untouched. ExpectStatus and ExpectAssignedTo are
// preconditions checked atomically with the write.
type OrderPatch struct {
	Details     *OrderDetails
	Description *string
	AssignedTo  *string
	Status      *OrderStatus
	Checklist   map[string]bool
	Certificate *Attachment
	Image       *Attachment

	ExpectStatus     *OrderStatus
	ExpectAssignedTo *string

	UpdatedBy string
	UpdatedAt time.Time
}

// Apply returns a copy of o with the patch applied. Preconditions are not
// checked here.
func (p OrderPatch) Apply(o Order) Order {
	if p.Details != nil {
		o.OrderDetails = *p.Details
	}
	if p.Description != nil {
		o.Description = *p.Description
	}
	if p.AssignedTo != nil {
		o.AssignedTo = *p.AssignedTo
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	for k, v := range p.Checklist {
		o.Checklist.Set(k, v)
	}
	if p.Certificate != nil {
		a := *p.Certificate
		o.Certificate = &a
	} else if o.Certificate != nil {
		a := *o.Certificate
		o.Certificate = &a
	}
	if p.Image != nil {
		a := *p.Image
		o.Image = &a
	} else if o.Image != nil {
		a := *o.Image
		o.Image = &a
	}
	o.LastUpdatedBy = p.UpdatedBy
	o.UpdatedAt = p.UpdatedAt
	return o
}

// OrderStats are the dashboard counters.
type OrderStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Ongoing   int `json:"ongoing"`
	Completed int `json:"completed"`
}

// OrderCreatedEvent is published on the notification feed for every new order.
type OrderCreatedEvent struct {
	ID            string    `json:"id"`
	Client        string    `json:"client"`
	Service       string    `json:"service"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
	Date          time.Time `json:"date"`
}
