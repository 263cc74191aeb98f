package response

import (
	"time"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
)

type AttachmentResponse struct {
	FileName     string `json:"fileName"`
	URL          string `json:"url,omitempty"`
	UploadStatus string `json:"uploadStatus"`
	UploadError  string `json:"uploadError,omitempty"`
}

type OrderResponse struct {
	ID       string `json:"id"`
	Client   string `json:"client"`
	Document string `json:"document,omitempty"`
	Contact  string `json:"contact,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`

	Service     string `json:"service"`
	Priority    string `json:"priority"`
	Description string `json:"description"`

	OrderNow         string `json:"orderNow"`
	Mobile           string `json:"mobile"`
	IfoodIntegration string `json:"ifoodIntegration"`
	IfoodEmail       string `json:"ifoodEmail,omitempty"`
	IfoodPassword    string `json:"ifoodPassword,omitempty"`

	DLL         string              `json:"dll,omitempty"`
	RemoteTool  string              `json:"remoteTool,omitempty"`
	RemoteCode  string              `json:"remoteCode,omitempty"`
	Certificate *AttachmentResponse `json:"certificate,omitempty"`
	Image       *AttachmentResponse `json:"image,omitempty"`

	// AssignedTo is empty while the order is unassigned.
	AssignedTo string          `json:"assignedTo"`
	Status     string          `json:"status"`
	Checklist  map[string]bool `json:"checklist"`

	Date          time.Time `json:"date"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:               o.ID,
		Client:           o.Client,
		Document:         o.Document,
		Contact:          o.Contact,
		City:             o.City,
		State:            o.State,
		Service:          o.Service,
		Priority:         string(o.Priority),
		Description:      o.Description,
		OrderNow:         string(o.OrderNow),
		Mobile:           string(o.Mobile),
		IfoodIntegration: string(o.IfoodIntegration),
		IfoodEmail:       o.IfoodEmail,
		IfoodPassword:    o.IfoodPassword,
		DLL:              o.DLL,
		RemoteTool:       o.RemoteTool,
		RemoteCode:       o.RemoteCode,
		Certificate:      fromAttachment(o.Certificate),
		Image:            fromAttachment(o.Image),
		AssignedTo:       o.AssignedTo,
		Status:           string(o.Status),
		Checklist:        o.Checklist.Map(),
		Date:             o.Date,
		LastUpdatedBy:    o.LastUpdatedBy,
		UpdatedAt:        o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

func fromAttachment(a *entities.Attachment) *AttachmentResponse {
	if a == nil {
		return nil
	}
	return &AttachmentResponse{
		FileName:     a.FileName,
		URL:          a.URL,
		UploadStatus: string(a.UploadStatus),
		UploadError:  a.UploadError,
	}
}

type OrderStatsResponse struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Ongoing   int `json:"ongoing"`
	Completed int `json:"completed"`
}

func FromOrderStats(s entities.OrderStats) OrderStatsResponse {
	return OrderStatsResponse{Total: s.Total, Pending: s.Pending, Ongoing: s.Ongoing, Completed: s.Completed}
}

// UploadAcceptedResponse is returned while the upload runs in background.
// Clients poll the order until uploadStatus leaves "uploading".
type UploadAcceptedResponse struct {
	OrderID      string `json:"orderId"`
	Kind         string `json:"kind"`
	FileName     string `json:"fileName"`
	UploadStatus string `json:"uploadStatus"`
}

type SuggestionResponse struct {
	SuggestedTechnician string `json:"suggestedTechnician"`
	Reason              string `json:"reason"`
}

func FromSuggestion(s entities.Suggestion) SuggestionResponse {
	return SuggestionResponse{SuggestedTechnician: s.Name, Reason: s.Reason}
}
