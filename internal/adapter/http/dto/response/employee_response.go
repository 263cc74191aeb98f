package response

import (
	"time"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
)

type EmployeeResponse struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromEmployee(e entities.Employee) EmployeeResponse {
	return EmployeeResponse{Name: e.Name, CreatedAt: e.CreatedAt}
}

func FromEmployees(list []entities.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEmployee(e))
	}
	return out
}
