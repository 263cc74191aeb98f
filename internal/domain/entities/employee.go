package entities

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Employee is a technician on the roster.
//
// Storage model (DynamoDB):
//   - PK: name_key (case-folded name)
type Employee struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func (e Employee) Key() string {
	return EmployeeKey(e.Name)
}

// EmployeeKey folds a display name so that "Ana", "ANA" and "ana" collide.
func EmployeeKey(name string) string {
	// cases.Caser is stateful, never share it.
	return cases.Fold().String(strings.TrimSpace(name))
}
