package entities

import "time"

// User is the authenticated actor recorded on every mutation.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Account is the stored identity. PasswordHash never leaves the backend.
//
// Storage model (DynamoDB):
//   - PK: email (lower case)
type Account struct {
	User
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session is issued by a successful login.
type Session struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Suggestion is the advisory technician pick for an order.
type Suggestion struct {
	Name   string `json:"suggestedTechnician"`
	Reason string `json:"reason"`
}
