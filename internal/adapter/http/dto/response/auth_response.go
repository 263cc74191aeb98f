package response

import (
	"time"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
)

type UserResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{Name: u.Name, Email: u.Email}
}

type SessionResponse struct {
	Token     string       `json:"token"`
	User      UserResponse `json:"user"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

func FromSession(s entities.Session) SessionResponse {
	return SessionResponse{Token: s.Token, User: FromUser(s.User), ExpiresAt: s.ExpiresAt}
}
