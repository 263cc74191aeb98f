package request

type RegisterRequest struct {
	Name     string `json:"name" example:"Ana Lima"`
	Email    string `json:"email" example:"ana@example.com"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"ana@example.com"`
	Password string `json:"password"`
}

type PasswordResetRequest struct {
	Email string `json:"email" example:"ana@example.com"`
}

type ConfirmPasswordResetRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password"`
}
