package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	// ExpiresIn is the access-token lifetime in seconds.
	ExpiresIn int64  `json:"expires_in"`
	TokenType string `json:"token_type"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RegisterAccountRequest struct {
	Username string  `json:"username"  validate:"required,min=3"`
	Password string  `json:"password"  validate:"required,min=8"`
	Role     string  `json:"role"      validate:"required,oneof=admin branch"`
	BranchID *string `json:"branch_id" validate:"omitempty,uuid"`
	Email    *string `json:"email"     validate:"omitempty,email"`
}

type AccountResponse struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Role     string  `json:"role"`
	BranchID *string `json:"branch_id,omitempty"`
	Email    *string `json:"email,omitempty"`
	Active   bool    `json:"active"`
}
