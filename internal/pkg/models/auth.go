package models

// TokenTypeBearer is reported to clients alongside every issued credential
const TokenTypeBearer = "bearer"

// SendCodeRequest represents a request to deliver a verification code
type SendCodeRequest struct {
	Phone string `json:"phone" validate:"required,phone"`
}

// SendCodeResponse is returned once a code has been delivered and recorded
type SendCodeResponse struct {
	Phone            string `json:"phone"`
	ExpiresInSeconds int    `json:"expires_in_seconds"`
}

// VerifyCodeRequest represents a request to exchange a code for a credential
type VerifyCodeRequest struct {
	Phone string `json:"phone" validate:"required,phone"`
	Code  string `json:"code" validate:"required"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
	Phone       string `json:"phone"`
	ExpiresAt   int64  `json:"expires_at"`
}
