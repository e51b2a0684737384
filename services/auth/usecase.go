package auth

import (
	"context"

	"github.com/forestbar/api/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/forestbar/api/services/auth AuthUC

// AuthUC represents the phone verification and session issuance usecase
type AuthUC interface {
	// RequestCode registers the phone on first use, delivers a fresh code and records it
	RequestCode(ctx context.Context, phone string) (*models.SendCodeResponse, error)
	// VerifyCode consumes a live code and mints a credential
	VerifyCode(ctx context.Context, phone, code string) (*models.AuthResponse, error)
	// Authenticate resolves a credential into an active identity
	Authenticate(ctx context.Context, token string) (*models.Identity, error)
}
