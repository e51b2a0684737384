package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/forestbar/api/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/forestbar/api/services/auth AuthRepo

// AuthRepo defines the identity registry and verification store
type AuthRepo interface {
	// Identity registry
	GetIdentityByPhone(ctx context.Context, phone string) (*models.Identity, error)
	GetIdentityByID(ctx context.Context, id uuid.UUID) (*models.Identity, error)
	CreateIdentity(ctx context.Context, identity *models.Identity) error

	// Verification store
	CreateVerificationCode(ctx context.Context, code *models.VerificationCode) error
	ConsumeVerificationCode(ctx context.Context, identityID uuid.UUID, code string, now time.Time) (bool, error)
}
