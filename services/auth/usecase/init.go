package usecase

import (
	"time"

	"github.com/forestbar/api/internal/pkg/models"
	"github.com/forestbar/api/internal/utils"
	"github.com/forestbar/api/services/auth"
)

// AuthUC implements phone verification and credential issuance
type AuthUC struct {
	authRepo auth.AuthRepo
	authGW   auth.AuthGW
	cfg      *models.Config

	now          func() time.Time
	generateCode func() (string, error)
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	authRepo auth.AuthRepo,
	authGW auth.AuthGW,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		authRepo:     authRepo,
		authGW:       authGW,
		cfg:          cfg,
		now:          func() time.Time { return time.Now().UTC() },
		generateCode: utils.GenerateCode,
	}
}
