package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/forestbar/api/internal/pkg/errors"
	"github.com/forestbar/api/internal/pkg/models"
)

const identityColumns = `id, phone, is_active, created_at, updated_at`

// GetIdentityByPhone retrieves an identity by its normalized phone number
func (r *AuthRepo) GetIdentityByPhone(ctx context.Context, phone string) (*models.Identity, error) {
	query := `SELECT ` + identityColumns + ` FROM identities WHERE phone = $1`

	var identity models.Identity
	if err := r.db.GetContext(ctx, &identity, query, phone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get identity by phone: %w", err)
	}

	return &identity, nil
}

// GetIdentityByID retrieves an identity by its ID
func (r *AuthRepo) GetIdentityByID(ctx context.Context, id uuid.UUID) (*models.Identity, error) {
	query := `SELECT ` + identityColumns + ` FROM identities WHERE id = $1`

	var identity models.Identity
	if err := r.db.GetContext(ctx, &identity, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	return &identity, nil
}

// CreateIdentity registers a phone number. When another request registered the same
// phone first, identity is overwritten with the stored row.
func (r *AuthRepo) CreateIdentity(ctx context.Context, identity *models.Identity) error {
	identity.ID = uuid.New()
	now := time.Now().UTC()
	identity.CreatedAt = now
	identity.UpdatedAt = now
	identity.IsActive = true

	query := `
		INSERT INTO identities (id, phone, is_active, created_at, updated_at)
		VALUES (:id, :phone, :is_active, :created_at, :updated_at)
		ON CONFLICT (phone) DO NOTHING
	`
	result, err := r.db.NamedExecContext(ctx, query, identity)
	if err != nil {
		return fmt.Errorf("failed to insert identity: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 1 {
		return nil
	}

	existing, err := r.GetIdentityByPhone(ctx, identity.Phone)
	if err != nil {
		return fmt.Errorf("failed to read concurrently created identity: %w", err)
	}
	*identity = *existing
	return nil
}
