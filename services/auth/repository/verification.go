package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/forestbar/api/internal/pkg/models"
)

// CreateVerificationCode stores an issued code. Earlier live codes of the same identity stay valid.
func (r *AuthRepo) CreateVerificationCode(ctx context.Context, code *models.VerificationCode) error {
	if code.ID == uuid.Nil {
		code.ID = uuid.New()
	}
	if code.CreatedAt.IsZero() {
		code.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO verification_codes (id, identity_id, code, is_used, expires_at, created_at)
		VALUES (:id, :identity_id, :code, :is_used, :expires_at, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, code); err != nil {
		return fmt.Errorf("failed to insert verification code: %w", err)
	}

	return nil
}

// ConsumeVerificationCode marks the newest live matching code as used and reports whether one existed.
// Match and mark happen in one statement, so a code can be consumed by only one caller.
func (r *AuthRepo) ConsumeVerificationCode(ctx context.Context, identityID uuid.UUID, code string, now time.Time) (bool, error) {
	query := `
		UPDATE verification_codes
		SET is_used = true
		WHERE id = (
			SELECT id FROM verification_codes
			WHERE identity_id = $1 AND code = $2 AND is_used = false AND expires_at > $3
			ORDER BY created_at DESC
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		) AND is_used = false
		RETURNING id
	`

	var consumedID uuid.UUID
	err := r.db.QueryRowxContext(ctx, query, identityID, code, now).Scan(&consumedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to consume verification code: %w", err)
	}

	return true, nil
}
