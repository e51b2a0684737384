package models

import (
	"time"

	"github.com/google/uuid"
)

// VerificationCodeTTL is how long an issued code stays consumable
const VerificationCodeTTL = 5 * time.Minute

// VerificationCode is one issued one-time code. Rows are kept after use as an audit trail.
type VerificationCode struct {
	ID         uuid.UUID `json:"id" db:"id"`
	IdentityID uuid.UUID `json:"identity_id" db:"identity_id"`
	Code       string    `json:"code" db:"code"`
	IsUsed     bool      `json:"is_used" db:"is_used"`
	ExpiresAt  time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
