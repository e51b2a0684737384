package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	apperrors "github.com/forestbar/api/internal/pkg/errors"
	jwtpkg "github.com/forestbar/api/internal/pkg/jwt"
	"github.com/forestbar/api/internal/pkg/logger"
	"github.com/forestbar/api/internal/pkg/metrics"
	"github.com/forestbar/api/internal/pkg/models"
	"github.com/forestbar/api/internal/utils"
)

// RequestCode delivers a fresh code to the phone and records it once delivery succeeded.
// The identity is registered on the first request for an unseen phone.
func (u *AuthUC) RequestCode(ctx context.Context, phone string) (resp *models.SendCodeResponse, err error) {
	defer func() { metrics.CodesRequested.WithLabelValues(resultLabel(err)).Inc() }()

	normalized, err := utils.NormalizePhone(phone)
	if err != nil {
		return nil, err
	}

	identity, err := u.findOrCreateIdentity(ctx, normalized)
	if err != nil {
		return nil, err
	}

	code, err := u.generateCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification code: %w", err)
	}

	if err := u.authGW.SendCode(ctx, normalized, code); err != nil {
		if !errors.Is(err, apperrors.ErrDeliveryFailed) {
			err = fmt.Errorf("%w: %w", apperrors.ErrDeliveryFailed, err)
		}
		return nil, err
	}

	now := u.now()
	verification := &models.VerificationCode{
		ID:         uuid.New(),
		IdentityID: identity.ID,
		Code:       code,
		IsUsed:     false,
		ExpiresAt:  now.Add(models.VerificationCodeTTL),
		CreatedAt:  now,
	}
	if err := u.authRepo.CreateVerificationCode(ctx, verification); err != nil {
		return nil, unavailable("failed to save verification code", err)
	}

	logger.InfoCtx(ctx, "Verification code issued",
		logger.String("identity_id", identity.ID.String()),
		logger.String("phone", utils.MaskPhone(normalized)))

	return &models.SendCodeResponse{
		Phone:            normalized,
		ExpiresInSeconds: int(models.VerificationCodeTTL.Seconds()),
	}, nil
}

// VerifyCode consumes a live code of the identity and mints a credential for it
func (u *AuthUC) VerifyCode(ctx context.Context, phone, code string) (resp *models.AuthResponse, err error) {
	defer func() { metrics.CodesVerified.WithLabelValues(resultLabel(err)).Inc() }()

	normalized, err := utils.NormalizePhone(phone)
	if err != nil {
		return nil, err
	}

	identity, err := u.authRepo.GetIdentityByPhone(ctx, normalized)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrIdentityNotFound
		}
		return nil, unavailable("failed to get identity", err)
	}

	// a malformed code can never match a stored one
	if !utils.IsCodeFormat(code) {
		return nil, apperrors.ErrCodeInvalidOrExpired
	}

	now := u.now()
	consumed, err := u.authRepo.ConsumeVerificationCode(ctx, identity.ID, code, now)
	if err != nil {
		return nil, unavailable("failed to check verification code", err)
	}
	if !consumed {
		return nil, apperrors.ErrCodeInvalidOrExpired
	}

	token, expiresAt, err := jwtpkg.GenerateToken(identity.ID.String(), identity.Phone, u.cfg.JWT, now)
	if err != nil {
		return nil, fmt.Errorf("failed to issue credential: %w", err)
	}

	logger.InfoCtx(ctx, "Identity verified",
		logger.String("identity_id", identity.ID.String()),
		logger.Int64("expires_at", expiresAt.Unix()))

	return &models.AuthResponse{
		AccessToken: token,
		TokenType:   models.TokenTypeBearer,
		UserID:      identity.ID.String(),
		Phone:       identity.Phone,
		ExpiresAt:   expiresAt.Unix(),
	}, nil
}

// Authenticate checks the credential and returns its identity if that identity is still active
func (u *AuthUC) Authenticate(ctx context.Context, token string) (identity *models.Identity, err error) {
	defer func() { metrics.Authentications.WithLabelValues(resultLabel(err)).Inc() }()

	claims, err := jwtpkg.ValidateToken(token, u.cfg.JWT.Secret, u.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidCredential, err)
	}

	identityID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed user_id claim", apperrors.ErrInvalidCredential)
	}

	identity, err = u.authRepo.GetIdentityByID(ctx, identityID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown identity", apperrors.ErrInvalidCredential)
		}
		return nil, unavailable("failed to get identity", err)
	}

	if !identity.IsActive {
		return nil, apperrors.ErrIdentityDeactivated
	}

	return identity, nil
}

func (u *AuthUC) findOrCreateIdentity(ctx context.Context, phone string) (*models.Identity, error) {
	identity, err := u.authRepo.GetIdentityByPhone(ctx, phone)
	if err == nil {
		return identity, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, unavailable("failed to get identity", err)
	}

	identity = &models.Identity{Phone: phone}
	if err := u.authRepo.CreateIdentity(ctx, identity); err != nil {
		return nil, unavailable("failed to create identity", err)
	}

	logger.InfoCtx(ctx, "Identity registered",
		logger.String("identity_id", identity.ID.String()),
		logger.String("phone", utils.MaskPhone(phone)))

	return identity, nil
}

// unavailable marks a storage failure so it is never reported as a domain error
func unavailable(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", apperrors.ErrServiceUnavailable, msg, err)
}

func resultLabel(err error) string {
	if err == nil {
		return metrics.ResultSuccess
	}
	return apperrors.Reason(err)
}
