package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/forestbar/api/internal/pkg/errors"
	"github.com/forestbar/api/internal/pkg/logger"
	"github.com/forestbar/api/internal/pkg/middleware"
	"github.com/forestbar/api/internal/pkg/models"
	"github.com/forestbar/api/internal/pkg/validator"
	"github.com/forestbar/api/internal/utils"
	"github.com/forestbar/api/services/auth"
)

// AuthHandler handles phone verification HTTP requests
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// SendCode handles requests to deliver a verification code
func (h *AuthHandler) SendCode(c echo.Context) error {
	var req models.SendCodeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := validator.ValidateStruct(&req); err != nil {
		return invalidRequest(c, err)
	}

	resp, err := h.authUC.RequestCode(c.Request().Context(), req.Phone)
	if err != nil {
		return h.domainError(c, "Failed to send verification code", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Код отправлен", resp)
}

// VerifyCode handles requests to exchange a verification code for a credential
func (h *AuthHandler) VerifyCode(c echo.Context) error {
	var req models.VerifyCodeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := validator.ValidateStruct(&req); err != nil {
		return invalidRequest(c, err)
	}

	resp, err := h.authUC.VerifyCode(c.Request().Context(), req.Phone, req.Code)
	if err != nil {
		return h.domainError(c, "Failed to verify code", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Authentication successful", resp)
}

// Me returns the identity behind the bearer credential
func (h *AuthHandler) Me(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return utils.DomainErrorResponse(c, apperrors.ErrInvalidCredential)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Identity retrieved successfully", identity)
}

// Logout acknowledges the request. Credentials are self-contained, so nothing is revoked
// server-side and clients drop the token.
func (h *AuthHandler) Logout(c echo.Context) error {
	if _, ok := middleware.IdentityFromContext(c); !ok {
		return utils.DomainErrorResponse(c, apperrors.ErrInvalidCredential)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Успешный выход из системы", nil)
}

// domainError renders known failures with their stable reason and hides everything else behind a 500
func (h *AuthHandler) domainError(c echo.Context, msg string, err error) error {
	ctx := c.Request().Context()
	if !apperrors.IsKnown(err) {
		logger.ErrorCtx(ctx, msg, logger.Err(err))
		return utils.InternalServerErrorResponse(c, msg)
	}
	if errors.Is(err, apperrors.ErrServiceUnavailable) || errors.Is(err, apperrors.ErrDeliveryFailed) {
		logger.WarnCtx(ctx, msg, logger.Err(err))
	}
	return utils.DomainErrorResponse(c, err)
}

// invalidRequest reports a failed phone rule as invalid_phone and anything else as invalid_request
func invalidRequest(c echo.Context, err error) error {
	var failures validator.ValidationErrors
	if errors.As(err, &failures) && failures.HasTag("phone") {
		return utils.DomainErrorResponse(c, apperrors.ErrInvalidPhone)
	}
	return utils.BadRequestResponse(c, err.Error())
}
