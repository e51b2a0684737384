package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		status  int
		reason  string
		message string
	}{
		{"invalid phone", fmt.Errorf("%w: must have 11 digits", ErrInvalidPhone), http.StatusBadRequest, "invalid_phone", ErrInvalidPhone.Error()},
		{"identity not found", ErrIdentityNotFound, http.StatusNotFound, "identity_not_found", ErrIdentityNotFound.Error()},
		{"code invalid", fmt.Errorf("verify: %w", ErrCodeInvalidOrExpired), http.StatusBadRequest, "code_invalid_or_expired", ErrCodeInvalidOrExpired.Error()},
		{"invalid credential", fmt.Errorf("parse: %w", ErrInvalidCredential), http.StatusUnauthorized, "invalid_credential", ErrInvalidCredential.Error()},
		{"deactivated", ErrIdentityDeactivated, http.StatusForbidden, "identity_deactivated", ErrIdentityDeactivated.Error()},
		{"delivery failed", fmt.Errorf("%w: status=ERROR", ErrDeliveryFailed), http.StatusBadGateway, "delivery_failed", ErrDeliveryFailed.Error()},
		{"rate limited", ErrRateLimited, http.StatusTooManyRequests, "rate_limited", ErrRateLimited.Error()},
		{"storage down", fmt.Errorf("find identity: %w: %w", ErrServiceUnavailable, errors.New("dial tcp: refused")), http.StatusServiceUnavailable, "service_unavailable", ErrServiceUnavailable.Error()},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_error", "internal server error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, HTTPStatus(tc.err))
			assert.Equal(t, tc.reason, Reason(tc.err))
			assert.Equal(t, tc.message, Message(tc.err))
		})
	}
}

func TestDeactivatedAndInvalidAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrIdentityDeactivated, ErrInvalidCredential))
	assert.False(t, errors.Is(ErrInvalidCredential, ErrIdentityDeactivated))
	assert.NotEqual(t, Reason(ErrIdentityDeactivated), Reason(ErrInvalidCredential))
}
