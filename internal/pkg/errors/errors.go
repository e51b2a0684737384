package errors

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidRequest       = errors.New("invalid request payload")
	ErrInvalidPhone         = errors.New("invalid phone number")
	ErrDeliveryFailed       = errors.New("failed to deliver verification code")
	ErrIdentityNotFound     = errors.New("identity not found, request a code first")
	ErrCodeInvalidOrExpired = errors.New("verification code is incorrect or expired")
	ErrInvalidCredential    = errors.New("invalid credential")
	ErrIdentityDeactivated  = errors.New("identity is deactivated")
	ErrRateLimited          = errors.New("too many requests")
	ErrServiceUnavailable   = errors.New("service unavailable")

	// ErrNotFound is returned by repositories when no row matches
	ErrNotFound = errors.New("record not found")
)

// kind is the stable outward signal of an error class
type kind struct {
	err    error
	status int
	reason string
}

// Order matters: the first match wins, so domain classes precede infrastructure ones.
var kinds = []kind{
	{ErrInvalidRequest, http.StatusBadRequest, "invalid_request"},
	{ErrInvalidPhone, http.StatusBadRequest, "invalid_phone"},
	{ErrIdentityNotFound, http.StatusNotFound, "identity_not_found"},
	{ErrCodeInvalidOrExpired, http.StatusBadRequest, "code_invalid_or_expired"},
	{ErrInvalidCredential, http.StatusUnauthorized, "invalid_credential"},
	{ErrIdentityDeactivated, http.StatusForbidden, "identity_deactivated"},
	{ErrRateLimited, http.StatusTooManyRequests, "rate_limited"},
	{ErrDeliveryFailed, http.StatusBadGateway, "delivery_failed"},
	{ErrServiceUnavailable, http.StatusServiceUnavailable, "service_unavailable"},
}

func classify(err error) (kind, bool) {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k, true
		}
	}
	return kind{}, false
}

// IsKnown reports whether err belongs to one of the classes above
func IsKnown(err error) bool {
	_, ok := classify(err)
	return ok
}

// HTTPStatus maps an error to the status code clients receive
func HTTPStatus(err error) int {
	if k, ok := classify(err); ok {
		return k.status
	}
	return http.StatusInternalServerError
}

// Reason maps an error to a machine-readable code clients can branch on
func Reason(err error) string {
	if k, ok := classify(err); ok {
		return k.reason
	}
	return "internal_error"
}

// Message returns the public message for err without leaking wrapped internals
func Message(err error) string {
	if k, ok := classify(err); ok {
		return k.err.Error()
	}
	return "internal server error"
}
