package utils

import (
	"fmt"
	"strings"

	apperrors "github.com/forestbar/api/internal/pkg/errors"
)

const (
	countryCode   = '7'
	trunkPrefix   = '8'
	msisdnDigits  = 11
	canonicalPlus = "+"
)

// NormalizePhone reduces a Russian phone number to the canonical +7XXXXXXXXXX form.
// Every non-digit is dropped, a leading domestic trunk prefix 8 is rewritten to 7
// and exactly 11 digits must remain.
func NormalizePhone(phone string) (string, error) {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := []byte(b.String())

	if len(digits) == 0 {
		return "", fmt.Errorf("%w: no digits", apperrors.ErrInvalidPhone)
	}
	if digits[0] != countryCode && digits[0] != trunkPrefix {
		return "", fmt.Errorf("%w: must start with +7 or 8", apperrors.ErrInvalidPhone)
	}
	if digits[0] == trunkPrefix {
		digits[0] = countryCode
	}
	if len(digits) != msisdnDigits {
		return "", fmt.Errorf("%w: must contain %d digits, got %d", apperrors.ErrInvalidPhone, msisdnDigits, len(digits))
	}

	return canonicalPlus + string(digits), nil
}

// GatewayPhone strips the leading plus sign, which SMS gateways do not accept
func GatewayPhone(phone string) string {
	return strings.TrimPrefix(phone, canonicalPlus)
}

// MaskPhone hides the middle of a phone number for logs
func MaskPhone(phone string) string {
	if len(phone) < 6 {
		return phone
	}
	return phone[:4] + strings.Repeat("*", len(phone)-6) + phone[len(phone)-2:]
}
