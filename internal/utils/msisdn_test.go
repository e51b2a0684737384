package utils

import (
	"errors"
	"testing"

	apperrors "github.com/forestbar/api/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		expected string
		wantErr  bool
	}{
		{
			name:     "Canonical form",
			phone:    "+79001112233",
			expected: "+79001112233",
		},
		{
			name:     "Domestic trunk prefix",
			phone:    "89001112233",
			expected: "+79001112233",
		},
		{
			name:     "Country code without plus",
			phone:    "79991234567",
			expected: "+79991234567",
		},
		{
			name:     "Formatted with spaces, dashes and brackets",
			phone:    "+7 (999) 123-45-67",
			expected: "+79991234567",
		},
		{
			name:     "Trunk prefix formatted",
			phone:    "8 (900) 111-22-33",
			expected: "+79001112233",
		},
		{
			name:    "Empty",
			phone:   "",
			wantErr: true,
		},
		{
			name:    "Letters only",
			phone:   "phone",
			wantErr: true,
		},
		{
			name:    "Wrong country code",
			phone:   "+380501112233",
			wantErr: true,
		},
		{
			name:    "Too short",
			phone:   "+7900111223",
			wantErr: true,
		},
		{
			name:    "Too long",
			phone:   "+790011122334",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.phone)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, apperrors.ErrInvalidPhone))
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Len(t, got, 12)
		})
	}
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	inputs := []string{"89001112233", "+79001112233", "7 900 111 22 33", "8-999-123-45-67"}

	for _, in := range inputs {
		once, err := NormalizePhone(in)
		require.NoError(t, err)

		twice, err := NormalizePhone(once)
		require.NoError(t, err)

		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestNormalizePhone_TrunkAndCountryFormsAgree(t *testing.T) {
	a, err := NormalizePhone("89001112233")
	require.NoError(t, err)
	b, err := NormalizePhone("+79001112233")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGatewayPhone(t *testing.T) {
	assert.Equal(t, "79991234567", GatewayPhone("+79991234567"))
	assert.Equal(t, "79991234567", GatewayPhone("79991234567"))
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "+799******67", MaskPhone("+79991234567"))
	assert.Equal(t, "123", MaskPhone("123"))
}
