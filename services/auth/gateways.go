package auth

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/forestbar/api/services/auth AuthGW

// AuthGW delivers verification codes through the configured channel
type AuthGW interface {
	SendCode(ctx context.Context, phone, code string) error
}
