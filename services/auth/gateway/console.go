package gateway

import (
	"context"

	"github.com/forestbar/api/internal/pkg/logger"
	"github.com/forestbar/api/internal/pkg/models"
)

// ConsoleSender writes codes to the log instead of sending them. Used in local and test environments.
type ConsoleSender struct {
	logger *logger.ZapLogger
}

// NewConsoleSender creates a sender that logs through zapLogger, or the global logger when nil
func NewConsoleSender(zapLogger *logger.ZapLogger) *ConsoleSender {
	return &ConsoleSender{logger: zapLogger}
}

// Send never fails
func (s *ConsoleSender) Send(ctx context.Context, phone, code string) error {
	l := s.logger
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	l.Info("Verification code (test mode)",
		logger.String("provider", s.Provider()),
		logger.String("phone", phone),
		logger.String("code", code),
		logger.String("message", formatMessage(code)),
	)
	return nil
}

// Provider returns the provider name
func (s *ConsoleSender) Provider() string {
	return models.SMSProviderConsole
}
