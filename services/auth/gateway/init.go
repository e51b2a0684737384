package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/forestbar/api/internal/pkg/circuitbreaker"
	apperrors "github.com/forestbar/api/internal/pkg/errors"
	httpclient "github.com/forestbar/api/internal/pkg/http"
	"github.com/forestbar/api/internal/pkg/logger"
	"github.com/forestbar/api/internal/pkg/models"
	"github.com/forestbar/api/internal/utils"
	"github.com/forestbar/api/services/auth"
)

// messageTemplate is the SMS body sent to the subscriber
const messageTemplate = "Ваш код подтверждения: %s"

// ErrRejected marks a provider refusing one particular message. Rejections do not count
// against the breaker.
var ErrRejected = errors.New("message rejected by provider")

// CodeSender delivers one message through a single channel
type CodeSender interface {
	Send(ctx context.Context, phone, code string) error
	Provider() string
}

// AuthGW dispatches verification codes through the configured sender
type AuthGW struct {
	sender  CodeSender
	breaker *circuitbreaker.CircuitBreaker
}

// NewAuthGW selects the sender from config once at startup. Test mode always logs codes
// instead of sending them.
func NewAuthGW(cfg models.SMSConfig, zapLogger *logger.ZapLogger) (auth.AuthGW, error) {
	sender, err := newSender(cfg, zapLogger)
	if err != nil {
		return nil, err
	}
	return NewAuthGWWithSender(sender, zapLogger), nil
}

// NewAuthGWWithSender wraps an already built sender
func NewAuthGWWithSender(sender CodeSender, zapLogger *logger.ZapLogger) *AuthGW {
	cbConfig := circuitbreaker.DefaultConfig("sms-" + sender.Provider())
	cbConfig.IsFailure = isProviderFailure

	return &AuthGW{
		sender:  sender,
		breaker: circuitbreaker.New(cbConfig, zapLogger),
	}
}

// isProviderFailure reports whether err means the provider is unreachable or broken.
// Per-message rejections, 4xx answers and callers going away are not counted.
func isProviderFailure(err error) bool {
	if err == nil || errors.Is(err, ErrRejected) || errors.Is(err, context.Canceled) {
		return false
	}
	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= http.StatusInternalServerError
	}
	return true
}

func newSender(cfg models.SMSConfig, zapLogger *logger.ZapLogger) (CodeSender, error) {
	if cfg.TestMode {
		return NewConsoleSender(zapLogger), nil
	}

	timeout := time.Duration(cfg.TimeoutSecond) * time.Second

	switch cfg.Provider {
	case models.SMSProviderConsole, "":
		return NewConsoleSender(zapLogger), nil
	case models.SMSProviderSMSRu:
		if cfg.SMSRuAPIID == "" {
			return nil, fmt.Errorf("sms provider %q requires SMSRU_API_ID", cfg.Provider)
		}
		return NewSMSRuSender(cfg.SMSRuURL, cfg.SMSRuAPIID, timeout), nil
	case models.SMSProviderSMSC:
		if cfg.SMSCLogin == "" || cfg.SMSCPassword == "" {
			return nil, fmt.Errorf("sms provider %q requires SMSC_LOGIN and SMSC_PASSWORD", cfg.Provider)
		}
		return NewSMSCSender(cfg.SMSCURL, cfg.SMSCLogin, cfg.SMSCPassword, timeout), nil
	default:
		return nil, fmt.Errorf("unknown sms provider %q", cfg.Provider)
	}
}

// SendCode makes exactly one delivery attempt. Any failure is reported as ErrDeliveryFailed.
func (g *AuthGW) SendCode(ctx context.Context, phone, code string) error {
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.sender.Send(ctx, phone, code)
	})
	if err != nil {
		logger.WarnCtx(ctx, "Verification code delivery failed",
			logger.String("provider", g.sender.Provider()),
			logger.String("phone", utils.MaskPhone(phone)),
			logger.Err(err))
		return fmt.Errorf("%w: %w", apperrors.ErrDeliveryFailed, err)
	}
	return nil
}

func formatMessage(code string) string {
	return fmt.Sprintf(messageTemplate, code)
}
