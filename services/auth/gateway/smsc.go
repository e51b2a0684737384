package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	httpclient "github.com/forestbar/api/internal/pkg/http"
	"github.com/forestbar/api/internal/pkg/models"
	"github.com/forestbar/api/internal/utils"
)

// SMSCSender sends codes through the smsc.ru HTTP API
type SMSCSender struct {
	client   *httpclient.Client
	login    string
	password string
}

type smscResponse struct {
	ID        json.Number `json:"id"`
	Count     int         `json:"cnt"`
	Error     string      `json:"error"`
	ErrorCode int         `json:"error_code"`
}

// NewSMSCSender creates a new smsc.ru sender
func NewSMSCSender(apiURL, login, password string, timeout time.Duration) *SMSCSender {
	return &SMSCSender{
		client:   httpclient.NewClient(apiURL, timeout),
		login:    login,
		password: password,
	}
}

// Send delivers the code. smsc.ru answers 200 for rejected messages too, so success means an id came back.
func (s *SMSCSender) Send(ctx context.Context, phone, code string) error {
	query := url.Values{}
	query.Set("login", s.login)
	query.Set("psw", s.password)
	query.Set("phones", utils.GatewayPhone(phone))
	query.Set("mes", formatMessage(code))
	query.Set("charset", "utf-8")
	query.Set("fmt", "3")

	var resp smscResponse
	if err := s.client.GetJSON(ctx, query, &resp); err != nil {
		return fmt.Errorf("smsc.ru request failed: %w", err)
	}

	if resp.Error != "" {
		return fmt.Errorf("%w: smsc.ru rejected message: %d %s", ErrRejected, resp.ErrorCode, resp.Error)
	}
	if resp.ID == "" {
		return fmt.Errorf("smsc.ru response has no message id")
	}

	return nil
}

// Provider returns the provider name
func (s *SMSCSender) Provider() string {
	return models.SMSProviderSMSC
}
