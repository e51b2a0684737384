package gateway

import (
	"context"
	"fmt"
	"net/url"
	"time"

	httpclient "github.com/forestbar/api/internal/pkg/http"
	"github.com/forestbar/api/internal/pkg/models"
	"github.com/forestbar/api/internal/utils"
)

const smsRuStatusOK = "OK"

// SMSRuSender sends codes through the sms.ru HTTP API
type SMSRuSender struct {
	client *httpclient.Client
	apiID  string
}

type smsRuResponse struct {
	Status     string `json:"status"`
	StatusCode int    `json:"status_code"`
	StatusText string `json:"status_text"`
	SMS        map[string]struct {
		Status     string `json:"status"`
		StatusCode int    `json:"status_code"`
		StatusText string `json:"status_text"`
	} `json:"sms"`
}

// NewSMSRuSender creates a new sms.ru sender
func NewSMSRuSender(apiURL, apiID string, timeout time.Duration) *SMSRuSender {
	return &SMSRuSender{
		client: httpclient.NewClient(apiURL, timeout),
		apiID:  apiID,
	}
}

// Send delivers the code. The request succeeds only when sms.ru reports status OK for it.
func (s *SMSRuSender) Send(ctx context.Context, phone, code string) error {
	to := utils.GatewayPhone(phone)
	query := url.Values{}
	query.Set("api_id", s.apiID)
	query.Set("to", to)
	query.Set("msg", formatMessage(code))
	query.Set("json", "1")

	var resp smsRuResponse
	if err := s.client.GetJSON(ctx, query, &resp); err != nil {
		return fmt.Errorf("sms.ru request failed: %w", err)
	}

	if resp.Status != smsRuStatusOK {
		return fmt.Errorf("%w: sms.ru rejected request: %d %s", ErrRejected, resp.StatusCode, resp.StatusText)
	}
	if sms, ok := resp.SMS[to]; ok && sms.Status != smsRuStatusOK {
		return fmt.Errorf("%w: sms.ru rejected message: %d %s", ErrRejected, sms.StatusCode, sms.StatusText)
	}

	return nil
}

// Provider returns the provider name
func (s *SMSRuSender) Provider() string {
	return models.SMSProviderSMSRu
}
