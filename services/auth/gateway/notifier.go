package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/xsnapster/backend/internal/pkg/httpclient"
)

// NotifierGW delivers one-time passcodes through the notifier service
type NotifierGW struct {
	client *httpclient.Client
}

// NewNotifierGW creates a new notifier gateway
func NewNotifierGW(serviceURL string, timeout time.Duration) *NotifierGW {
	return &NotifierGW{
		client: httpclient.NewClient(serviceURL, timeout),
	}
}

type sendOTPRequest struct {
	Channel   string `json:"channel"`
	Recipient string `json:"recipient"`
	Code      string `json:"code"`
}

// SendOTP posts the passcode to the delivery service. The call is bounded
// by the client timeout; a failure here is surfaced to the caller so the
// undelivered code can be invalidated.
func (g *NotifierGW) SendOTP(ctx context.Context, channel, recipient, code string) error {
	payload := sendOTPRequest{
		Channel:   channel,
		Recipient: recipient,
		Code:      code,
	}

	if err := g.client.PostJSON(ctx, "/v1/notifications/otp", payload, nil); err != nil {
		return fmt.Errorf("notifier service: %w", err)
	}

	return nil
}
