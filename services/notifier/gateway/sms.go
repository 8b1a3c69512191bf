package gateway

import (
	"context"
	"time"

	"github.com/swiftride/swiftride/internal/pkg/httpclient"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

// SMSGateway delivers text messages through the external SMS provider
type SMSGateway struct {
	client *httpclient.Client
}

// NewSMSGateway creates a new SMS gateway
func NewSMSGateway(cfg models.SMSConfig) *SMSGateway {
	return &SMSGateway{
		client: httpclient.NewClient(cfg.BaseURL, cfg.APIKey, time.Duration(cfg.TimeoutSeconds)*time.Second),
	}
}

type smsPayload struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// SendSMS sends a text message to the given phone number
func (g *SMSGateway) SendSMS(ctx context.Context, phone, message string) error {
	return g.client.PostJSON(ctx, "/v1/messages", smsPayload{
		To:      phone,
		Message: message,
	}, nil)
}
