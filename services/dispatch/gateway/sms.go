package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/swiftride/swiftride/internal/pkg/httpclient"
	"github.com/swiftride/swiftride/internal/pkg/logger"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

// SMSGateway delivers OTP codes through the external SMS provider
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

// SendOTP sends the ride-start code to the rider's phone. The call is
// retried once on failure; delivery stays best-effort beyond that.
func (g *SMSGateway) SendOTP(ctx context.Context, phone, code string) error {
	payload := smsPayload{
		To:      phone,
		Message: fmt.Sprintf("Your ride verification code is %s. Share it with your driver to start the trip.", code),
	}

	var err error
	for attempt := 1; attempt <= 2; attempt++ {
		if err = g.client.PostJSON(ctx, "/v1/messages", payload, nil); err == nil {
			return nil
		}
		logger.Warn("OTP SMS delivery attempt failed", logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		})
	}
	return fmt.Errorf("failed to deliver OTP SMS: %w", err)
}
