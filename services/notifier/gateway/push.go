package gateway

import (
	"context"
	"time"

	"github.com/swiftride/swiftride/internal/pkg/httpclient"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

// PushGateway delivers push notices through the external push provider
type PushGateway struct {
	client *httpclient.Client
}

// NewPushGateway creates a new push gateway
func NewPushGateway(cfg models.PushConfig) *PushGateway {
	return &PushGateway{
		client: httpclient.NewClient(cfg.BaseURL, cfg.APIKey, time.Duration(cfg.TimeoutSeconds)*time.Second),
	}
}

type pushPayload struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// NotifyDriver pushes a notice to the driver's device
func (g *PushGateway) NotifyDriver(ctx context.Context, driverPhone, message string) error {
	return g.client.PostJSON(ctx, "/v1/push", pushPayload{
		To:      driverPhone,
		Message: message,
	}, nil)
}
