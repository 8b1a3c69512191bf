package handler

import (
	"context"
	"fmt"

	"github.com/swiftride/swiftride/internal/pkg/constants"
	"github.com/swiftride/swiftride/internal/pkg/models"
	"github.com/swiftride/swiftride/internal/pkg/nsq"
	"github.com/swiftride/swiftride/services/notifier"
)

// Handler consumes dispatch and lifecycle events and turns them into
// outbound notifications.
type Handler struct {
	cfg        *models.Config
	notifierUC notifier.NotifierUC
	consumers  []*nsq.Consumer
}

// NewHandler creates a new notifier event handler
func NewHandler(cfg *models.Config, notifierUC notifier.NotifierUC) *Handler {
	return &Handler{
		cfg:        cfg,
		notifierUC: notifierUC,
	}
}

// Start creates the topic consumers and connects them to NSQ
func (h *Handler) Start() error {
	assigned, err := nsq.NewConsumer(constants.TopicRideAssigned, h.cfg.NSQ.Channel, h.handleRideAssigned)
	if err != nil {
		return fmt.Errorf("failed to create ride assigned consumer: %w", err)
	}

	completed, err := nsq.NewConsumer(constants.TopicRideCompleted, h.cfg.NSQ.Channel, h.handleRideCompleted)
	if err != nil {
		return fmt.Errorf("failed to create ride completed consumer: %w", err)
	}

	h.consumers = []*nsq.Consumer{assigned, completed}

	for _, c := range h.consumers {
		if len(h.cfg.NSQ.LookupdAddresses) > 0 {
			if err := c.ConnectToLookupd(h.cfg.NSQ.LookupdAddresses); err != nil {
				return err
			}
			continue
		}
		if err := c.ConnectToNSQD(h.cfg.NSQ.NSQDAddress); err != nil {
			return err
		}
	}
	return nil
}

func (h *Handler) handleRideAssigned(body []byte) error {
	var event models.RideAssignedEvent
	if err := nsq.UnmarshalMessage(body, &event); err != nil {
		return err
	}
	return h.notifierUC.ProcessRideAssigned(context.Background(), &event)
}

func (h *Handler) handleRideCompleted(body []byte) error {
	var event models.RideCompletedEvent
	if err := nsq.UnmarshalMessage(body, &event); err != nil {
		return err
	}
	return h.notifierUC.ProcessRideCompleted(context.Background(), &event)
}

// Stop shuts down all consumers
func (h *Handler) Stop() {
	for _, c := range h.consumers {
		c.Stop()
	}
}
