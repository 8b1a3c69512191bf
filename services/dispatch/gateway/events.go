package gateway

import (
	"github.com/swiftride/swiftride/internal/pkg/constants"
	"github.com/swiftride/swiftride/internal/pkg/models"
	"github.com/swiftride/swiftride/internal/pkg/nsq"
)

// EventGateway publishes dispatch events to NSQ
type EventGateway struct {
	producer *nsq.Producer
}

// NewEventGateway creates a new event gateway
func NewEventGateway(producer *nsq.Producer) *EventGateway {
	return &EventGateway{producer: producer}
}

// PublishRideAssigned announces a new assignment for the notifier to pick up
func (g *EventGateway) PublishRideAssigned(event *models.RideAssignedEvent) error {
	return g.producer.Publish(constants.TopicRideAssigned, event)
}
