package gateway

import (
	"github.com/swiftride/swiftride/internal/pkg/constants"
	"github.com/swiftride/swiftride/internal/pkg/models"
	"github.com/swiftride/swiftride/internal/pkg/nsq"
)

// EventGateway publishes ride lifecycle events to NSQ
type EventGateway struct {
	producer *nsq.Producer
}

// NewEventGateway creates a new event gateway
func NewEventGateway(producer *nsq.Producer) *EventGateway {
	return &EventGateway{producer: producer}
}

// PublishRideCompleted announces a completed ride for the notifier to pick up
func (g *EventGateway) PublishRideCompleted(event *models.RideCompletedEvent) error {
	return g.producer.Publish(constants.TopicRideCompleted, event)
}
