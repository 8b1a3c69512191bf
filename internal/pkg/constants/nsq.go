package constants

// NSQ topics
const (
	// Dispatch events
	TopicRideAssigned = "ride.assigned"

	// Lifecycle events
	TopicRideCompleted = "ride.completed"
)
