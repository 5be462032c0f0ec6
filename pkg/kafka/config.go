package kafka

// Config holds broker addresses and the destination topic. The service
// publishes every domain event to one topic, keyed by aggregate id.
type Config struct {
	Brokers []string
	Topic   string
}
