package pubsub

// Publisher sends domain events to subscribers outside the process.
type Publisher interface {
	SendMessage(topic EventType, data any) error
	ProcessMessage(data []byte, returnValue any) error
	Close() error
}
