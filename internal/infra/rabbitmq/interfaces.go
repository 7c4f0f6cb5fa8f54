package rabbitmq

import "context"

type PublisherInterface interface {
	Publish(ctx context.Context, routingKey string, data any) error
}

var _ PublisherInterface = (*Publisher)(nil)
var _ PublisherInterface = (*NoopPublisher)(nil)

// NoopPublisher is wired when no broker is configured; events are dropped.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, any) error { return nil }
