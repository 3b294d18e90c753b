package messagequeue

import "context"

type QueuePublisher interface {
	Publish(ctx context.Context, queueName string, payload interface{}) error
}
