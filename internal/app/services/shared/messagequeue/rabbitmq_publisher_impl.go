package messagequeue

import (
	"context"
	"sync"

	"openwindows-service/internal/pkg/constvars"
	"openwindows-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type rabbitMQPublisher struct {
	ch  *amqp.Channel
	log *zap.Logger
	mu  sync.Mutex

	declared map[string]bool
}

// NewRabbitMQPublisher opens one channel on the shared connection. Queues are
// declared durable on first publish and remembered so redeclaration is skipped.
func NewRabbitMQPublisher(conn *amqp.Connection, log *zap.Logger) (QueuePublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	return &rabbitMQPublisher{
		ch:       ch,
		log:      log,
		declared: make(map[string]bool),
	}, nil
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, queueName string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.declared[queueName] {
		_, err = p.ch.QueueDeclare(
			queueName,
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,
		)
		if err != nil {
			return exceptions.ErrQueuePublishMessage(err, queueName)
		}
		p.declared[queueName] = true
	}

	err = p.ch.PublishWithContext(ctx,
		"",        // exchange
		queueName, // routing key
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrQueuePublishMessage(err, queueName)
	}

	p.log.Debug("rabbitMQPublisher.Publish message published",
		zap.String(constvars.LoggingQueueKey, queueName),
	)
	return nil
}
