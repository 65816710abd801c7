package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/xavierca1/leadboard/internal/metrics"
)

// Worker is the audit consumer: it writes every lead event to the log.
type Worker struct {
	Channel *amqp.Channel
	Log     *zap.SugaredLogger
}

func NewWorker(ch *amqp.Channel, log *zap.SugaredLogger) *Worker {
	return &Worker{Channel: ch, Log: log}
}

// Start consumes queueName until ctx is cancelled or the channel closes.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.ConsumeWithContext(ctx,
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("register consumer on %s: %w", queueName, err)
	}

	w.Log.Infow("audit worker listening", "queue", queueName)
	for {
		select {
		case <-ctx.Done():
			w.Log.Infow("audit worker stopped", "queue", queueName)
			return nil
		case d, ok := <-msgs:
			if !ok {
				return fmt.Errorf("delivery channel for %s closed", queueName)
			}
			w.handle(d)
		}
	}
}

func (w *Worker) handle(d amqp.Delivery) {
	var event Event
	if err := json.Unmarshal(d.Body, &event); err != nil {
		w.Log.Errorw("malformed event, dead-lettering", "routing_key", d.RoutingKey, "err", err)
		metrics.RecordEventConsumed(d.RoutingKey, err)
		// no requeue, the DLX keeps it for inspection
		d.Nack(false, false)
		return
	}

	w.Log.Infow("lead event",
		"id", event.ID,
		"type", event.Type,
		"lead_id", event.LeadID,
		"status", event.Status,
		"template_id", event.TemplateID,
		"occurred_at", event.OccurredAt,
	)
	metrics.RecordEventConsumed(event.Type, nil)
	d.Ack(false)
}
