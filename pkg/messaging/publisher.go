package messaging

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lezerquera/apk-ZIMI/pkg/metrics"
)

// EventPublisher wraps a Broker with a channel prefix and instrumentation.
// Each event type goes to its own channel, "<prefix>.<event type>".
type EventPublisher struct {
	broker  Broker
	prefix  string
	metrics *metrics.Metrics
}

func NewEventPublisher(broker Broker, prefix string, m *metrics.Metrics) *EventPublisher {
	if broker == nil {
		broker = NopBroker{}
	}
	if m == nil {
		m = metrics.NewNop()
	}
	return &EventPublisher{broker: broker, prefix: prefix, metrics: m}
}

// Channel returns the broker channel for eventType.
func (p *EventPublisher) Channel(eventType string) string {
	if p.prefix == "" {
		return eventType
	}
	return p.prefix + "." + eventType
}

func (p *EventPublisher) Publish(ctx context.Context, eventType string, payload interface{}) error {
	channel := p.Channel(eventType)
	err := p.broker.Publish(ctx, channel, Message{
		Type:       eventType,
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		p.metrics.EventsPublished.WithLabelValues(channel, "error").Inc()
		log.Warn().Err(err).Str("channel", channel).Msg("failed to publish event")
		return err
	}
	p.metrics.EventsPublished.WithLabelValues(channel, "success").Inc()
	return nil
}
