package messaging

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lezerquera/apk-ZIMI/pkg/metrics"
)

type recordingBroker struct {
	NopBroker
	channels []string
	messages []interface{}
	err      error
}

func (b *recordingBroker) Publish(_ context.Context, channel string, message interface{}) error {
	if b.err != nil {
		return b.err
	}
	b.channels = append(b.channels, channel)
	b.messages = append(b.messages, message)
	return nil
}

func TestEventPublisherPrefixesChannel(t *testing.T) {
	broker := &recordingBroker{}
	m := metrics.New("test", prometheus.NewRegistry())
	p := NewEventPublisher(broker, "zimi", m)

	require.NoError(t, p.Publish(context.Background(), EventAppointmentRequested, map[string]string{"id": "a1"}))

	require.Len(t, broker.channels, 1)
	assert.Equal(t, "zimi.appointment.requested", broker.channels[0])
	msg, ok := broker.messages[0].(Message)
	require.True(t, ok)
	assert.Equal(t, EventAppointmentRequested, msg.Type)
	assert.False(t, msg.OccurredAt.IsZero())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues("zimi.appointment.requested", "success")))
}

func TestEventPublisherCountsFailures(t *testing.T) {
	broker := &recordingBroker{err: errors.New("down")}
	m := metrics.New("test", prometheus.NewRegistry())
	p := NewEventPublisher(broker, "", m)

	err := p.Publish(context.Background(), EventMessageCreated, nil)
	assert.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues(EventMessageCreated, "error")))
}

func TestNopBrokerSubscribeClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := NopBroker{}.Subscribe(ctx, "any")
	require.NoError(t, err)
	cancel()
	_, open := <-ch
	assert.False(t, open)
}
