//go:build unit

package messaging

import (
	"context"
	"errors"
	"testing"

	"hospital-ops/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	closed    bool
	published []amqp.Publishing
	closes    int
}

func (c *fakeChannel) PublishWithContext(_ context.Context, _, _ string, _, _ bool, msg amqp.Publishing) error {
	if c.closed {
		return amqp.ErrClosed
	}
	c.published = append(c.published, msg)
	return nil
}

func (c *fakeChannel) IsClosed() bool { return c.closed }

// fakeBroker hands out a fresh channel per dial and can refuse dials while down.
type fakeBroker struct {
	channels []*fakeChannel
	down     bool
}

func (b *fakeBroker) dial() (*session, error) {
	if b.down {
		return nil, errors.New("dial tcp: connection refused")
	}
	ch := &fakeChannel{}
	b.channels = append(b.channels, ch)
	return &session{ch: ch, close: func() { ch.closes++ }}, nil
}

func (b *fakeBroker) current() *fakeChannel {
	return b.channels[len(b.channels)-1]
}

func TestPublisher_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes persistent json with the message id", func(t *testing.T) {
		broker := &fakeBroker{}
		p, err := newPublisher(broker.dial, "hospital.events")
		require.NoError(t, err)

		require.NoError(t, p.Publish(ctx, "ticket.issued", "evt-1", []byte(`{}`)))
		msgs := broker.current().published
		require.Len(t, msgs, 1)
		assert.Equal(t, "evt-1", msgs[0].MessageId)
		assert.Equal(t, amqp.Persistent, msgs[0].DeliveryMode)
		assert.Equal(t, "application/json", msgs[0].ContentType)
	})

	t.Run("redials after the broker closes the channel", func(t *testing.T) {
		broker := &fakeBroker{}
		p, err := newPublisher(broker.dial, "hospital.events")
		require.NoError(t, err)

		first := broker.current()
		first.closed = true

		require.NoError(t, p.Publish(ctx, "drug.stock.low", "evt-2", []byte(`{}`)))
		require.Len(t, broker.channels, 2)
		assert.Equal(t, 1, first.closes)
		assert.Len(t, broker.current().published, 1)
	})

	t.Run("publish fails while the broker is down and recovers after", func(t *testing.T) {
		broker := &fakeBroker{}
		p, err := newPublisher(broker.dial, "hospital.events")
		require.NoError(t, err)

		broker.current().closed = true
		broker.down = true
		err = p.Publish(ctx, "ticket.issued", "evt-3", []byte(`{}`))
		require.Error(t, err)
		assert.True(t, errs.Is(err, ErrPublishFailed))

		broker.down = false
		require.NoError(t, p.Publish(ctx, "ticket.issued", "evt-3", []byte(`{}`)))
		assert.Len(t, broker.current().published, 1)
	})

	t.Run("close releases the session once", func(t *testing.T) {
		broker := &fakeBroker{}
		p, err := newPublisher(broker.dial, "hospital.events")
		require.NoError(t, err)

		p.Close()
		p.Close()
		assert.Equal(t, 1, broker.current().closes)
	})
}

func TestNewPublisher_DialFailure(t *testing.T) {
	broker := &fakeBroker{down: true}
	_, err := newPublisher(broker.dial, "hospital.events")
	require.Error(t, err)
}
