//go:build unit

package messaging

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"signup-engine/internal/domain/capacity"
	"signup-engine/internal/pkg/clock"
	"signup-engine/internal/usecase/commands"
	"signup-engine/internal/usecase/shared"
	"signup-engine/tests/common/builder"
	"signup-engine/tests/common/memstore"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	mu     sync.Mutex
	sent   []shared.OutboxEvent
	failAt int // 1-based publish attempt that fails; 0 disables
	calls  int
}

func (p *fakePublisher) Publish(_ context.Context, ev shared.OutboxEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.failAt > 0 && p.calls == p.failAt {
		return errors.New("channel closed")
	}
	p.sent = append(p.sent, ev)
	return nil
}

func (p *fakePublisher) Close() error { return nil }

func (p *fakePublisher) topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.sent))
	for _, ev := range p.sent {
		out = append(out, ev.Topic)
	}
	return out
}

type noopInvalidator struct{}

func (noopInvalidator) InvalidateSession(context.Context, uuid.UUID) {}

// seedEvents produces created, updated and cancelled events for one reservation.
func seedEvents(t *testing.T, store *memstore.Store, clk clock.Clock) {
	t.Helper()
	ctx := context.Background()
	s := builder.NewSessionBuilder().WithCapacity(capacity.Pools{A: 3}).BuildReconstructed()
	store.PutSession(s)

	coord := commands.NewReservationCoordinator(store, noopInvalidator{}, clk)
	user := uuid.New()
	res, err := coord.Create(ctx, user, commands.CreateReservationInput{SessionID: s.ID().String(), Request: capacity.Pools{A: 1}})
	require.NoError(t, err)
	two := 2
	_, err = coord.Edit(ctx, user, commands.EditReservationInput{ReservationID: res.Reservation.ID.String(), Request: capacity.Patch{A: &two}})
	require.NoError(t, err)
	_, err = coord.Cancel(ctx, user, res.Reservation.ID.String())
	require.NoError(t, err)
}

func TestRelay_Flush(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes in order and marks them", func(t *testing.T) {
		store := memstore.New()
		clk := clock.NewMockClock(builder.TestNow)
		seedEvents(t, store, clk)
		pub := &fakePublisher{}
		relay := NewRelay(store, pub, clk, time.Second, 10)

		n, err := relay.Flush(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, []string{
			shared.TopicReservationCreated,
			shared.TopicReservationUpdated,
			shared.TopicReservationCancelled,
		}, pub.topics())
		for _, ev := range store.Events() {
			at, ok := store.PublishedAt(ev.ID)
			assert.True(t, ok)
			assert.Equal(t, builder.TestNow, at)
		}

		n, err = relay.Flush(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("batch size limits one flush", func(t *testing.T) {
		store := memstore.New()
		clk := clock.NewMockClock(builder.TestNow)
		seedEvents(t, store, clk)
		pub := &fakePublisher{}
		relay := NewRelay(store, pub, clk, time.Second, 2)

		n, err := relay.Flush(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		n, err = relay.Flush(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("stops at the first failure and keeps the rest pending", func(t *testing.T) {
		store := memstore.New()
		clk := clock.NewMockClock(builder.TestNow)
		seedEvents(t, store, clk)
		pub := &fakePublisher{failAt: 2}
		relay := NewRelay(store, pub, clk, time.Second, 10)

		n, err := relay.Flush(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		events := store.Events()
		_, ok := store.PublishedAt(events[0].ID)
		assert.True(t, ok)
		_, ok = store.PublishedAt(events[1].ID)
		assert.False(t, ok)

		n, err = relay.Flush(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("failure on the first event is reported", func(t *testing.T) {
		store := memstore.New()
		clk := clock.NewMockClock(builder.TestNow)
		seedEvents(t, store, clk)
		relay := NewRelay(store, &fakePublisher{failAt: 1}, clk, time.Second, 10)

		n, err := relay.Flush(ctx)
		assert.Error(t, err)
		assert.Zero(t, n)
	})
}

type fakeChannel struct {
	exchange, key string
	msg           amqp.Publishing
	closed        bool
}

func (c *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	c.exchange, c.key, c.msg = exchange, key, msg
	return nil
}

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

func TestAMQPPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p := &AMQPPublisher{ch: ch, queue: "signup.events"}
	ev := shared.OutboxEvent{
		ID:        uuid.New(),
		Topic:     shared.TopicSessionDeleted,
		Payload:   []byte(`{"session_id":"x"}`),
		CreatedAt: builder.TestNow,
	}

	require.NoError(t, p.Publish(context.Background(), ev))
	assert.Equal(t, "", ch.exchange)
	assert.Equal(t, "signup.events", ch.key)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, ev.Topic, ch.msg.Type)
	assert.Equal(t, ev.ID.String(), ch.msg.MessageId)
	assert.Equal(t, ev.Payload, ch.msg.Body)

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}
