package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishDeliversToSubscribers(t *testing.T) {
	bus := New()

	var received []Event
	bus.Subscribe(EventSaleCompleted, func(e Event) {
		received = append(received, e)
	})

	bus.Publish(Event{Type: EventSaleCompleted, AggregateID: "sale-1"})

	require.Len(t, received, 1)
	assert.Equal(t, "sale-1", received[0].AggregateID)
	assert.False(t, received[0].OccurredAt.IsZero(), "el bus debe estampar OccurredAt")
}

func TestBus_PublishIgnoresUnsubscribedTypes(t *testing.T) {
	bus := New()

	called := false
	bus.Subscribe(EventSessionClosed, func(e Event) {
		called = true
	})

	bus.Publish(Event{Type: EventSaleCompleted})

	assert.False(t, called)
}

func TestBus_PanickingHandlerDoesNotStopDelivery(t *testing.T) {
	bus := New()

	bus.Subscribe(EventSessionOpened, func(e Event) {
		panic("boom")
	})

	delivered := false
	bus.Subscribe(EventSessionOpened, func(e Event) {
		delivered = true
	})

	bus.Publish(Event{Type: EventSessionOpened})

	assert.True(t, delivered, "el segundo handler debe recibir el evento")
}
