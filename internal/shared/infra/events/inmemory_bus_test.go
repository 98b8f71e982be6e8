package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	sharedBus "github.com/davicafu/adsflow/internal/shared/infra/platform/bus"
)

func TestInMemoryEventBus_FanOutPerDestination(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	defer bus.Close()

	first := bus.Subscribe("ads-created", 1)
	second := bus.Subscribe("ads-created", 1)
	other := bus.Subscribe("other", 1)

	require.NoError(t, bus.Publish(context.Background(), "ads-created", &testEvent{ID: "a1", Title: "abcd"}))

	assert.JSONEq(t, `{"id":"a1","title":"abcd"}`, string(<-first))
	assert.JSONEq(t, `{"id":"a1","title":"abcd"}`, string(<-second))
	assert.Empty(t, other)
}

func TestInMemoryEventBus_FullBufferDoesNotBlock(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	sub := bus.Subscribe("t", 1)

	require.NoError(t, bus.Publish(context.Background(), "t", &testEvent{ID: "a1"}))
	require.NoError(t, bus.Publish(context.Background(), "t", &testEvent{ID: "a2"}))

	assert.Len(t, sub, 1)
	assert.JSONEq(t, `{"id":"a1","title":""}`, string(<-sub))
}

func TestInMemoryEventBus_NoSubscribers(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	assert.NoError(t, bus.Publish(context.Background(), "nobody", &testEvent{ID: "a1"}))
}

func TestInMemoryEventBus_Close(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	sub := bus.Subscribe("t", 1)

	bus.Close()
	bus.Close()

	_, open := <-sub
	assert.False(t, open)
	assert.ErrorIs(t, bus.Publish(context.Background(), "t", &testEvent{ID: "a1"}), sharedBus.ErrPublisherUnavailable)

	late := bus.Subscribe("t", 1)
	_, open = <-late
	assert.False(t, open)
}
