package util

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventBus_PublishRunsEverySubscriber(t *testing.T) {
	bus := NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	bus.Start(ctx)

	var calls atomic.Int32
	var payload atomic.Value
	bus.Subscribe(EventPropertyDeleted, func(ctx context.Context, e Event) error {
		calls.Add(1)
		payload.Store(e.Payload)
		return nil
	})
	bus.Subscribe(EventPropertyDeleted, func(ctx context.Context, e Event) error {
		calls.Add(1)
		return errors.New("handler failed")
	})
	bus.Subscribe(EventUserDeleted, func(ctx context.Context, e Event) error {
		t.Error("unrelated subscriber called")
		return nil
	})

	bus.Publish(ctx, EventPropertyDeleted, []string{"/properties/1/a.jpg"})
	bus.Wait()

	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, []string{"/properties/1/a.jpg"}, payload.Load())
}

func TestEventBus_HandlersOutliveRequestContext(t *testing.T) {
	bus := NewEventBus()
	reqCtx, cancel := context.WithCancel(context.Background())

	var handlerErr atomic.Value
	bus.Subscribe(EventMediaDeleted, func(ctx context.Context, e Event) error {
		handlerErr.Store(ctx.Err() == nil)
		return nil
	})

	cancel()
	bus.Publish(reqCtx, EventMediaDeleted, nil)
	bus.Wait()

	assert.Equal(t, true, handlerErr.Load())
}

func TestEventBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewEventBus()
	assert.NotPanics(t, func() {
		bus.Publish(context.Background(), EventUserUpdated, nil)
		bus.Wait()
	})
}
