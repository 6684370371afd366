// api/util/event_bus.go

package util

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/casa/api/logging"
)

// Event types published by the services.
const (
	EventUserRegistered  = "user.registered"
	EventUserUpdated     = "user.updated"
	EventUserDeleted     = "user.deleted"
	EventPropertyCreated = "property.created"
	EventPropertyUpdated = "property.updated"
	EventPropertyDeleted = "property.deleted"
	EventMediaUploaded   = "media.uploaded"
	EventMediaDeleted    = "media.deleted"
	EventAccessChecked   = "access.checked"
	EventAccessDenied    = "access.denied"
)

// Event represents an event in the system
type Event struct {
	Type    string
	Payload interface{}
}

// EventHandler is a function that handles an event
type EventHandler func(context.Context, Event) error

// EventBus manages event subscriptions and publications
type EventBus struct {
	subscribers map[string][]EventHandler
	mu          sync.RWMutex
	errorChan   chan error
	wg          sync.WaitGroup
}

// NewEventBus creates a new EventBus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string][]EventHandler),
		errorChan:   make(chan error, 100),
	}
}

// Subscribe adds a new subscriber for a specific event type
func (eb *EventBus) Subscribe(eventType string, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.subscribers[eventType] = append(eb.subscribers[eventType], handler)
}

// Publish runs every subscriber of eventType on its own goroutine. Handlers
// get a context detached from the request's cancellation, since they
// usually outlive it.
func (eb *EventBus) Publish(ctx context.Context, eventType string, payload interface{}) {
	eb.mu.RLock()
	handlers := append([]EventHandler(nil), eb.subscribers[eventType]...)
	eb.mu.RUnlock()

	if len(handlers) == 0 {
		return
	}

	event := Event{
		Type:    eventType,
		Payload: payload,
	}
	handlerCtx := context.WithoutCancel(ctx)

	for _, handler := range handlers {
		eb.wg.Add(1)
		go func(h EventHandler) {
			defer eb.wg.Done()
			if err := h(handlerCtx, event); err != nil {
				select {
				case eb.errorChan <- fmt.Errorf("event handler error (%s): %w", eventType, err):
				default:
					logger.Error("Error channel full, logging event handler error",
						zap.Error(err),
						zap.String("eventType", eventType))
				}
			}
		}(handler)
	}
}

// Start begins processing handler errors until ctx is done
func (eb *EventBus) Start(ctx context.Context) {
	go eb.processErrors(ctx)
}

// Wait blocks until every handler started so far has returned.
func (eb *EventBus) Wait() {
	eb.wg.Wait()
}

func (eb *EventBus) processErrors(ctx context.Context) {
	for {
		select {
		case err := <-eb.errorChan:
			logger.Error("Event handler error", zap.Error(err))
		case <-ctx.Done():
			return
		}
	}
}
