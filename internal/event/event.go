package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/RavenCompanion_Go/internal/logger"
)

// Type represents the type of an event
type Type string

// Event represents a notification passed between components
type Event struct {
	Version string `json:"version"`
	Type    Type   `json:"type"`
	Payload any    `json:"payload"`
}

// AlertPayloadV1 is forwarded to the overlay as a toast
type AlertPayloadV1 struct {
	Type    string    `json:"type"`
	Message string    `json:"message"`
	DateKey string    `json:"date_key"`
	SentAt  time.Time `json:"sent_at"`
}

// DataReloadedPayloadV1 reports a catalog (re)load
type DataReloadedPayloadV1 struct {
	Cosmetics int      `json:"cosmetics"`
	Trophies  int      `json:"trophies"`
	Warnings  []string `json:"warnings"`
}

// MilestonePayloadV1 describes a recorded milestone
type MilestonePayloadV1 struct {
	CounterID string `json:"counter_id"`
	Tier      string `json:"tier"`
	Method    string `json:"method"`
	Count     int    `json:"count"`
}

// ProgressResetPayloadV1 names the keys that were cleared
type ProgressResetPayloadV1 struct {
	Keys []string `json:"keys"`
}

// NewResetAlertEvent creates the daily reset alert for dateKey
func NewResetAlertEvent(message, dateKey string, sentAt time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AlertRaised,
		Payload: AlertPayloadV1{
			Type:    AlertTypeReset,
			Message: message,
			DateKey: dateKey,
			SentAt:  sentAt,
		},
	}
}

// NewDataReloadedEvent creates a data reloaded event
func NewDataReloadedEvent(cosmetics, trophies int, warnings []string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DataReloaded,
		Payload: DataReloadedPayloadV1{Cosmetics: cosmetics, Trophies: trophies, Warnings: warnings},
	}
}

// NewMilestoneEvent creates a milestone recorded event
func NewMilestoneEvent(counterID, tier, method string, count int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MilestoneLogged,
		Payload: MilestonePayloadV1{CounterID: counterID, Tier: tier, Method: method, Count: count},
	}
}

// NewProgressResetEvent creates a progress reset event
func NewProgressResetEvent(keys []string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ProgressReset,
		Payload: ProgressResetPayloadV1{Keys: keys},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every handler subscribed to the event type, in order. All
// handlers run even when one fails.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	logger.FromContext(ctx).Debug(LogMsgEventPublished, "type", event.Type, "handlers", len(handlers))

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
