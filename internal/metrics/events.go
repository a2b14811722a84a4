package metrics

import (
	"context"

	"github.com/osse101/RavenCompanion_Go/internal/event"
	"github.com/osse101/RavenCompanion_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all event types the collector records
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range []event.Type{
		event.AlertRaised,
		event.DataReloaded,
		event.MilestoneLogged,
		event.ProgressReset,
	} {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.AlertRaised:
		p, err := event.DecodePayload[event.AlertPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
			return nil
		}
		AlertsSent.WithLabelValues(p.Type).Inc()

	case event.DataReloaded:
		p, err := event.DecodePayload[event.DataReloadedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
			return nil
		}
		CatalogItems.WithLabelValues(KindCosmetic).Set(float64(p.Cosmetics))
		CatalogItems.WithLabelValues(KindTrophy).Set(float64(p.Trophies))
		CatalogWarnings.Set(float64(len(p.Warnings)))

	case event.MilestoneLogged:
		p, err := event.DecodePayload[event.MilestonePayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
			return nil
		}
		MilestonesRecorded.WithLabelValues(p.Method).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
