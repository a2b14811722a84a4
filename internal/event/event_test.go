package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	var got []Event

	bus.Subscribe(AlertRaised, func(_ context.Context, e Event) error {
		got = append(got, e)
		return nil
	})

	sent := time.Date(2026, 1, 2, 6, 0, 0, 0, time.UTC)
	require.NoError(t, bus.Publish(context.Background(), NewResetAlertEvent("reset!", "2026-01-02", sent)))

	require.Len(t, got, 1)
	assert.Equal(t, EventSchemaVersion, got[0].Version)
	payload, err := DecodePayload[AlertPayloadV1](got[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, AlertTypeReset, payload.Type)
	assert.Equal(t, "2026-01-02", payload.DateKey)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), NewProgressResetEvent([]string{"kill-counters"})))
}

func TestMemoryBus_OtherTypesIgnored(t *testing.T) {
	bus := NewMemoryBus()
	called := false
	bus.Subscribe(DataReloaded, func(context.Context, Event) error {
		called = true
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), NewMilestoneEvent("wolf", "base", "collected", 3)))
	assert.False(t, called)
}

func TestMemoryBus_HandlerErrors(t *testing.T) {
	bus := NewMemoryBus()
	calls := 0
	bus.Subscribe(DataReloaded, func(context.Context, Event) error {
		calls++
		return errors.New("first failed")
	})
	bus.Subscribe(DataReloaded, func(context.Context, Event) error {
		calls++
		return nil
	})

	err := bus.Publish(context.Background(), NewDataReloadedEvent(1, 2, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 errors")
	assert.Equal(t, 2, calls, "later handlers still run")
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	raw := map[string]any{"counter_id": "wolf", "tier": "golden", "method": "gambled", "count": 0}
	p, err := DecodePayload[MilestonePayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, "wolf", p.CounterID)
	assert.Equal(t, "golden", p.Tier)

	_, err = DecodePayload[MilestonePayloadV1](func() {})
	assert.Error(t, err)
}
