package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RavenCompanion_Go/internal/event"
)

func pacific(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Skipf("time zone data unavailable: %v", err)
	}
	return loc
}

func collectAlerts(bus *event.MemoryBus) *[]event.AlertPayloadV1 {
	var got []event.AlertPayloadV1
	bus.Subscribe(event.AlertRaised, func(_ context.Context, e event.Event) error {
		p, err := event.DecodePayload[event.AlertPayloadV1](e.Payload)
		if err != nil {
			return err
		}
		got = append(got, p)
		return nil
	})
	return &got
}

func TestResetAlertJob(t *testing.T) {
	loc := pacific(t)
	ctx := context.Background()

	t.Run("fires once per date during the reset hour", func(t *testing.T) {
		bus := event.NewMemoryBus()
		got := collectAlerts(bus)
		job := NewResetAlertJob(bus, loc, 6)

		clock := time.Date(2026, 2, 10, 5, 59, 0, 0, loc)
		job.now = func() time.Time { return clock }

		require.NoError(t, job.Process(ctx))
		assert.Empty(t, *got)

		for _, minute := range []int{0, 1, 30, 59} {
			clock = time.Date(2026, 2, 10, 6, minute, 0, 0, loc)
			require.NoError(t, job.Process(ctx))
		}
		require.Len(t, *got, 1)
		assert.Equal(t, event.AlertTypeReset, (*got)[0].Type)
		assert.Equal(t, ResetAlertMessage, (*got)[0].Message)
		assert.Equal(t, "2026-02-10", (*got)[0].DateKey)

		clock = time.Date(2026, 2, 11, 6, 0, 0, 0, loc)
		require.NoError(t, job.Process(ctx))
		assert.Len(t, *got, 2)
		assert.Equal(t, "2026-02-11", job.LastSent())
	})

	t.Run("uses the reset zone, not the caller's", func(t *testing.T) {
		bus := event.NewMemoryBus()
		got := collectAlerts(bus)
		job := NewResetAlertJob(bus, loc, 6)

		// 14:00 UTC is 06:00 in Los Angeles during standard time
		job.now = func() time.Time { return time.Date(2026, 1, 5, 14, 0, 0, 0, time.UTC) }
		require.NoError(t, job.Process(ctx))
		require.Len(t, *got, 1)
		assert.Equal(t, "2026-01-05", (*got)[0].DateKey)
	})

	t.Run("publish failure still marks the date", func(t *testing.T) {
		bus := event.NewMemoryBus()
		bus.Subscribe(event.AlertRaised, func(context.Context, event.Event) error {
			return errors.New("overlay closed")
		})
		job := NewResetAlertJob(bus, loc, 6)
		job.now = func() time.Time { return time.Date(2026, 3, 1, 6, 5, 0, 0, loc) }

		assert.Error(t, job.Process(ctx))
		assert.Equal(t, "2026-03-01", job.LastSent())
		assert.NoError(t, job.Process(ctx))
	})
}
