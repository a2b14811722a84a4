package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/RavenCompanion_Go/internal/event"
	"github.com/osse101/RavenCompanion_Go/internal/logger"
)

// ResetAlertJob publishes one alert per calendar day once the reset hour
// is reached in the reset time zone. It is meant to be run every minute.
type ResetAlertJob struct {
	bus      event.Bus
	location *time.Location
	hour     int
	now      func() time.Time

	mu       sync.Mutex
	lastSent string
}

// NewResetAlertJob creates a reset alert job for hour in location
func NewResetAlertJob(bus event.Bus, location *time.Location, hour int) *ResetAlertJob {
	if location == nil {
		location = time.UTC
	}
	return &ResetAlertJob{bus: bus, location: location, hour: hour, now: time.Now}
}

// Process checks the clock and publishes the alert when due
func (j *ResetAlertJob) Process(ctx context.Context) error {
	local := j.now().In(j.location)
	if local.Hour() != j.hour {
		return nil
	}
	dateKey := local.Format(DateKeyLayout)

	j.mu.Lock()
	if j.lastSent == dateKey {
		j.mu.Unlock()
		return nil
	}
	j.lastSent = dateKey
	j.mu.Unlock()

	log := logger.FromContext(ctx)
	if err := j.bus.Publish(ctx, event.NewResetAlertEvent(ResetAlertMessage, dateKey, local)); err != nil {
		log.Error(LogMsgResetAlertFailed, "date", dateKey, "error", err)
		return err
	}
	log.Info(LogMsgResetAlertSent, "date", dateKey)
	return nil
}

// LastSent returns the date key of the last alert, or "" if none was sent
func (j *ResetAlertJob) LastSent() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.lastSent
}
