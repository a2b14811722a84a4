package counter

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/osse101/RavenCompanion_Go/internal/domain"
	"github.com/osse101/RavenCompanion_Go/internal/logger"
)

// Repository is the persistence the tracker needs
type Repository interface {
	Counters(ctx context.Context) (domain.Counters, error)
	UpdateCounters(ctx context.Context, fn func(domain.Counters) (domain.Counters, error)) (domain.Counters, error)
	GlobalStats(ctx context.Context) (domain.GlobalStats, error)
	UpdateGlobalStats(ctx context.Context, fn func(domain.GlobalStats) (domain.GlobalStats, error)) (domain.GlobalStats, error)
	Clear(ctx context.Context, keys ...string) error
}

// Tracker maintains per-item counters, their milestones, and the global
// acquisition statistics
type Tracker interface {
	Get(ctx context.Context, id string) (domain.Counter, error)
	All(ctx context.Context) (domain.Counters, error)
	Increment(ctx context.Context, id string, amount int) (domain.Counter, error)
	Set(ctx context.Context, id string, value int) (domain.Counter, error)
	Reset(ctx context.Context, id string) (domain.Counter, error)
	RecordMilestone(ctx context.Context, id string, tier domain.Tier, method domain.Method, currentCount int) (domain.Counter, error)
	RemoveMilestone(ctx context.Context, id string, tier domain.Tier) (domain.Counter, error)
	GlobalStats(ctx context.Context) (domain.GlobalStatsView, error)
	ResetAll(ctx context.Context) error
}

type tracker struct {
	repo Repository
	now  func() time.Time
}

// NewTracker creates a new counter tracker
func NewTracker(repo Repository) Tracker {
	return &tracker{repo: repo, now: time.Now}
}

func validID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: counter id is required", domain.ErrInvalidInput)
	}
	return nil
}

// normalized gives a counter a non-nil milestone list
func normalized(c domain.Counter) domain.Counter {
	if c.Milestones == nil {
		c.Milestones = []domain.Milestone{}
	}
	return c
}

func (t *tracker) Get(ctx context.Context, id string) (domain.Counter, error) {
	if err := validID(id); err != nil {
		return domain.Counter{}, err
	}
	counters, err := t.repo.Counters(ctx)
	if err != nil {
		return domain.Counter{}, fmt.Errorf(ErrMsgLoadCountersFailed, err)
	}
	return normalized(counters[id]), nil
}

func (t *tracker) All(ctx context.Context) (domain.Counters, error) {
	counters, err := t.repo.Counters(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadCountersFailed, err)
	}
	return counters, nil
}

// update applies fn to one counter and persists all counters
func (t *tracker) update(ctx context.Context, id string, fn func(domain.Counter) (domain.Counter, error)) (domain.Counter, error) {
	var result domain.Counter
	_, err := t.repo.UpdateCounters(ctx, func(counters domain.Counters) (domain.Counters, error) {
		next, err := fn(normalized(counters[id]))
		if err != nil {
			return nil, err
		}
		counters[id] = next
		result = next
		return counters, nil
	})
	if err != nil {
		return domain.Counter{}, err
	}
	return result, nil
}

func (t *tracker) touch(c domain.Counter) domain.Counter {
	now := t.now()
	c.LastUpdated = &now
	return c
}

// Increment adds amount (|amount| <= 1000) and floors the result at zero
func (t *tracker) Increment(ctx context.Context, id string, amount int) (domain.Counter, error) {
	if err := validID(id); err != nil {
		return domain.Counter{}, err
	}
	if amount < -domain.MaxIncrementMagnitude || amount > domain.MaxIncrementMagnitude {
		return domain.Counter{}, domain.ErrAmountOutOfRange
	}

	c, err := t.update(ctx, id, func(c domain.Counter) (domain.Counter, error) {
		c.Count = max(0, c.Count+amount)
		return t.touch(c), nil
	})
	if err != nil {
		return domain.Counter{}, err
	}

	logger.FromContext(ctx).Debug(LogMsgCounterUpdated, "id", id, "amount", amount, "count", c.Count)
	return c, nil
}

// Set replaces the count with value in [0, 999999]
func (t *tracker) Set(ctx context.Context, id string, value int) (domain.Counter, error) {
	if err := validID(id); err != nil {
		return domain.Counter{}, err
	}
	if value < 0 || value > domain.MaxCounterValue {
		return domain.Counter{}, domain.ErrValueOutOfRange
	}

	return t.update(ctx, id, func(c domain.Counter) (domain.Counter, error) {
		c.Count = value
		return t.touch(c), nil
	})
}

// Reset zeroes the count. Milestones are kept.
func (t *tracker) Reset(ctx context.Context, id string) (domain.Counter, error) {
	if err := validID(id); err != nil {
		return domain.Counter{}, err
	}
	return t.update(ctx, id, func(c domain.Counter) (domain.Counter, error) {
		c.Count = 0
		return t.touch(c), nil
	})
}

// RecordMilestone stores how tier was obtained, replacing any earlier
// milestone for that tier, and folds it into the global stats. The two
// writes are not atomic: when the stats write fails the error is returned
// but the milestone stays recorded.
func (t *tracker) RecordMilestone(ctx context.Context, id string, tier domain.Tier, method domain.Method, currentCount int) (domain.Counter, error) {
	if err := validID(id); err != nil {
		return domain.Counter{}, err
	}
	if !tier.Valid() {
		return domain.Counter{}, fmt.Errorf("%w: %q", domain.ErrInvalidTier, tier)
	}
	if !method.Valid() {
		return domain.Counter{}, fmt.Errorf("%w: %q", domain.ErrInvalidMethod, method)
	}
	if currentCount < 0 || currentCount > domain.MaxCounterValue {
		return domain.Counter{}, domain.ErrValueOutOfRange
	}

	milestone := domain.Milestone{Tier: tier, Method: method, Date: t.now()}
	if method == domain.MethodCollected {
		n := currentCount
		milestone.Count = &n
	}

	c, err := t.update(ctx, id, func(c domain.Counter) (domain.Counter, error) {
		kept := make([]domain.Milestone, 0, len(c.Milestones)+1)
		for _, m := range c.Milestones {
			if m.Tier != tier {
				kept = append(kept, m)
			}
		}
		c.Milestones = append(kept, milestone)
		return c, nil
	})
	if err != nil {
		return domain.Counter{}, err
	}

	if _, err := t.repo.UpdateGlobalStats(ctx, func(s domain.GlobalStats) (domain.GlobalStats, error) {
		return applyMilestone(s, id, tier, method, currentCount), nil
	}); err != nil {
		return domain.Counter{}, fmt.Errorf(ErrMsgSaveGlobalStatsFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgMilestoneRecorded, "id", id, "tier", tier, "method", method, "count", currentCount)
	return c, nil
}

// applyMilestone folds one recorded milestone into the accumulators
func applyMilestone(s domain.GlobalStats, id string, tier domain.Tier, method domain.Method, count int) domain.GlobalStats {
	switch method {
	case domain.MethodGambled:
		s.TotalGambled++
	case domain.MethodPurchased:
		s.TotalPurchased++
	case domain.MethodCollected:
		if count <= 0 {
			break
		}
		drop := domain.DropRecord{ItemID: id, Tier: tier, Count: count}
		s.AverageDrops = append(s.AverageDrops, drop)
		if s.LuckiestDrop == nil || count < s.LuckiestDrop.Count {
			s.LuckiestDrop = &drop
		}
	}
	return s
}

// RemoveMilestone drops the tier's milestone. Global stats are left as they
// are; they record history, not the current milestone set.
func (t *tracker) RemoveMilestone(ctx context.Context, id string, tier domain.Tier) (domain.Counter, error) {
	if err := validID(id); err != nil {
		return domain.Counter{}, err
	}
	if !tier.Valid() {
		return domain.Counter{}, fmt.Errorf("%w: %q", domain.ErrInvalidTier, tier)
	}

	c, err := t.update(ctx, id, func(c domain.Counter) (domain.Counter, error) {
		kept := make([]domain.Milestone, 0, len(c.Milestones))
		for _, m := range c.Milestones {
			if m.Tier != tier {
				kept = append(kept, m)
			}
		}
		c.Milestones = kept
		return c, nil
	})
	if err != nil {
		return domain.Counter{}, err
	}

	logger.FromContext(ctx).Info(LogMsgMilestoneRemoved, "id", id, "tier", tier)
	return c, nil
}

// GlobalStats returns the accumulators and the rounded mean drop count
func (t *tracker) GlobalStats(ctx context.Context) (domain.GlobalStatsView, error) {
	s, err := t.repo.GlobalStats(ctx)
	if err != nil {
		return domain.GlobalStatsView{}, fmt.Errorf(ErrMsgLoadGlobalStatsFailed, err)
	}
	return domain.GlobalStatsView{GlobalStats: s, AverageCount: AverageCount(s.AverageDrops)}, nil
}

// AverageCount is round(mean(count)), or 0 without drops
func AverageCount(drops []domain.DropRecord) int {
	if len(drops) == 0 {
		return 0
	}
	sum := 0
	for _, d := range drops {
		sum += d.Count
	}
	return int(math.Round(float64(sum) / float64(len(drops))))
}

// ResetAll clears every counter, milestone, and the global stats derived
// from them. Keys are cleared one after another without rollback.
func (t *tracker) ResetAll(ctx context.Context) error {
	if err := t.repo.Clear(ctx, domain.CounterKeys...); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgCountersReset)
	return nil
}
