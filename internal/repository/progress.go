package repository

import (
	"context"
	"fmt"

	"github.com/osse101/RavenCompanion_Go/internal/concurrency"
	"github.com/osse101/RavenCompanion_Go/internal/domain"
	"github.com/osse101/RavenCompanion_Go/internal/logger"
)

// Progress gives typed access to the persisted progress keys. Every read
// supplies the zero state for its key so callers never see nil maps.
type Progress struct {
	store Store
	locks *concurrency.LockManager
}

// NewProgress creates a Progress repository over store
func NewProgress(store Store) *Progress {
	return &Progress{store: store, locks: concurrency.NewLockManager()}
}

// Store exposes the underlying store
func (p *Progress) Store() Store {
	return p.store
}

func emptyTrophyStates() domain.TrophyStates     { return domain.TrophyStates{} }
func emptyCosmeticStates() domain.CosmeticStates { return domain.CosmeticStates{} }
func emptyCounters() domain.Counters             { return domain.Counters{} }
func emptyTargets() []domain.ActiveTarget        { return []domain.ActiveTarget{} }
func emptyCollectedLog() domain.CollectedLog     { return domain.CollectedLog{} }

func emptyGlobalStats() domain.GlobalStats {
	return domain.GlobalStats{AverageDrops: []domain.DropRecord{}}
}

// TrophyStates returns all trophy tier states
func (p *Progress) TrophyStates(ctx context.Context) (domain.TrophyStates, error) {
	v, err := GetOrDefault(ctx, p.store, domain.KeyTrophyStates, emptyTrophyStates())
	if v == nil {
		v = emptyTrophyStates()
	}
	return v, err
}

// UpdateTrophyStates applies fn to the trophy states and persists the result
func (p *Progress) UpdateTrophyStates(ctx context.Context, fn func(domain.TrophyStates) (domain.TrophyStates, error)) (domain.TrophyStates, error) {
	return Update(ctx, p.store, p.locks, domain.KeyTrophyStates, emptyTrophyStates, nonNilMap(emptyTrophyStates, fn))
}

// CosmeticStates returns all cosmetic states
func (p *Progress) CosmeticStates(ctx context.Context) (domain.CosmeticStates, error) {
	v, err := GetOrDefault(ctx, p.store, domain.KeyCosmeticStates, emptyCosmeticStates())
	if v == nil {
		v = emptyCosmeticStates()
	}
	return v, err
}

// UpdateCosmeticStates applies fn to the cosmetic states and persists the result
func (p *Progress) UpdateCosmeticStates(ctx context.Context, fn func(domain.CosmeticStates) (domain.CosmeticStates, error)) (domain.CosmeticStates, error) {
	return Update(ctx, p.store, p.locks, domain.KeyCosmeticStates, emptyCosmeticStates, nonNilMap(emptyCosmeticStates, fn))
}

// Counters returns all counters, including the shared one
func (p *Progress) Counters(ctx context.Context) (domain.Counters, error) {
	v, err := GetOrDefault(ctx, p.store, domain.KeyCounters, emptyCounters())
	if v == nil {
		v = emptyCounters()
	}
	return v, err
}

// UpdateCounters applies fn to the counters and persists the result
func (p *Progress) UpdateCounters(ctx context.Context, fn func(domain.Counters) (domain.Counters, error)) (domain.Counters, error) {
	return Update(ctx, p.store, p.locks, domain.KeyCounters, emptyCounters, nonNilMap(emptyCounters, fn))
}

// GlobalStats returns the cross-item acquisition statistics
func (p *Progress) GlobalStats(ctx context.Context) (domain.GlobalStats, error) {
	v, err := GetOrDefault(ctx, p.store, domain.KeyGlobalStats, emptyGlobalStats())
	if v.AverageDrops == nil {
		v.AverageDrops = []domain.DropRecord{}
	}
	return v, err
}

// UpdateGlobalStats applies fn to the global stats and persists the result
func (p *Progress) UpdateGlobalStats(ctx context.Context, fn func(domain.GlobalStats) (domain.GlobalStats, error)) (domain.GlobalStats, error) {
	return Update(ctx, p.store, p.locks, domain.KeyGlobalStats, emptyGlobalStats, func(s domain.GlobalStats) (domain.GlobalStats, error) {
		if s.AverageDrops == nil {
			s.AverageDrops = []domain.DropRecord{}
		}
		return fn(s)
	})
}

// ActiveTargets returns the pinned targets
func (p *Progress) ActiveTargets(ctx context.Context) ([]domain.ActiveTarget, error) {
	v, err := GetOrDefault(ctx, p.store, domain.KeyActiveTargets, emptyTargets())
	if v == nil {
		v = emptyTargets()
	}
	return v, err
}

// UpdateActiveTargets applies fn to the pinned targets and persists the result
func (p *Progress) UpdateActiveTargets(ctx context.Context, fn func([]domain.ActiveTarget) ([]domain.ActiveTarget, error)) ([]domain.ActiveTarget, error) {
	return Update(ctx, p.store, p.locks, domain.KeyActiveTargets, emptyTargets, func(v []domain.ActiveTarget) ([]domain.ActiveTarget, error) {
		if v == nil {
			v = emptyTargets()
		}
		return fn(v)
	})
}

// CollectedLog returns the toggle history for an item type
func (p *Progress) CollectedLog(ctx context.Context, itemType domain.ItemType) (domain.CollectedLog, error) {
	v, err := GetOrDefault(ctx, p.store, domain.CollectedKey(itemType), emptyCollectedLog())
	if v == nil {
		v = emptyCollectedLog()
	}
	return v, err
}

// UpdateCollectedLog applies fn to the toggle history of an item type
func (p *Progress) UpdateCollectedLog(ctx context.Context, itemType domain.ItemType, fn func(domain.CollectedLog) (domain.CollectedLog, error)) (domain.CollectedLog, error) {
	return Update(ctx, p.store, p.locks, domain.CollectedKey(itemType), emptyCollectedLog, nonNilMap(emptyCollectedLog, fn))
}

// Clear writes the zero state to each key in order. It stops at the first
// failure; keys written before it stay cleared.
func (p *Progress) Clear(ctx context.Context, keys ...string) error {
	log := logger.FromContext(ctx)
	for _, key := range keys {
		err := p.locks.WithLock(key, func() error {
			return p.store.Set(ctx, key, zeroState(key))
		})
		if err != nil {
			return fmt.Errorf(ErrMsgWriteKeyFailed, key, err)
		}
		log.Debug(LogMsgKeyCleared, "key", key)
	}
	return nil
}

// zeroState is the "not started" value of a progress key
func zeroState(key string) any {
	switch key {
	case domain.KeyActiveTargets:
		return emptyTargets()
	case domain.KeyGlobalStats:
		return emptyGlobalStats()
	default:
		return map[string]any{}
	}
}

func nonNilMap[M ~map[string]V, V any](empty func() M, fn func(M) (M, error)) func(M) (M, error) {
	return func(m M) (M, error) {
		if m == nil {
			m = empty()
		}
		return fn(m)
	}
}
