package bridge

import (
	"context"
	"sync"

	"github.com/osse101/RavenCompanion_Go/internal/counter"
	"github.com/osse101/RavenCompanion_Go/internal/domain"
	"github.com/osse101/RavenCompanion_Go/internal/event"
	"github.com/osse101/RavenCompanion_Go/internal/item"
	"github.com/osse101/RavenCompanion_Go/internal/logger"
	"github.com/osse101/RavenCompanion_Go/internal/metrics"
	"github.com/osse101/RavenCompanion_Go/internal/progress"
	"github.com/osse101/RavenCompanion_Go/internal/stats"
	"github.com/osse101/RavenCompanion_Go/internal/targets"
)

// Catalog is the item catalog as seen by the bridge
type Catalog interface {
	Snapshot() *item.Data
	Reload(ctx context.Context) *item.Data
	Trophy(id string) (domain.TrophyItem, bool)
}

// Deps are the services behind the boundary operations
type Deps struct {
	Catalog     Catalog
	Progress    progress.Service
	Counters    counter.Tracker
	Descriptors *counter.Descriptors
	Targets     targets.Service
	Stats       stats.Service
	Bus         event.Bus
}

// Bridge exposes the boundary operations the overlay calls. Every call is
// validated, runs alone, and returns a result envelope instead of an error.
type Bridge struct {
	deps      Deps
	validator *Validator
	mu        sync.Mutex
}

// New creates a bridge over deps
func New(deps Deps) *Bridge {
	if deps.Descriptors == nil {
		deps.Descriptors = counter.DefaultDescriptors()
	}
	return &Bridge{deps: deps, validator: NewValidator()}
}

// call validates req, runs fn under the bridge lock and records the outcome.
// invalidMsg replaces the message of rejected input for this operation.
func (b *Bridge) call(ctx context.Context, op string, req any, invalidMsg string, fn func(ctx context.Context) error) Result {
	b.mu.Lock()
	defer b.mu.Unlock()

	ctx = logger.WithOperation(logger.EnsureRequestID(ctx), op)
	log := logger.FromContext(ctx)

	err := metrics.Track(op, outcomeOf, func() error {
		if req != nil {
			if err := b.validator.ValidateStruct(req); err != nil {
				return toDomainError(err)
			}
		}
		return fn(ctx)
	})
	if err != nil {
		if isValidationError(err) {
			log.Warn(LogMsgOperationRejected, "error", err)
		} else {
			log.Error(LogMsgOperationFailed, "error", err)
		}
		return Result{Success: false, Error: mapErrorToUserMessage(err, invalidMsg)}
	}

	log.Debug(LogMsgOperationCompleted)
	return Result{Success: true}
}

// publish forwards evt; a failing subscriber never fails the operation
func (b *Bridge) publish(ctx context.Context, evt event.Event) {
	if b.deps.Bus == nil {
		return
	}
	if err := b.deps.Bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "type", evt.Type, "error", err)
	}
}

// ==================== Collection State ====================

// ToggleCollected checks or unchecks an item as collected
func (b *Bridge) ToggleCollected(ctx context.Context, req ToggleCollectedRequest) ToggleResult {
	var out ToggleResult
	out.Result = b.call(ctx, OpToggleCollected, req, domain.ErrMsgInvalidTypeOrID, func(ctx context.Context) error {
		rec, err := b.deps.Progress.ToggleCollected(ctx, domain.ItemType(req.Type), req.ID, req.Collected)
		out.State = rec
		return err
	})
	return out
}

// SaveTrophyTierState sets one tier flag of a trophy
func (b *Bridge) SaveTrophyTierState(ctx context.Context, req SaveTrophyTierRequest) TrophyStateResult {
	var out TrophyStateResult
	out.Result = b.call(ctx, OpSaveTrophyTierState, req, domain.ErrMsgInvalidTrophy, func(ctx context.Context) error {
		st, err := b.deps.Progress.SaveTrophyTierState(ctx, req.TrophyID, domain.Tier(req.Tier), req.Checked)
		if err != nil {
			return err
		}
		out.State = &st
		return nil
	})
	return out
}

// SaveCosmeticState replaces the stored state of a cosmetic
func (b *Bridge) SaveCosmeticState(ctx context.Context, req SaveCosmeticStateRequest) CosmeticStateResult {
	var out CosmeticStateResult
	out.Result = b.call(ctx, OpSaveCosmeticState, req, domain.ErrMsgInvalidCosmetic, func(ctx context.Context) error {
		st, err := b.deps.Progress.SaveCosmeticState(ctx, req.ID, req.State)
		if err != nil {
			return err
		}
		out.State = &st
		return nil
	})
	return out
}

// SetMaterial sets the owned quantity of one material of a cosmetic
func (b *Bridge) SetMaterial(ctx context.Context, req SetMaterialRequest) CosmeticStateResult {
	var out CosmeticStateResult
	out.Result = b.call(ctx, OpSetMaterial, req, "", func(ctx context.Context) error {
		st, err := b.deps.Progress.SetMaterial(ctx, req.ID, req.Material, req.Quantity)
		if err != nil {
			return err
		}
		out.State = &st
		return nil
	})
	return out
}

// ==================== Counters ====================

func (b *Bridge) counterCall(ctx context.Context, op string, req any, fn func(ctx context.Context) (domain.Counter, error)) CounterResult {
	var out CounterResult
	out.Result = b.call(ctx, op, req, "", func(ctx context.Context) error {
		c, err := fn(ctx)
		if err != nil {
			return err
		}
		out.Counter = &c
		return nil
	})
	return out
}

// IncrementCounter adds amount to a counter
func (b *Bridge) IncrementCounter(ctx context.Context, req IncrementCounterRequest) CounterResult {
	return b.counterCall(ctx, OpIncrementCounter, req, func(ctx context.Context) (domain.Counter, error) {
		return b.deps.Counters.Increment(ctx, req.ID, req.Amount)
	})
}

// SetCounter replaces a counter's count
func (b *Bridge) SetCounter(ctx context.Context, req SetCounterRequest) CounterResult {
	return b.counterCall(ctx, OpSetCounter, req, func(ctx context.Context) (domain.Counter, error) {
		return b.deps.Counters.Set(ctx, req.ID, req.Value)
	})
}

// ResetCounter zeroes a counter and keeps its milestones
func (b *Bridge) ResetCounter(ctx context.Context, req CounterRequest) CounterResult {
	return b.counterCall(ctx, OpResetCounter, req, func(ctx context.Context) (domain.Counter, error) {
		return b.deps.Counters.Reset(ctx, req.ID)
	})
}

// RecordMilestone records how a tier was obtained
func (b *Bridge) RecordMilestone(ctx context.Context, req RecordMilestoneRequest) CounterResult {
	out := b.counterCall(ctx, OpRecordMilestone, req, func(ctx context.Context) (domain.Counter, error) {
		return b.deps.Counters.RecordMilestone(ctx, req.ID, domain.Tier(req.Tier), domain.Method(req.Method), req.Count)
	})
	if out.Success {
		b.publish(ctx, event.NewMilestoneEvent(req.ID, req.Tier, req.Method, req.Count))
	}
	return out
}

// RemoveMilestone drops a tier's milestone
func (b *Bridge) RemoveMilestone(ctx context.Context, req RemoveMilestoneRequest) Result {
	return b.call(ctx, OpRemoveMilestone, req, "", func(ctx context.Context) error {
		_, err := b.deps.Counters.RemoveMilestone(ctx, req.ID, domain.Tier(req.Tier))
		return err
	})
}

// TrophyCounter returns the counter a trophy is tracked with and what it
// measures. Monument trophies share one counter.
func (b *Bridge) TrophyCounter(ctx context.Context, req TrophyCounterRequest) TrophyCounterResult {
	var out TrophyCounterResult
	out.Result = b.call(ctx, OpGetCounter, req, "", func(ctx context.Context) error {
		trophy, ok := b.deps.Catalog.Trophy(req.TrophyID)
		if !ok {
			return domain.ErrItemNotFound
		}
		desc := b.deps.Descriptors.Resolve(trophy)
		key := b.deps.Descriptors.CounterKeyFor(trophy)
		c, err := b.deps.Counters.Get(ctx, key)
		if err != nil {
			return err
		}
		out.Key = key
		out.Descriptor = &desc
		out.Counter = &c
		return nil
	})
	return out
}

// GetGlobalStats returns the acquisition statistics with the mean drop count
func (b *Bridge) GetGlobalStats(ctx context.Context) GlobalStatsResult {
	var out GlobalStatsResult
	out.Result = b.call(ctx, OpGetGlobalStats, nil, "", func(ctx context.Context) error {
		s, err := b.deps.Counters.GlobalStats(ctx)
		if err != nil {
			return err
		}
		out.Stats = &s
		return nil
	})
	return out
}

// ResetAllCounters clears every counter, milestone and the global stats
func (b *Bridge) ResetAllCounters(ctx context.Context) Result {
	res := b.call(ctx, OpResetAllCounters, nil, "", b.deps.Counters.ResetAll)
	if res.Success {
		b.publish(ctx, event.NewProgressResetEvent(domain.CounterKeys))
	}
	return res
}

// ResetAllProgress clears all persisted progress
func (b *Bridge) ResetAllProgress(ctx context.Context) Result {
	res := b.call(ctx, OpResetAllProgress, nil, "", b.deps.Progress.ResetAll)
	if res.Success {
		b.publish(ctx, event.NewProgressResetEvent(domain.ProgressKeys))
	}
	return res
}

// ==================== Data ====================

func dataResult(d *item.Data) DataResult {
	return DataResult{
		Result:    Result{Success: true},
		Cosmetics: d.Cosmetics,
		Trophies:  d.Trophies,
		Warnings:  d.Warnings,
		LoadedAt:  d.LoadedAt,
	}
}

// GetData returns the loaded catalog and its load warnings
func (b *Bridge) GetData(ctx context.Context) DataResult {
	var out DataResult
	res := b.call(ctx, OpGetData, nil, "", func(context.Context) error {
		out = dataResult(b.deps.Catalog.Snapshot())
		return nil
	})
	out.Result = res
	return out
}

// ReloadData reads the data files again and returns the new catalog
func (b *Bridge) ReloadData(ctx context.Context) DataResult {
	var out DataResult
	res := b.call(ctx, OpReloadData, nil, "", func(ctx context.Context) error {
		d := b.deps.Catalog.Reload(ctx)
		if d == nil {
			return errCatalogUnavailable
		}
		out = dataResult(d)
		return nil
	})
	out.Result = res
	if res.Success {
		b.publish(ctx, event.NewDataReloadedEvent(len(out.Cosmetics), len(out.Trophies), out.Warnings))
	}
	return out
}

// ==================== Aggregates ====================

// Summary returns the dashboard
func (b *Bridge) Summary(ctx context.Context) SummaryResult {
	var out SummaryResult
	out.Result = b.call(ctx, OpSummary, nil, "", func(ctx context.Context) error {
		d, err := b.deps.Stats.Summary(ctx)
		out.Dashboard = d
		return err
	})
	return out
}

// FilterTrophies returns the trophies matching f and totals over them
func (b *Bridge) FilterTrophies(ctx context.Context, f stats.TrophyFilter) TrophyListResult {
	var out TrophyListResult
	out.Result = b.call(ctx, OpFilterTrophies, nil, "", func(ctx context.Context) error {
		items, totals, err := b.deps.Stats.Trophies(ctx, f)
		if err != nil {
			return err
		}
		out.Items = items
		out.Totals = &totals
		return nil
	})
	return out
}

// FilterCosmetics returns the cosmetics matching f and totals over them
func (b *Bridge) FilterCosmetics(ctx context.Context, f stats.CosmeticFilter) CosmeticListResult {
	var out CosmeticListResult
	out.Result = b.call(ctx, OpFilterCosmetics, nil, "", func(ctx context.Context) error {
		items, totals, err := b.deps.Stats.Cosmetics(ctx, f)
		if err != nil {
			return err
		}
		out.Items = items
		out.Totals = &totals
		return nil
	})
	return out
}

// ==================== Targets ====================

func (b *Bridge) targetsCall(ctx context.Context, op string, req any, fn func(ctx context.Context) ([]domain.ActiveTarget, error)) TargetsResult {
	var out TargetsResult
	out.Result = b.call(ctx, op, req, "", func(ctx context.Context) error {
		list, err := fn(ctx)
		out.Targets = list
		return err
	})
	return out
}

// AddTarget pins an item to the overlay
func (b *Bridge) AddTarget(ctx context.Context, req AddTargetRequest) TargetsResult {
	return b.targetsCall(ctx, OpAddTarget, req, func(ctx context.Context) ([]domain.ActiveTarget, error) {
		return b.deps.Targets.Add(ctx, domain.ActiveTarget{ID: req.ID, Name: req.Name, Type: req.Type})
	})
}

// RemoveTarget unpins an item
func (b *Bridge) RemoveTarget(ctx context.Context, req RemoveTargetRequest) TargetsResult {
	return b.targetsCall(ctx, OpRemoveTarget, req, func(ctx context.Context) ([]domain.ActiveTarget, error) {
		return b.deps.Targets.Remove(ctx, req.ID)
	})
}

// ListTargets returns the pinned items
func (b *Bridge) ListTargets(ctx context.Context) TargetsResult {
	return b.targetsCall(ctx, OpListTargets, nil, b.deps.Targets.List)
}
