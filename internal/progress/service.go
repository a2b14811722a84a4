package progress

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/RavenCompanion_Go/internal/domain"
	"github.com/osse101/RavenCompanion_Go/internal/logger"
	"github.com/osse101/RavenCompanion_Go/internal/stats"
)

// Repository is the persistence the collection service needs
type Repository interface {
	UpdateTrophyStates(ctx context.Context, fn func(domain.TrophyStates) (domain.TrophyStates, error)) (domain.TrophyStates, error)
	UpdateCosmeticStates(ctx context.Context, fn func(domain.CosmeticStates) (domain.CosmeticStates, error)) (domain.CosmeticStates, error)
	UpdateCollectedLog(ctx context.Context, itemType domain.ItemType, fn func(domain.CollectedLog) (domain.CollectedLog, error)) (domain.CollectedLog, error)
	Clear(ctx context.Context, keys ...string) error
}

// CosmeticLookup finds cosmetic definitions by id
type CosmeticLookup interface {
	Cosmetic(id string) (domain.CosmeticItem, bool)
}

// Service mutates the persisted collection state of trophies and cosmetics
type Service interface {
	ToggleCollected(ctx context.Context, itemType domain.ItemType, id string, collected bool) (*domain.CollectedRecord, error)
	SaveTrophyTierState(ctx context.Context, id string, tier domain.Tier, checked bool) (domain.TrophyState, error)
	SaveCosmeticState(ctx context.Context, id string, state domain.CosmeticState) (domain.CosmeticState, error)
	SetMaterial(ctx context.Context, id, material string, quantity int) (domain.CosmeticState, error)
	ResetAll(ctx context.Context) error
}

type service struct {
	repo      Repository
	cosmetics CosmeticLookup
	now       func() time.Time
}

// NewService creates a collection state service
func NewService(repo Repository, cosmetics CosmeticLookup) Service {
	return &service{repo: repo, cosmetics: cosmetics, now: time.Now}
}

func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", domain.ErrInvalidInput)
	}
	return nil
}

// ToggleCollected records a collected check or uncheck in the item type's
// history. Unchecking removes the entry and returns nil. For cosmetics the
// flag and timestamps are mirrored into the cosmetic state, which keeps its
// materials either way.
func (s *service) ToggleCollected(ctx context.Context, itemType domain.ItemType, id string, collected bool) (*domain.CollectedRecord, error) {
	if !itemType.Valid() || strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, domain.ErrMsgInvalidTypeOrID)
	}

	now := s.now()
	var record *domain.CollectedRecord
	_, err := s.repo.UpdateCollectedLog(ctx, itemType, func(entries domain.CollectedLog) (domain.CollectedLog, error) {
		if !collected {
			delete(entries, id)
			return entries, nil
		}
		r := entries[id]
		r.Collected = true
		r.CollectedCount++
		if r.FirstCollectedAt == nil {
			r.FirstCollectedAt = &now
		}
		r.LastCollectedAt = &now
		entries[id] = r
		record = &r
		return entries, nil
	})
	if err != nil {
		return nil, err
	}

	if itemType == domain.ItemTypeCosmetic {
		_, err = s.repo.UpdateCosmeticStates(ctx, func(states domain.CosmeticStates) (domain.CosmeticStates, error) {
			st := states[id]
			st.Collected = collected
			if record != nil {
				st.CollectedCount = record.CollectedCount
				st.FirstCollectedAt = record.FirstCollectedAt
				st.LastCollectedAt = record.LastCollectedAt
			}
			states[id] = st
			return states, nil
		})
		if err != nil {
			return nil, err
		}
	}

	logger.FromContext(ctx).Info(LogMsgCollectedToggled, "type", itemType, "id", id, "collected", collected)
	return record, nil
}

// SaveTrophyTierState sets one tier flag. A trophy seen for the first time
// starts with every tier unset.
func (s *service) SaveTrophyTierState(ctx context.Context, id string, tier domain.Tier, checked bool) (domain.TrophyState, error) {
	if strings.TrimSpace(id) == "" || !tier.Valid() {
		return domain.TrophyState{}, fmt.Errorf("%w: %s", domain.ErrInvalidTier, domain.ErrMsgInvalidTrophy)
	}

	var result domain.TrophyState
	_, err := s.repo.UpdateTrophyStates(ctx, func(states domain.TrophyStates) (domain.TrophyStates, error) {
		result = states[id].With(tier, checked)
		states[id] = result
		return states, nil
	})
	if err != nil {
		return domain.TrophyState{}, err
	}

	logger.FromContext(ctx).Info(LogMsgTrophyTierSaved, "id", id, "tier", tier, "checked", checked)
	return result, nil
}

// SaveCosmeticState replaces the stored state of one cosmetic
func (s *service) SaveCosmeticState(ctx context.Context, id string, state domain.CosmeticState) (domain.CosmeticState, error) {
	if err := requireID(id); err != nil {
		return domain.CosmeticState{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, domain.ErrMsgInvalidCosmetic)
	}
	for name, qty := range state.Materials {
		if qty < 0 {
			return domain.CosmeticState{}, fmt.Errorf("%w: negative quantity for %q", domain.ErrInvalidInput, name)
		}
	}

	_, err := s.repo.UpdateCosmeticStates(ctx, func(states domain.CosmeticStates) (domain.CosmeticStates, error) {
		states[id] = state
		return states, nil
	})
	if err != nil {
		return domain.CosmeticState{}, err
	}

	logger.FromContext(ctx).Debug(LogMsgCosmeticSaved, "id", id, "collected", state.Collected)
	return state, nil
}

// SetMaterial stores the owned quantity of one material, clamped to
// [0, required]. Completing the last material marks the cosmetic collected.
func (s *service) SetMaterial(ctx context.Context, id, material string, quantity int) (domain.CosmeticState, error) {
	item, ok := s.cosmetics.Cosmetic(id)
	if !ok {
		return domain.CosmeticState{}, fmt.Errorf(ErrMsgUnknownCosmetic, domain.ErrItemNotFound, id)
	}
	required := -1
	for _, m := range item.Materials {
		if m.Name == material {
			required = m.Quantity
			break
		}
	}
	if required < 0 {
		return domain.CosmeticState{}, fmt.Errorf(ErrMsgUnknownMaterial, domain.ErrItemNotFound, material, id)
	}
	quantity = min(max(quantity, 0), required)

	log := logger.FromContext(ctx)
	var result domain.CosmeticState
	_, err := s.repo.UpdateCosmeticStates(ctx, func(states domain.CosmeticStates) (domain.CosmeticStates, error) {
		st := states[id]
		materials := make(map[string]int, len(st.Materials)+1)
		for k, v := range st.Materials {
			materials[k] = v
		}
		materials[material] = quantity
		st.Materials = materials

		if !st.Collected && stats.MaterialsComplete(item, st) {
			now := s.now()
			st.Collected = true
			if st.FirstCollectedAt == nil {
				st.FirstCollectedAt = &now
			}
			st.LastCollectedAt = &now
			log.Info(LogMsgMaterialsComplete, "id", id)
		}

		states[id] = st
		result = st
		return states, nil
	})
	if err != nil {
		return domain.CosmeticState{}, err
	}

	log.Debug(LogMsgMaterialSet, "id", id, "material", material, "quantity", quantity)
	return result, nil
}

// ResetAll clears every progress key: trophies, cosmetics, counters with
// their milestones, global stats, targets, and collected history. Keys are
// cleared one after another without rollback.
func (s *service) ResetAll(ctx context.Context) error {
	if err := s.repo.Clear(ctx, domain.ProgressKeys...); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgProgressReset)
	return nil
}
