package repository_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RavenCompanion_Go/internal/database/memory"
	"github.com/osse101/RavenCompanion_Go/internal/domain"
	"github.com/osse101/RavenCompanion_Go/internal/repository"
)

// flakyStore fails Set for the listed keys
type flakyStore struct {
	*memory.Store
	failSet map[string]bool
	failGet bool
}

func (f *flakyStore) Get(ctx context.Context, key string, dst any) (bool, error) {
	if f.failGet {
		return false, errors.New("read failed")
	}
	return f.Store.Get(ctx, key, dst)
}

func (f *flakyStore) Set(ctx context.Context, key string, value any) error {
	if f.failSet[key] {
		return errors.New("write failed")
	}
	return f.Store.Set(ctx, key, value)
}

func TestProgress_Defaults(t *testing.T) {
	ctx := context.Background()
	p := repository.NewProgress(memory.New())

	trophies, err := p.TrophyStates(ctx)
	require.NoError(t, err)
	assert.NotNil(t, trophies)
	assert.Empty(t, trophies)

	cosmetics, err := p.CosmeticStates(ctx)
	require.NoError(t, err)
	assert.NotNil(t, cosmetics)

	counters, err := p.Counters(ctx)
	require.NoError(t, err)
	assert.NotNil(t, counters)

	stats, err := p.GlobalStats(ctx)
	require.NoError(t, err)
	assert.NotNil(t, stats.AverageDrops)
	assert.Nil(t, stats.LuckiestDrop)

	targets, err := p.ActiveTargets(ctx)
	require.NoError(t, err)
	assert.NotNil(t, targets)

	log, err := p.CollectedLog(ctx, domain.ItemTypeTrophy)
	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestProgress_NullValuesReadAsZeroState(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Set(ctx, domain.KeyTrophyStates, nil))
	require.NoError(t, store.Set(ctx, domain.KeyGlobalStats, map[string]any{"totalGambled": 2}))
	p := repository.NewProgress(store)

	trophies, err := p.TrophyStates(ctx)
	require.NoError(t, err)
	assert.NotNil(t, trophies)

	stats, err := p.GlobalStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalGambled)
	assert.NotNil(t, stats.AverageDrops)
}

func TestProgress_Update(t *testing.T) {
	ctx := context.Background()
	p := repository.NewProgress(memory.New())

	t.Run("persists result", func(t *testing.T) {
		_, err := p.UpdateTrophyStates(ctx, func(s domain.TrophyStates) (domain.TrophyStates, error) {
			s["wolf"] = domain.TrophyState{Golden: true}
			return s, nil
		})
		require.NoError(t, err)

		states, err := p.TrophyStates(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.TrophyState{Golden: true}, states["wolf"])
	})

	t.Run("fn error writes nothing", func(t *testing.T) {
		_, err := p.UpdateTrophyStates(ctx, func(s domain.TrophyStates) (domain.TrophyStates, error) {
			s["bear"] = domain.TrophyState{Base: true}
			return s, domain.ErrInvalidTier
		})
		assert.ErrorIs(t, err, domain.ErrInvalidTier)

		states, err := p.TrophyStates(ctx)
		require.NoError(t, err)
		_, ok := states["bear"]
		assert.False(t, ok)
	})

	t.Run("concurrent updates are sequential", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 25; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = p.UpdateCounters(ctx, func(c domain.Counters) (domain.Counters, error) {
					entry := c["wolf"]
					entry.Count++
					c["wolf"] = entry
					return c, nil
				})
			}()
		}
		wg.Wait()

		counters, err := p.Counters(ctx)
		require.NoError(t, err)
		assert.Equal(t, 25, counters["wolf"].Count)
	})
}

func TestProgress_UpdateFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("read failure", func(t *testing.T) {
		p := repository.NewProgress(&flakyStore{Store: memory.New(), failGet: true})
		called := false
		_, err := p.UpdateCounters(ctx, func(c domain.Counters) (domain.Counters, error) {
			called = true
			return c, nil
		})
		require.Error(t, err)
		assert.False(t, called)
		assert.Contains(t, err.Error(), "failed to read kill-counters")
	})

	t.Run("write failure", func(t *testing.T) {
		p := repository.NewProgress(&flakyStore{Store: memory.New(), failSet: map[string]bool{domain.KeyActiveTargets: true}})
		_, err := p.UpdateActiveTargets(ctx, func(v []domain.ActiveTarget) ([]domain.ActiveTarget, error) {
			return append(v, domain.ActiveTarget{ID: "wolf"}), nil
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to write active-targets")
	})
}

func TestProgress_Clear(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, p *repository.Progress) {
		t.Helper()
		_, err := p.UpdateTrophyStates(ctx, func(s domain.TrophyStates) (domain.TrophyStates, error) {
			s["wolf"] = domain.TrophyState{Base: true}
			return s, nil
		})
		require.NoError(t, err)
		_, err = p.UpdateCounters(ctx, func(c domain.Counters) (domain.Counters, error) {
			c["wolf"] = domain.Counter{Count: 9}
			return c, nil
		})
		require.NoError(t, err)
		_, err = p.UpdateActiveTargets(ctx, func(v []domain.ActiveTarget) ([]domain.ActiveTarget, error) {
			return append(v, domain.ActiveTarget{ID: "wolf"}), nil
		})
		require.NoError(t, err)
	}

	t.Run("clears all listed keys", func(t *testing.T) {
		p := repository.NewProgress(memory.New())
		seed(t, p)

		require.NoError(t, p.Clear(ctx, domain.ProgressKeys...))

		trophies, _ := p.TrophyStates(ctx)
		counters, _ := p.Counters(ctx)
		targets, _ := p.ActiveTargets(ctx)
		assert.Empty(t, trophies)
		assert.Empty(t, counters)
		assert.Empty(t, targets)
	})

	t.Run("partial failure leaves earlier keys cleared", func(t *testing.T) {
		store := &flakyStore{Store: memory.New()}
		p := repository.NewProgress(store)
		seed(t, p)
		store.failSet = map[string]bool{domain.KeyCounters: true}

		err := p.Clear(ctx, domain.KeyTrophyStates, domain.KeyCounters, domain.KeyActiveTargets)
		require.Error(t, err)

		trophies, _ := p.TrophyStates(ctx)
		counters, _ := p.Counters(ctx)
		targets, _ := p.ActiveTargets(ctx)
		assert.Empty(t, trophies)
		assert.Equal(t, 9, counters["wolf"].Count)
		assert.Len(t, targets, 1)
	})
}

func TestGetOrDefault(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	v, err := repository.GetOrDefault(ctx, store, "missing", 42)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	require.NoError(t, store.Set(ctx, "n", 7))
	v, err = repository.GetOrDefault(ctx, store, "n", 42)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}
