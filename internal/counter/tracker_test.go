package counter

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RavenCompanion_Go/internal/database/memory"
	"github.com/osse101/RavenCompanion_Go/internal/domain"
	"github.com/osse101/RavenCompanion_Go/internal/repository"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestTracker(t *testing.T) (*tracker, *repository.Progress) {
	t.Helper()
	progress := repository.NewProgress(memory.New())
	tr := NewTracker(progress).(*tracker)
	tr.now = func() time.Time { return fixedNow }
	return tr, progress
}

func TestIncrement(t *testing.T) {
	ctx := context.Background()

	t.Run("creates counter on first increment", func(t *testing.T) {
		tr, _ := newTestTracker(t)
		c, err := tr.Increment(ctx, "wolf", 3)
		require.NoError(t, err)
		assert.Equal(t, 3, c.Count)
		require.NotNil(t, c.LastUpdated)
		assert.Equal(t, fixedNow, *c.LastUpdated)
		assert.Empty(t, c.Milestones)
	})

	t.Run("floors at zero", func(t *testing.T) {
		tr, _ := newTestTracker(t)
		_, err := tr.Increment(ctx, "wolf", 4)
		require.NoError(t, err)
		c, err := tr.Increment(ctx, "wolf", -10)
		require.NoError(t, err)
		assert.Equal(t, 0, c.Count)
	})

	t.Run("magnitude bounds", func(t *testing.T) {
		tr, _ := newTestTracker(t)
		_, err := tr.Increment(ctx, "wolf", 1000)
		require.NoError(t, err)
		_, err = tr.Increment(ctx, "wolf", -1000)
		require.NoError(t, err)

		_, err = tr.Increment(ctx, "wolf", 1001)
		assert.ErrorIs(t, err, domain.ErrAmountOutOfRange)
		_, err = tr.Increment(ctx, "wolf", -1001)
		assert.ErrorIs(t, err, domain.ErrAmountOutOfRange)
	})

	t.Run("rejected increment leaves counter untouched", func(t *testing.T) {
		tr, _ := newTestTracker(t)
		_, err := tr.Increment(ctx, "wolf", 7)
		require.NoError(t, err)
		_, err = tr.Increment(ctx, "wolf", 5000)
		require.Error(t, err)

		c, err := tr.Get(ctx, "wolf")
		require.NoError(t, err)
		assert.Equal(t, 7, c.Count)
	})

	t.Run("empty id", func(t *testing.T) {
		tr, _ := newTestTracker(t)
		_, err := tr.Increment(ctx, "  ", 1)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("concurrent increments are not lost", func(t *testing.T) {
		tr, _ := newTestTracker(t)
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = tr.Increment(ctx, "wolf", 2)
			}()
		}
		wg.Wait()

		c, err := tr.Get(ctx, "wolf")
		require.NoError(t, err)
		assert.Equal(t, 100, c.Count)
	})
}

func TestSetAndReset(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		value   int
		wantErr error
	}{
		{"zero", 0, nil},
		{"upper bound", 999999, nil},
		{"negative", -1, domain.ErrValueOutOfRange},
		{"above upper bound", 1000000, domain.ErrValueOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, _ := newTestTracker(t)
			c, err := tr.Set(ctx, "wolf", tt.value)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, c.Count)
		})
	}

	t.Run("reset keeps milestones", func(t *testing.T) {
		tr, _ := newTestTracker(t)
		_, err := tr.Set(ctx, "wolf", 40)
		require.NoError(t, err)
		_, err = tr.RecordMilestone(ctx, "wolf", domain.TierBase, domain.MethodCollected, 40)
		require.NoError(t, err)

		c, err := tr.Reset(ctx, "wolf")
		require.NoError(t, err)
		assert.Equal(t, 0, c.Count)
		require.Len(t, c.Milestones, 1)
		assert.Equal(t, domain.TierBase, c.Milestones[0].Tier)
	})
}

func TestRecordMilestone(t *testing.T) {
	ctx := context.Background()

	t.Run("collected stores count and feeds stats", func(t *testing.T) {
		tr, _ := newTestTracker(t)
		c, err := tr.RecordMilestone(ctx, "wolf", domain.TierGolden, domain.MethodCollected, 120)
		require.NoError(t, err)
		require.Len(t, c.Milestones, 1)
		m := c.Milestones[0]
		require.NotNil(t, m.Count)
		assert.Equal(t, 120, *m.Count)
		assert.Equal(t, fixedNow, m.Date)

		stats, err := tr.GlobalStats(ctx)
		require.NoError(t, err)
		require.Len(t, stats.AverageDrops, 1)
		assert.Equal(t, domain.DropRecord{ItemID: "wolf", Tier: domain.TierGolden, Count: 120}, stats.AverageDrops[0])
		require.NotNil(t, stats.LuckiestDrop)
		assert.Equal(t, 120, stats.LuckiestDrop.Count)
		assert.Equal(t, 120, stats.AverageCount)
	})

	t.Run("non collected methods have no count", func(t *testing.T) {
		tr, _ := newTestTracker(t)
		c, err := tr.RecordMilestone(ctx, "wolf", domain.TierBase, domain.MethodGambled, 55)
		require.NoError(t, err)
		assert.Nil(t, c.Milestones[0].Count)

		_, err = tr.RecordMilestone(ctx, "bear", domain.TierBase, domain.MethodPurchased, 0)
		require.NoError(t, err)

		stats, err := tr.GlobalStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.TotalGambled)
		assert.Equal(t, 1, stats.TotalPurchased)
		assert.Empty(t, stats.AverageDrops)
		assert.Nil(t, stats.LuckiestDrop)
	})

	t.Run("same tier replaces earlier milestone", func(t *testing.T) {
		tr, _ := newTestTracker(t)
		_, err := tr.RecordMilestone(ctx, "wolf", domain.TierBase, domain.MethodGambled, 0)
		require.NoError(t, err)
		_, err = tr.RecordMilestone(ctx, "wolf", domain.TierGolden, domain.MethodPurchased, 0)
		require.NoError(t, err)
		c, err := tr.RecordMilestone(ctx, "wolf", domain.TierBase, domain.MethodCollected, 9)
		require.NoError(t, err)

		require.Len(t, c.Milestones, 2)
		m, ok := c.Milestone(domain.TierBase)
		require.True(t, ok)
		assert.Equal(t, domain.MethodCollected, m.Method)
	})

	t.Run("collected with zero count is not a drop", func(t *testing.T) {
		tr, _ := newTestTracker(t)
		_, err := tr.RecordMilestone(ctx, "wolf", domain.TierBase, domain.MethodCollected, 0)
		require.NoError(t, err)

		stats, err := tr.GlobalStats(ctx)
		require.NoError(t, err)
		assert.Empty(t, stats.AverageDrops)
		assert.Nil(t, stats.LuckiestDrop)
		assert.Equal(t, 0, stats.AverageCount)
	})

	t.Run("luckiest drop only moves on strictly lower", func(t *testing.T) {
		tr, _ := newTestTracker(t)
		_, err := tr.RecordMilestone(ctx, "wolf", domain.TierBase, domain.MethodCollected, 50)
		require.NoError(t, err)
		_, err = tr.RecordMilestone(ctx, "bear", domain.TierBase, domain.MethodCollected, 50)
		require.NoError(t, err)
		_, err = tr.RecordMilestone(ctx, "boar", domain.TierBase, domain.MethodCollected, 20)
		require.NoError(t, err)
		_, err = tr.RecordMilestone(ctx, "deer", domain.TierBase, domain.MethodCollected, 95)
		require.NoError(t, err)

		stats, err := tr.GlobalStats(ctx)
		require.NoError(t, err)
		require.NotNil(t, stats.LuckiestDrop)
		assert.Equal(t, "boar", stats.LuckiestDrop.ItemID)
		assert.Len(t, stats.AverageDrops, 4)
		// (50+50+20+95)/4 = 53.75
		assert.Equal(t, 54, stats.AverageCount)
	})

	t.Run("validation", func(t *testing.T) {
		tr, _ := newTestTracker(t)
		_, err := tr.RecordMilestone(ctx, "wolf", domain.Tier("diamond"), domain.MethodCollected, 1)
		assert.ErrorIs(t, err, domain.ErrInvalidTier)
		_, err = tr.RecordMilestone(ctx, "wolf", domain.TierBase, domain.Method("stolen"), 1)
		assert.ErrorIs(t, err, domain.ErrInvalidMethod)
		_, err = tr.RecordMilestone(ctx, "wolf", domain.TierBase, domain.MethodCollected, -2)
		assert.ErrorIs(t, err, domain.ErrValueOutOfRange)

		c, err := tr.Get(ctx, "wolf")
		require.NoError(t, err)
		assert.Empty(t, c.Milestones)
	})
}

func TestRemoveMilestone(t *testing.T) {
	ctx := context.Background()
	tr, _ := newTestTracker(t)

	_, err := tr.RecordMilestone(ctx, "wolf", domain.TierBase, domain.MethodCollected, 30)
	require.NoError(t, err)
	_, err = tr.RecordMilestone(ctx, "wolf", domain.TierGolden, domain.MethodGambled, 0)
	require.NoError(t, err)

	c, err := tr.RemoveMilestone(ctx, "wolf", domain.TierBase)
	require.NoError(t, err)
	require.Len(t, c.Milestones, 1)
	assert.Equal(t, domain.TierGolden, c.Milestones[0].Tier)

	// stats keep the history
	stats, err := tr.GlobalStats(ctx)
	require.NoError(t, err)
	assert.Len(t, stats.AverageDrops, 1)
	assert.Equal(t, 1, stats.TotalGambled)

	_, err = tr.RemoveMilestone(ctx, "wolf", domain.Tier("nope"))
	assert.ErrorIs(t, err, domain.ErrInvalidTier)
}

func TestResetAll(t *testing.T) {
	ctx := context.Background()
	tr, progress := newTestTracker(t)

	_, err := tr.Increment(ctx, "wolf", 10)
	require.NoError(t, err)
	_, err = tr.RecordMilestone(ctx, domain.SharedMonumentKey, domain.TierBase, domain.MethodCollected, 3)
	require.NoError(t, err)
	_, err = progress.UpdateTrophyStates(ctx, func(s domain.TrophyStates) (domain.TrophyStates, error) {
		s["wolf"] = domain.TrophyState{Base: true}
		return s, nil
	})
	require.NoError(t, err)

	require.NoError(t, tr.ResetAll(ctx))

	all, err := tr.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	stats, err := tr.GlobalStats(ctx)
	require.NoError(t, err)
	assert.Empty(t, stats.AverageDrops)
	assert.Nil(t, stats.LuckiestDrop)

	// trophy progress is not a counter
	trophies, err := progress.TrophyStates(ctx)
	require.NoError(t, err)
	assert.True(t, trophies["wolf"].Base)
}

func TestStoreFailureSurfaces(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk full")
	tr := NewTracker(repository.NewProgress(brokenStore{err: boom}))

	_, err := tr.Increment(ctx, "wolf", 1)
	assert.ErrorIs(t, err, boom)

	_, err = tr.GlobalStats(ctx)
	assert.ErrorIs(t, err, boom)
}

type brokenStore struct{ err error }

func (b brokenStore) Get(context.Context, string, any) (bool, error) { return false, b.err }
func (b brokenStore) Set(context.Context, string, any) error         { return b.err }
func (b brokenStore) Delete(context.Context, string) error           { return b.err }
func (b brokenStore) Close() error                                   { return nil }

func TestAverageCount(t *testing.T) {
	assert.Equal(t, 0, AverageCount(nil))
	assert.Equal(t, 3, AverageCount([]domain.DropRecord{{Count: 2}, {Count: 3}}))
	assert.Equal(t, 2, AverageCount([]domain.DropRecord{{Count: 1}, {Count: 2}, {Count: 2}}))
}

// statsFailStore fails writes of the global stats key only
type statsFailStore struct {
	*memory.Store
	err error
}

func (s statsFailStore) Set(ctx context.Context, key string, value any) error {
	if key == domain.KeyGlobalStats {
		return s.err
	}
	return s.Store.Set(ctx, key, value)
}

func TestRecordMilestone_StatsFailureKeepsMilestone(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk full")
	progress := repository.NewProgress(statsFailStore{Store: memory.New(), err: boom})
	tr := NewTracker(progress)

	_, err := tr.RecordMilestone(ctx, "wolf", domain.TierGolden, domain.MethodCollected, 40)
	assert.ErrorIs(t, err, boom)

	c, err := tr.Get(ctx, "wolf")
	require.NoError(t, err)
	m, ok := c.Milestone(domain.TierGolden)
	require.True(t, ok)
	assert.Equal(t, domain.MethodCollected, m.Method)

	stats, err := tr.GlobalStats(ctx)
	require.NoError(t, err)
	assert.Empty(t, stats.AverageDrops)
	assert.Nil(t, stats.LuckiestDrop)
}
