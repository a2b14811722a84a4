package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	Count int `json:"count"`
}

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "companion.db"), 8)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	var got map[string]counter
	found, err := s.Get(ctx, "kill-counters", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "kill-counters", map[string]counter{"wolf": {Count: 3}}))
	require.NoError(t, s.Set(ctx, "kill-counters", map[string]counter{"wolf": {Count: 4}}))

	found, err = s.Get(ctx, "kill-counters", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 4, got["wolf"].Count)

	require.NoError(t, s.Delete(ctx, "kill-counters"))
	got = nil
	found, err = s.Get(ctx, "kill-counters", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "companion.db")

	s, err := Open(ctx, path, 8)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "active-targets", []string{"wolf", "bear"}))
	require.NoError(t, s.Close())

	s, err = Open(ctx, path, 8)
	require.NoError(t, err)
	defer s.Close()

	var got []string
	found, err := s.Get(ctx, "active-targets", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"wolf", "bear"}, got)
}

func TestStore_CacheServesReads(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := newStore(db, 4)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(queryGet)).
		WithArgs("global-stats").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`{"count":7}`))

	var first, second counter
	_, err = s.Get(ctx, "global-stats", &first)
	require.NoError(t, err)
	_, err = s.Get(ctx, "global-stats", &second)
	require.NoError(t, err)

	assert.Equal(t, 7, first.Count)
	assert.Equal(t, 7, second.Count)
	assert.NoError(t, mock.ExpectationsWereMet(), "second read must come from cache")
}

func TestStore_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("read error is wrapped", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		s := newStore(db, 4)

		mock.ExpectQuery(regexp.QuoteMeta(queryGet)).
			WithArgs("trophy-states").
			WillReturnError(errors.New("disk I/O error"))

		var v map[string]any
		found, err := s.Get(ctx, "trophy-states", &v)

		require.Error(t, err)
		assert.False(t, found)
		assert.Contains(t, err.Error(), "failed to read trophy-states")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("write error leaves cache empty", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		s := newStore(db, 4)

		mock.ExpectExec(regexp.QuoteMeta(querySet)).
			WithArgs("kill-counters", `{"count":1}`).
			WillReturnError(errors.New("database is locked"))

		err = s.Set(ctx, "kill-counters", counter{Count: 1})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to write kill-counters")
		_, cached := s.cache.Get("kill-counters")
		assert.False(t, cached)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("corrupt value reports decode error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		s := newStore(db, 4)

		mock.ExpectQuery(regexp.QuoteMeta(queryGet)).
			WithArgs("cosmetics-state").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`{not json`))

		var v map[string]any
		_, err = s.Get(ctx, "cosmetics-state", &v)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode value for cosmetics-state")
	})

	t.Run("delete error is wrapped", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		s := newStore(db, 4)

		mock.ExpectExec(regexp.QuoteMeta(queryDelete)).
			WithArgs("active-targets").
			WillReturnError(errors.New("readonly database"))

		err = s.Delete(ctx, "active-targets")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete active-targets")
	})
}
