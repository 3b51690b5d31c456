package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mikey/phish-triage/internal/core"
)

func newTestSQLiteCache(t *testing.T) *SQLiteCache {
	t.Helper()
	c, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"), zap.NewNop(), time.Hour)
	require.NoError(t, err)
	t.Cleanup(c.Stop)
	return c
}

func TestSQLiteCacheSetGet(t *testing.T) {
	c := newTestSQLiteCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, entry("abc", time.Hour)))

	got, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 95, got.Score)
	assert.Equal(t, core.VerdictPhishing, got.Verdict)
	assert.Equal(t, "Credential harvesting", got.Message)
	assert.True(t, got.ExpiresAt.After(time.Now()))
}

func TestSQLiteCacheMiss(t *testing.T) {
	c := newTestSQLiteCache(t)

	_, err := c.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteCacheExpiredEntryNotServed(t *testing.T) {
	c := newTestSQLiteCache(t)
	ctx := context.Background()

	// An entry that expired earlier the same day must not be served; the
	// stored expiry has to compare against datetime('now') in the same
	// textual layout for this to hold
	require.NoError(t, c.Set(ctx, entry("stale", -time.Hour)))

	_, err := c.Get(ctx, "stale")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteCacheJustExpiredEntryNotServed(t *testing.T) {
	c := newTestSQLiteCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, entry("edge", -2*time.Second)))

	_, err := c.Get(ctx, "edge")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteCacheDelete(t *testing.T) {
	c := newTestSQLiteCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, entry("abc", time.Hour)))
	require.NoError(t, c.Delete(ctx, "abc"))

	_, err := c.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteCacheCleanup(t *testing.T) {
	c := newTestSQLiteCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, entry("fresh", time.Hour)))
	require.NoError(t, c.Set(ctx, entry("stale", -time.Hour)))

	require.NoError(t, c.Cleanup(ctx))

	_, err := c.Get(ctx, "fresh")
	assert.NoError(t, err)
	_, err = c.Get(ctx, "stale")
	assert.ErrorIs(t, err, ErrNotFound)

	// The stale row is gone, not merely filtered by the Get predicate
	var count int
	require.NoError(t, c.db.QueryRow(
		`SELECT COUNT(*) FROM verdict_cache WHERE content_hash = ?`, "stale").Scan(&count))
	assert.Equal(t, 0, count)
}

func TestSQLiteCacheSetOverwrites(t *testing.T) {
	c := newTestSQLiteCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, entry("abc", time.Hour)))

	updated := entry("abc", 2*time.Hour)
	updated.Score = 20
	updated.Verdict = core.VerdictSafe
	require.NoError(t, c.Set(ctx, updated))

	got, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 20, got.Score)
	assert.Equal(t, core.VerdictSafe, got.Verdict)
}
