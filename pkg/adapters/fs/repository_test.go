package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myeongjunhyun/daygo/pkg/core"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()

	repo, err := NewRepository(Config{Path: t.TempDir()})
	require.NoError(t, err)
	require.NoError(t, repo.Initialize(context.Background()))
	return repo
}

func TestNewRepository(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		repo, err := NewRepository(Config{Path: t.TempDir()})
		require.NoError(t, err)
		assert.Equal(t, "trips.json", filepath.Base(repo.documentPath()))
	})

	t.Run("YAML Format", func(t *testing.T) {
		repo, err := NewRepository(Config{Path: t.TempDir(), Format: "yaml"})
		require.NoError(t, err)
		assert.Equal(t, "trips.yaml", filepath.Base(repo.documentPath()))
	})

	t.Run("Unknown Format", func(t *testing.T) {
		_, err := NewRepository(Config{Path: t.TempDir(), Format: "toml"})
		assert.Error(t, err)
	})
}

func TestInitialize(t *testing.T) {
	t.Run("Creates Data Directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "journal")
		repo, err := NewRepository(Config{Path: path})
		require.NoError(t, err)
		require.NoError(t, repo.Initialize(context.Background()))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("MustExist Rejects Missing Directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing")
		repo, err := NewRepository(Config{Path: path, MustExist: true})
		require.NoError(t, err)
		assert.Error(t, repo.Initialize(context.Background()))
	})
}

func TestLoadAll(t *testing.T) {
	t.Run("Missing Document Is Empty", func(t *testing.T) {
		repo := newTestRepo(t)

		trips, err := repo.LoadAll(context.Background())
		require.NoError(t, err)
		require.NotNil(t, trips)
		assert.Empty(t, trips)
	})

	t.Run("Corrupt Document Degrades To Empty", func(t *testing.T) {
		repo := newTestRepo(t)
		require.NoError(t, os.WriteFile(repo.documentPath(), []byte("not json at all"), 0644))

		trips, err := repo.LoadAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, trips)
	})
}

func TestSaveAllLoadAllRoundTrip(t *testing.T) {
	for _, format := range []string{"json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			repo, err := NewRepository(Config{Path: t.TempDir(), Format: format})
			require.NoError(t, err)
			require.NoError(t, repo.Initialize(context.Background()))

			trips := fixtureTrips()
			require.NoError(t, repo.SaveAll(context.Background(), trips))

			got, err := repo.LoadAll(context.Background())
			require.NoError(t, err)
			assert.Equal(t, trips, got)
		})
	}
}

func TestAddPrependsNewestFirst(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Add(context.Background(), core.Trip{ID: "t1", Title: "first"}))
	require.NoError(t, repo.Add(context.Background(), core.Trip{ID: "t2", Title: "second"}))

	trips, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, "t2", trips[0].ID)
	assert.Equal(t, "t1", trips[1].ID)
}

func TestReplace(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.Add(context.Background(), core.Trip{ID: "t1", Title: "before"}))

	require.NoError(t, repo.Replace(context.Background(), core.Trip{ID: "t1", Title: "after"}))
	trips, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "after", trips[0].Title)

	err = repo.Replace(context.Background(), core.Trip{ID: "ghost"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNotFound))
}

func TestRemove(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.Add(context.Background(), core.Trip{ID: "t1"}))
	require.NoError(t, repo.Add(context.Background(), core.Trip{ID: "t2"}))

	require.NoError(t, repo.Remove(context.Background(), "t1"))

	trips, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "t2", trips[0].ID)

	err = repo.Remove(context.Background(), "t1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNotFound))
}

func TestPersistenceAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	first, err := NewRepository(Config{Path: dir})
	require.NoError(t, err)
	require.NoError(t, first.Initialize(context.Background()))
	require.NoError(t, first.SaveAll(context.Background(), fixtureTrips()))

	second, err := NewRepository(Config{Path: dir})
	require.NoError(t, err)
	require.NoError(t, second.Initialize(context.Background()))

	got, err := second.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fixtureTrips(), got)
}
