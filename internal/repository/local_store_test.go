package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/dailypulse/internal/error_values"
	"github.com/limbo/dailypulse/internal/repository"
	"github.com/limbo/dailypulse/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	store, err := repository.OpenLocalStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	ctx := context.Background()
	uid := uuid.New()

	t.Run("nothing stored", func(t *testing.T) {
		_, err := store.Load(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrNoStoredData)
	})
	t.Run("round trip", func(t *testing.T) {
		data := &entity.PulseData{
			Habits: entity.DefaultHabits(),
			Logs: entity.Logs{
				"2025-03-05": {Date: "2025-03-05", Mood: entity.MoodAngry, Progress: entity.HabitProgress{"1": 4, "2": 1}},
				"2025-03-06": {Date: "2025-03-06", Progress: entity.HabitProgress{}},
			},
		}
		require.NoError(t, store.Save(ctx, uid, data))
		loaded, err := store.Load(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, data.Habits, loaded.Habits)
		assert.Equal(t, data.Logs, loaded.Logs)
	})
	t.Run("overwrite", func(t *testing.T) {
		data := &entity.PulseData{Habits: entity.DefaultHabits()[:1], Logs: entity.Logs{}}
		require.NoError(t, store.Save(ctx, uid, data))
		loaded, err := store.Load(ctx, uid)
		require.NoError(t, err)
		assert.Len(t, loaded.Habits, 1)
		assert.Empty(t, loaded.Logs)
	})
	t.Run("nil logs load as empty", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, uid, &entity.PulseData{Habits: entity.DefaultHabits()}))
		loaded, err := store.Load(ctx, uid)
		require.NoError(t, err)
		require.NotNil(t, loaded.Logs)
		assert.Equal(t, entity.Logs{}, loaded.Logs)
	})
	t.Run("users are isolated", func(t *testing.T) {
		_, err := store.Load(ctx, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrNoStoredData)
	})
	t.Run("clear", func(t *testing.T) {
		require.NoError(t, store.Clear(ctx, uid))
		_, err := store.Load(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrNoStoredData)
	})
}

func TestLocalStoreOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pulse.db")
	store, err := repository.OpenLocalStore(path)
	require.NoError(t, err)
	uid := uuid.New()
	require.NoError(t, store.Save(context.Background(), uid, &entity.PulseData{Habits: entity.DefaultHabits()}))
	require.NoError(t, store.Close())

	reopened, err := repository.OpenLocalStore(path)
	require.NoError(t, err)
	defer reopened.Close()
	data, err := reopened.Load(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultHabits(), data.Habits)
	assert.Equal(t, entity.Logs{}, data.Logs)
}
