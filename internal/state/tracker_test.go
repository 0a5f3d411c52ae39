package state_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/dailypulse/internal/error_values"
	"github.com/limbo/dailypulse/internal/pulse"
	"github.com/limbo/dailypulse/internal/repository"
	"github.com/limbo/dailypulse/internal/repository/mocks"
	"github.com/limbo/dailypulse/internal/state"
	"github.com/limbo/dailypulse/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	mu    sync.Mutex
	data  map[uuid.UUID]entity.PulseData
	gates map[uuid.UUID]chan struct{}
	saves int
	loads int
}

func newMemRepo() *memRepo {
	return &memRepo{
		data:  make(map[uuid.UUID]entity.PulseData),
		gates: make(map[uuid.UUID]chan struct{}),
	}
}

// hold makes loads for userID block until the returned func is called.
func (r *memRepo) hold(userID uuid.UUID) func() {
	gate := make(chan struct{})
	r.mu.Lock()
	r.gates[userID] = gate
	r.mu.Unlock()
	return func() { close(gate) }
}

func (r *memRepo) loadCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loads
}

func (r *memRepo) Load(ctx context.Context, userID uuid.UUID) (*entity.PulseData, error) {
	r.mu.Lock()
	r.loads++
	gate := r.gates[userID]
	r.mu.Unlock()
	if gate != nil {
		<-gate
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	data, ok := r.data[userID]
	if !ok {
		return nil, errorvalues.ErrNoStoredData
	}
	return &entity.PulseData{Habits: data.Habits, Logs: pulse.CloneLogs(data.Logs)}, nil
}

func (r *memRepo) Save(ctx context.Context, userID uuid.UUID, data *entity.PulseData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	r.data[userID] = entity.PulseData{Habits: data.Habits, Logs: pulse.CloneLogs(data.Logs)}
	return nil
}

func (r *memRepo) Clear(ctx context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, userID)
	return nil
}

func (r *memRepo) has(userID uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.data[userID]
	return ok
}

func (r *memRepo) stored(userID uuid.UUID) entity.PulseData {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data[userID]
}

var (
	userID    = uuid.New()
	fixedNow  = time.Date(2025, time.March, 5, 9, 0, 0, 0, time.UTC)
	testClock = func() time.Time { return fixedNow }
	oneHabit  = []entity.Habit{{ID: "1", Name: "Read", Kind: entity.KindBoolean, Target: 1}}
)

func TestRegistryDefaults(t *testing.T) {
	repo := newMemRepo()
	reg := state.NewRegistry(repo, testClock, nil)
	tracker, err := reg.Tracker(context.Background(), userID)
	require.NoError(t, err)

	snap := tracker.Snapshot()
	assert.Equal(t, entity.DefaultHabits(), snap.Habits)
	assert.Empty(t, snap.Logs)
	assert.Equal(t, "2025-03-05", snap.Today)
	assert.Zero(t, snap.Streak)

	again, err := reg.Tracker(context.Background(), userID)
	require.NoError(t, err)
	assert.Same(t, tracker, again)

	require.NoError(t, reg.Close())
	assert.Equal(t, entity.DefaultHabits(), repo.stored(userID).Habits)
}

func TestRegistryLoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPulseRepositoryI(ctrl)
	reg := state.NewRegistry(repo, testClock, nil)

	repo.EXPECT().Load(gomock.Any(), userID).Return(nil, errors.New("db error"))
	_, err := reg.Tracker(context.Background(), userID)
	assert.Error(t, err)

	stored := &entity.PulseData{
		Habits: oneHabit,
		Logs: entity.Logs{
			"2025-03-05": {Date: "2025-03-05", Progress: entity.HabitProgress{"1": 1}},
			"2025-03-04": {Date: "2025-03-04", Progress: entity.HabitProgress{"1": 1}},
		},
	}
	repo.EXPECT().Load(gomock.Any(), userID).Return(stored, nil)
	tracker, err := reg.Tracker(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 2, tracker.Snapshot().Streak)
	require.NoError(t, reg.Close())
}

func TestRegistrySlowLoadDoesNotBlockOtherUsers(t *testing.T) {
	repo := newMemRepo()
	reg := state.NewRegistry(repo, testClock, nil)
	slowUser, otherUser := uuid.New(), uuid.New()
	release := repo.hold(slowUser)

	slowDone := make(chan error, 1)
	go func() {
		_, err := reg.Tracker(context.Background(), slowUser)
		slowDone <- err
	}()
	require.Eventually(t, func() bool { return repo.loadCount() == 1 }, time.Second, time.Millisecond)

	otherDone := make(chan error, 1)
	go func() {
		_, err := reg.Tracker(context.Background(), otherUser)
		otherDone <- err
	}()
	select {
	case err := <-otherDone:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("tracker for another user waited on a pending load")
	}

	release()
	require.NoError(t, <-slowDone)
	require.NoError(t, reg.Close())
}

func TestRegistrySharesConcurrentLoad(t *testing.T) {
	repo := newMemRepo()
	reg := state.NewRegistry(repo, testClock, nil)
	release := repo.hold(userID)

	const callers = 5
	trackers := make(chan *state.Tracker, callers)
	for range callers {
		go func() {
			tracker, err := reg.Tracker(context.Background(), userID)
			assert.NoError(t, err)
			trackers <- tracker
		}()
	}
	require.Eventually(t, func() bool { return repo.loadCount() == 1 }, time.Second, time.Millisecond)
	release()

	first := <-trackers
	require.NotNil(t, first)
	for range callers - 1 {
		assert.Same(t, first, <-trackers)
	}
	assert.Equal(t, 1, repo.loadCount())
	require.NoError(t, reg.Close())
}

func TestRegistryLoadHonorsContext(t *testing.T) {
	repo := newMemRepo()
	reg := state.NewRegistry(repo, testClock, nil)
	release := repo.hold(userID)

	loaded := make(chan error, 1)
	go func() {
		_, err := reg.Tracker(context.Background(), userID)
		loaded <- err
	}()
	require.Eventually(t, func() bool { return repo.loadCount() == 1 }, time.Second, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := reg.Tracker(ctx, userID)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	release()
	require.NoError(t, <-loaded)
	require.NoError(t, reg.Close())
}

func TestRegistryDelete(t *testing.T) {
	repo := newMemRepo()
	reg := state.NewRegistry(repo, testClock, nil)
	ctx := context.Background()

	tracker, err := reg.Tracker(ctx, userID)
	require.NoError(t, err)
	_, ok := tracker.Toggle("2025-03-05", "1")
	require.True(t, ok)
	require.NoError(t, reg.Delete(ctx, userID))
	assert.False(t, repo.has(userID))

	fresh, err := reg.Tracker(ctx, userID)
	require.NoError(t, err)
	assert.NotSame(t, tracker, fresh)
	assert.Empty(t, fresh.Snapshot().Logs)
	require.NoError(t, reg.Close())
}

func TestRegistryDeleteClearsLocalStore(t *testing.T) {
	store, err := repository.OpenLocalStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	reg := state.NewRegistry(store, testClock, nil)
	ctx := context.Background()

	tracker, err := reg.Tracker(ctx, userID)
	require.NoError(t, err)
	tracker.SetMood("2025-03-05", entity.MoodHappy)
	reg.Forget(userID)
	_, err = store.Load(ctx, userID)
	require.NoError(t, err)

	require.NoError(t, reg.Delete(ctx, userID))
	_, err = store.Load(ctx, userID)
	assert.ErrorIs(t, err, errorvalues.ErrNoStoredData)
	require.NoError(t, reg.Close())
}

func TestTrackerApplyDelta(t *testing.T) {
	repo := newMemRepo()
	tracker := state.NewTracker(userID, entity.PulseData{Habits: oneHabit}, repo, testClock, nil)
	defer tracker.Close()

	log, ok := tracker.ApplyDelta("2025-03-05", "1", 5)
	require.True(t, ok)
	assert.Equal(t, 1, log.Progress["1"])
	assert.Equal(t, 1, tracker.Snapshot().Streak)

	_, ok = tracker.ApplyDelta("2025-03-05", "ghost", 1)
	assert.False(t, ok)

	log, ok = tracker.ApplyDelta("2025-03-05", "1", -3)
	require.True(t, ok)
	assert.Equal(t, 0, log.Progress["1"])
	assert.Zero(t, tracker.Snapshot().Streak)
}

func TestTrackerSnapshotIsolation(t *testing.T) {
	tracker := state.NewTracker(userID, entity.PulseData{Habits: oneHabit}, nil, testClock, nil)
	defer tracker.Close()
	tracker.ApplyDelta("2025-03-05", "1", 1)

	snap := tracker.Snapshot()
	snap.Logs["2025-03-05"].Progress["1"] = 0
	snap.Habits[0].Target = 10
	log := tracker.Log("2025-03-05")
	log.Progress["1"] = 0

	fresh := tracker.Snapshot()
	assert.Equal(t, 1, fresh.Logs["2025-03-05"].Progress["1"])
	assert.Equal(t, 1, fresh.Habits[0].Target)
	assert.Equal(t, 1, fresh.Streak)
}

func TestTrackerToggleAndMood(t *testing.T) {
	tracker := state.NewTracker(userID, entity.PulseData{Habits: oneHabit}, nil, testClock, nil)
	defer tracker.Close()

	log, ok := tracker.Toggle("2025-03-05", "1")
	require.True(t, ok)
	assert.Equal(t, 1, log.Progress["1"])
	log, _ = tracker.Toggle("2025-03-05", "1")
	assert.Equal(t, 0, log.Progress["1"])

	log = tracker.SetMood("2025-03-05", entity.MoodHappy)
	assert.Equal(t, entity.MoodHappy, log.Mood)
	assert.Equal(t, 0, log.Progress["1"])
	assert.Equal(t, entity.MoodNone, tracker.Log("2025-03-04").Mood)
}

func TestTrackerSaveHabit(t *testing.T) {
	tracker := state.NewTracker(userID, entity.PulseData{Habits: oneHabit}, nil, testClock, nil)
	defer tracker.Close()
	tracker.ApplyDelta("2025-03-05", "1", 1)
	require.Equal(t, 1, tracker.Snapshot().Streak)

	habit, created := tracker.SaveHabit(entity.Habit{Name: "Run", Kind: entity.KindBoolean, Target: 5, Category: entity.CategoryFitness})
	assert.True(t, created)
	assert.NotEmpty(t, habit.ID)
	assert.Equal(t, 1, habit.Target)
	assert.Len(t, tracker.Habits(), 2)
	// new habit not done today
	assert.Zero(t, tracker.Snapshot().Streak)

	habit.Name = "Run 5k"
	edited, created := tracker.SaveHabit(habit)
	assert.False(t, created)
	assert.Equal(t, habit.ID, edited.ID)
	got, ok := tracker.Habit(habit.ID)
	require.True(t, ok)
	assert.Equal(t, "Run 5k", got.Name)
	assert.Len(t, tracker.Habits(), 2)
}

func TestTrackerRemoveHabit(t *testing.T) {
	habits := append([]entity.Habit{}, oneHabit...)
	habits = append(habits, entity.Habit{ID: "2", Kind: entity.KindCountable, Target: 3})
	tracker := state.NewTracker(userID, entity.PulseData{Habits: habits}, nil, testClock, nil)
	defer tracker.Close()

	tracker.ApplyDelta("2025-03-05", "1", 1)
	tracker.ApplyDelta("2025-03-05", "2", 1)
	assert.Zero(t, tracker.Snapshot().Streak)

	assert.True(t, tracker.RemoveHabit("2"))
	assert.False(t, tracker.RemoveHabit("2"))
	snap := tracker.Snapshot()
	assert.Equal(t, 1, snap.Streak)
	// progress of the removed habit stays as orphaned history
	assert.Equal(t, 1, snap.Logs["2025-03-05"].Progress["2"])
}

func TestTrackerDayRollover(t *testing.T) {
	var mu sync.Mutex
	now := fixedNow
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	tracker := state.NewTracker(userID, entity.PulseData{Habits: oneHabit}, nil, clock, nil)
	defer tracker.Close()
	tracker.ApplyDelta("2025-03-05", "1", 1)
	assert.Equal(t, 1, tracker.Snapshot().Streak)

	mu.Lock()
	now = now.Add(24 * time.Hour)
	mu.Unlock()
	snap := tracker.Snapshot()
	assert.Equal(t, "2025-03-06", snap.Today)
	assert.Zero(t, snap.Streak)
}

func TestTrackerPersistsLatest(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPulseRepositoryI(ctrl)
	var mu sync.Mutex
	var last entity.PulseData
	repo.EXPECT().Save(gomock.Any(), userID, gomock.Any()).DoAndReturn(
		func(ctx context.Context, id uuid.UUID, data *entity.PulseData) error {
			mu.Lock()
			defer mu.Unlock()
			last = entity.PulseData{Habits: data.Habits, Logs: pulse.CloneLogs(data.Logs)}
			return nil
		},
	).MinTimes(1)

	tracker := state.NewTracker(userID, entity.PulseData{Habits: oneHabit}, repo, testClock, nil)
	for range 20 {
		tracker.ApplyDelta("2025-03-05", "1", 1)
		tracker.ApplyDelta("2025-03-05", "1", -1)
	}
	tracker.SetMood("2025-03-05", entity.MoodSad)
	tracker.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, entity.MoodSad, last.Logs["2025-03-05"].Mood)
	assert.Equal(t, 0, last.Logs["2025-03-05"].Progress["1"])

	// no saves after close
	tracker.SetMood("2025-03-05", entity.MoodHappy)
}

func TestTrackerSaveErrorKeepsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPulseRepositoryI(ctrl)
	repo.EXPECT().Save(gomock.Any(), userID, gomock.Any()).Return(errors.New("db down")).AnyTimes()

	tracker := state.NewTracker(userID, entity.PulseData{Habits: oneHabit}, repo, testClock, nil)
	tracker.ApplyDelta("2025-03-05", "1", 1)
	tracker.Close()
	assert.Equal(t, 1, tracker.Log("2025-03-05").Progress["1"])
}
