package state

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/dailypulse/internal/error_values"
	"github.com/limbo/dailypulse/internal/repository"
	"github.com/limbo/dailypulse/pkg/entity"
)

// Registry lazily loads one Tracker per user.
type Registry struct {
	mu       sync.Mutex
	trackers map[uuid.UUID]*Tracker
	loading  map[uuid.UUID]*loadCall
	repo     repository.PulseRepositoryI
	now      Clock
	logger   *slog.Logger
}

// loadCall is a tracker load in flight; done is closed once t or err is set.
type loadCall struct {
	done chan struct{}
	t    *Tracker
	err  error
}

func NewRegistry(repo repository.PulseRepositoryI, now Clock, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		trackers: make(map[uuid.UUID]*Tracker),
		loading:  make(map[uuid.UUID]*loadCall),
		repo:     repo,
		now:      now,
		logger:   logger,
	}
}

// Tracker returns the user's tracker, loading it on first use. Users with
// nothing stored start with the default habit set and an empty log store.
// Concurrent first calls for one user share a single load; loads for
// different users run in parallel. Failed loads are not cached.
func (r *Registry) Tracker(ctx context.Context, userID uuid.UUID) (*Tracker, error) {
	r.mu.Lock()
	if t, ok := r.trackers[userID]; ok {
		r.mu.Unlock()
		return t, nil
	}
	if c, ok := r.loading[userID]; ok {
		r.mu.Unlock()
		select {
		case <-c.done:
			return c.t, c.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	c := &loadCall{done: make(chan struct{})}
	r.loading[userID] = c
	r.mu.Unlock()

	c.t, c.err = r.load(ctx, userID)

	r.mu.Lock()
	delete(r.loading, userID)
	if c.err == nil {
		r.trackers[userID] = c.t
	}
	r.mu.Unlock()
	close(c.done)
	return c.t, c.err
}

func (r *Registry) load(ctx context.Context, userID uuid.UUID) (*Tracker, error) {
	data, err := r.repo.Load(ctx, userID)
	fresh := false
	if err != nil {
		if !errors.Is(err, errorvalues.ErrNoStoredData) {
			return nil, errors.New("loading pulse data error: " + err.Error())
		}
		data = &entity.PulseData{Habits: entity.DefaultHabits(), Logs: entity.Logs{}}
		fresh = true
	}
	t := NewTracker(userID, *data, r.repo, r.now, r.logger)
	if fresh {
		r.logger.Info("no stored data, starting with default habits", slog.String("uid", userID.String()))
		t.mu.Lock()
		t.publish(t.snap)
		t.mu.Unlock()
	}
	return t, nil
}

// Forget closes and drops the user's tracker without touching storage.
func (r *Registry) Forget(userID uuid.UUID) {
	r.mu.Lock()
	t, ok := r.trackers[userID]
	delete(r.trackers, userID)
	r.mu.Unlock()
	if ok {
		t.Close()
	}
}

// Delete drops the user's tracker and clears everything stored for them.
func (r *Registry) Delete(ctx context.Context, userID uuid.UUID) error {
	r.Forget(userID)
	if err := r.repo.Clear(ctx, userID); err != nil {
		return errors.New("clearing pulse data error: " + err.Error())
	}
	return nil
}

// Close flushes and closes every tracker.
func (r *Registry) Close() error {
	r.mu.Lock()
	trackers := r.trackers
	r.trackers = make(map[uuid.UUID]*Tracker)
	r.mu.Unlock()
	for _, t := range trackers {
		t.Close()
	}
	return nil
}
