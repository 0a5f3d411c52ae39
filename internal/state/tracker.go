// Package state keeps one user's habits and log store in memory and mirrors
// every change to a persistence backend.
package state

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/dailypulse/internal/pulse"
	"github.com/limbo/dailypulse/internal/repository"
	"github.com/limbo/dailypulse/pkg/entity"
)

// Clock returns the current time in the user's location.
type Clock func() time.Time

var saveTimeout = 10 * time.Second

// Snapshot is an immutable view of a user's state. Values handed out by
// Tracker are copies and may be modified by the caller.
type Snapshot struct {
	Habits []entity.Habit
	Logs   entity.Logs
	Streak int
	Today  string
}

func (s Snapshot) clone() Snapshot {
	s.Habits = slices.Clone(s.Habits)
	s.Logs = pulse.CloneLogs(s.Logs)
	return s
}

// Tracker owns one user's snapshot. Mutations are serialized and each one
// replaces the snapshot with a freshly computed value.
type Tracker struct {
	mu     sync.Mutex
	userID uuid.UUID
	snap   Snapshot
	now    Clock
	repo   repository.PulseRepositoryI
	logger *slog.Logger

	pending chan entity.PulseData
	done    chan struct{}
	closed  bool
}

func NewTracker(userID uuid.UUID, data entity.PulseData, repo repository.PulseRepositoryI, now Clock, logger *slog.Logger) *Tracker {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	if data.Logs == nil {
		data.Logs = entity.Logs{}
	}
	t := &Tracker{
		userID:  userID,
		now:     now,
		repo:    repo,
		logger:  logger.With(slog.String("uid", userID.String())),
		pending: make(chan entity.PulseData, 1),
		done:    make(chan struct{}),
	}
	t.snap = t.derive(data.Habits, data.Logs)
	go t.saveLoop()
	return t
}

// Now is the tracker's notion of the current time.
func (t *Tracker) Now() time.Time {
	return t.now()
}

func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.refreshDay()
	return t.snap.clone()
}

func (t *Tracker) Habits() []entity.Habit {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.snap.Habits)
}

func (t *Tracker) Habit(id string) (entity.Habit, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return pulse.FindHabit(t.snap.Habits, id)
}

// Log returns the record for day, or an empty one if nothing was logged.
func (t *Tracker) Log(day string) entity.DailyLog {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.copyLog(day)
}

// SaveHabit adds habit, or replaces the habit with the same id. A habit
// without id gets a new one. Boolean habits always target 1.
func (t *Tracker) SaveHabit(habit entity.Habit) (entity.Habit, bool) {
	if habit.ID == "" {
		habit.ID = uuid.NewString()
	}
	if habit.Kind == entity.KindBoolean {
		habit.Target = 1
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	habits := slices.Clone(t.snap.Habits)
	i := slices.IndexFunc(habits, func(h entity.Habit) bool { return h.ID == habit.ID })
	created := i < 0
	if created {
		habits = append(habits, habit)
	} else {
		habits[i] = habit
	}
	t.publish(t.derive(habits, t.snap.Logs))
	return habit, created
}

// RemoveHabit drops the habit. Its past progress entries stay in the log
// store and are ignored by every computation.
func (t *Tracker) RemoveHabit(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	habits := slices.DeleteFunc(slices.Clone(t.snap.Habits), func(h entity.Habit) bool { return h.ID == id })
	if len(habits) == len(t.snap.Habits) {
		return false
	}
	t.publish(t.derive(habits, t.snap.Logs))
	return true
}

// ApplyDelta changes the habit's progress on day by delta, clamped to the
// habit's target. Reports false when the habit is unknown.
func (t *Tracker) ApplyDelta(day, habitID string, delta int) (entity.DailyLog, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := pulse.FindHabit(t.snap.Habits, habitID); !ok {
		return pulse.GetLog(nil, day), false
	}
	logs := pulse.ApplyDelta(t.snap.Logs, t.snap.Habits, day, habitID, delta)
	t.publish(t.derive(t.snap.Habits, logs))
	return t.copyLog(day), true
}

// Toggle flips the habit between done and not done on day.
func (t *Tracker) Toggle(day, habitID string) (entity.DailyLog, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	habit, ok := pulse.FindHabit(t.snap.Habits, habitID)
	if !ok {
		return pulse.GetLog(nil, day), false
	}
	delta := pulse.ToggleDelta(habit, pulse.GetLog(t.snap.Logs, day).Progress[habitID])
	logs := pulse.ApplyDelta(t.snap.Logs, t.snap.Habits, day, habitID, delta)
	t.publish(t.derive(t.snap.Habits, logs))
	return t.copyLog(day), true
}

func (t *Tracker) SetMood(day string, mood entity.Mood) entity.DailyLog {
	t.mu.Lock()
	defer t.mu.Unlock()
	logs := pulse.SetMood(t.snap.Logs, day, mood)
	t.publish(t.derive(t.snap.Habits, logs))
	return t.copyLog(day)
}

// Close stops accepting saves and waits for the pending one to finish.
func (t *Tracker) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		<-t.done
		return
	}
	t.closed = true
	close(t.pending)
	t.mu.Unlock()
	<-t.done
}

func (t *Tracker) derive(habits []entity.Habit, logs entity.Logs) Snapshot {
	now := t.now()
	return Snapshot{
		Habits: habits,
		Logs:   logs,
		Streak: pulse.ComputeStreak(logs, habits, now),
		Today:  pulse.DayKey(now),
	}
}

// refreshDay recomputes the streak once the calendar day has rolled over.
func (t *Tracker) refreshDay() {
	if pulse.DayKey(t.now()) != t.snap.Today {
		t.snap = t.derive(t.snap.Habits, t.snap.Logs)
	}
}

func (t *Tracker) copyLog(day string) entity.DailyLog {
	log := pulse.GetLog(t.snap.Logs, day)
	return pulse.CloneLogs(entity.Logs{day: log})[day]
}

// publish swaps in next and queues it for saving. Only the newest unsaved
// snapshot is kept. Must be called with mu held.
func (t *Tracker) publish(next Snapshot) {
	t.snap = next
	if t.closed || t.repo == nil {
		return
	}
	select {
	case <-t.pending:
	default:
	}
	t.pending <- entity.PulseData{Habits: next.Habits, Logs: next.Logs}
}

func (t *Tracker) saveLoop() {
	defer close(t.done)
	for data := range t.pending {
		if t.repo == nil {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		err := t.repo.Save(ctx, t.userID, &data)
		cancel()
		if err != nil {
			t.logger.Error("saving pulse data error", slog.String("error", err.Error()))
			continue
		}
		t.logger.Debug("pulse data saved", slog.Int("habits", len(data.Habits)), slog.Int("days", len(data.Logs)))
	}
}
