package pulse

import (
	"github.com/limbo/dailypulse/pkg/entity"
)

// FindHabit returns the habit with id, or false.
func FindHabit(habits []entity.Habit, id string) (entity.Habit, bool) {
	for _, h := range habits {
		if h.ID == id {
			return h, true
		}
	}
	return entity.Habit{}, false
}

// ApplyDelta adds delta to the habit's progress on day key, clamped to
// [0, target]. An unknown habit id leaves the store untouched.
func ApplyDelta(logs entity.Logs, habits []entity.Habit, key, habitID string, delta int) entity.Logs {
	habit, ok := FindHabit(habits, habitID)
	if !ok {
		return logs
	}
	current := GetLog(logs, key).Progress[habitID]
	return SetProgress(logs, key, habitID, clamp(current+delta, 0, habit.Target))
}

// ToggleDelta is the delta that flips a habit between done and not done.
func ToggleDelta(habit entity.Habit, current int) int {
	if current >= habit.Target {
		return -habit.Target
	}
	return habit.Target
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
