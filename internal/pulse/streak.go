package pulse

import (
	"slices"
	"time"

	"github.com/limbo/dailypulse/pkg/entity"
)

// DayComplete reports whether every habit reached its target in log.
// Missing progress entries count as zero.
func DayComplete(log entity.DailyLog, habits []entity.Habit) bool {
	for _, h := range habits {
		if log.Progress[h.ID] < h.Target {
			return false
		}
	}
	return true
}

// ComputeStreak counts consecutive complete days walking back from today.
// The walk stops at the first day without a log or with an unmet habit.
// With no habits the streak is 0.
func ComputeStreak(logs entity.Logs, habits []entity.Habit, today time.Time) int {
	if len(habits) == 0 {
		return 0
	}
	streak := 0
	for day := civilDate(today); ; day = day.AddDate(0, 0, -1) {
		log, ok := logs[DayKey(day)]
		if !ok || !DayComplete(log, habits) {
			return streak
		}
		streak++
	}
}

// LongestStreak is the longest run of consecutive complete days anywhere in
// the recorded history, judged against the current habit set.
func LongestStreak(logs entity.Logs, habits []entity.Habit) int {
	if len(habits) == 0 {
		return 0
	}
	keys := make([]string, 0, len(logs))
	for key, log := range logs {
		if DayComplete(log, habits) {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)

	longest, run := 0, 0
	var prev time.Time
	for _, key := range keys {
		day, err := time.Parse(DayLayout, key)
		if err != nil {
			continue
		}
		if run > 0 && DayKey(prev.AddDate(0, 0, 1)) == key {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
		prev = day
	}
	return longest
}
