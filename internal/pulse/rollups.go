package pulse

import (
	"cmp"
	"slices"
	"time"

	"github.com/limbo/dailypulse/pkg/entity"
)

// CategoryBreakdown counts habits per category. Categories without habits
// are absent from the result.
func CategoryBreakdown(habits []entity.Habit) map[entity.Category]int {
	counts := make(map[entity.Category]int)
	for _, h := range habits {
		counts[h.Category]++
	}
	return counts
}

// SortedKeys returns the day keys of logs in chronological order.
func SortedKeys(logs entity.Logs) []string {
	keys := make([]string, 0, len(logs))
	for key := range logs {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// MoodHistogram counts each mood seen across logs, in order of first
// appearance when walking days chronologically. Logs without a mood are
// skipped.
func MoodHistogram(logs entity.Logs) []entity.MoodCount {
	result := make([]entity.MoodCount, 0, len(entity.Moods))
	index := make(map[entity.Mood]int)
	for _, key := range SortedKeys(logs) {
		mood := logs[key].Mood
		if mood == entity.MoodNone {
			continue
		}
		if i, ok := index[mood]; ok {
			result[i].Count++
			continue
		}
		index[mood] = len(result)
		result = append(result, entity.MoodCount{Mood: mood, Count: 1})
	}
	return result
}

// LogsBetween keeps the logs whose day falls within [from, to].
func LogsBetween(logs entity.Logs, from, to time.Time) entity.Logs {
	lo, hi := DayKey(from), DayKey(to)
	window := make(entity.Logs)
	for key, log := range logs {
		if key >= lo && key <= hi {
			window[key] = log
		}
	}
	return window
}

// HabitSuccessRates reports, per habit, how many of the days ending at end
// reached the target. Best habits come first; ties keep habit order.
func HabitSuccessRates(logs entity.Logs, habits []entity.Habit, end time.Time, days int) []entity.HabitSuccess {
	result := make([]entity.HabitSuccess, 0, len(habits))
	if days < 1 {
		return result
	}
	start := AddDays(end, -(days - 1))
	window := DaysInInterval(start, end)
	for _, h := range habits {
		done := 0
		for _, day := range window {
			if logs[DayKey(day)].Progress[h.ID] >= h.Target {
				done++
			}
		}
		result = append(result, entity.HabitSuccess{
			HabitID:     h.ID,
			Name:        h.Name,
			CompletedOn: done,
			Days:        len(window),
			Rate:        float64(done) / float64(len(window)),
		})
	}
	slices.SortStableFunc(result, func(a, b entity.HabitSuccess) int {
		return cmp.Compare(b.Rate, a.Rate)
	})
	return result
}
