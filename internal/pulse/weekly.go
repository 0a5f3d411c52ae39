package pulse

import (
	"math"
	"time"

	"github.com/limbo/dailypulse/pkg/entity"
)

// DayCompletionPercent is the rounded share of habits that met their target.
func DayCompletionPercent(log entity.DailyLog, habits []entity.Habit) int {
	if len(habits) == 0 {
		return 0
	}
	completed := 0
	for _, h := range habits {
		if log.Progress[h.ID] >= h.Target {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(habits))))
}

// WeekCompletion returns seven entries, Monday to Sunday, for the week
// containing ref.
func WeekCompletion(logs entity.Logs, habits []entity.Habit, ref time.Time) []entity.DayCompletion {
	start, end := WeekInterval(ref)
	return completionFor(logs, habits, DaysInInterval(start, end))
}

// CompletionTrend returns per-day completion for the days ending at end,
// oldest first.
func CompletionTrend(logs entity.Logs, habits []entity.Habit, end time.Time, days int) []entity.DayCompletion {
	if days < 1 {
		return []entity.DayCompletion{}
	}
	start := AddDays(end, -(days - 1))
	return completionFor(logs, habits, DaysInInterval(start, end))
}

func completionFor(logs entity.Logs, habits []entity.Habit, days []time.Time) []entity.DayCompletion {
	result := make([]entity.DayCompletion, 0, len(days))
	for _, day := range days {
		key := DayKey(day)
		entry := entity.DayCompletion{
			Date:  key,
			Label: day.Format("Mon"),
		}
		if log, ok := logs[key]; ok {
			entry.Completion = DayCompletionPercent(log, habits)
		}
		result = append(result, entry)
	}
	return result
}
