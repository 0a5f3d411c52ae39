package pulse

import (
	"maps"

	"github.com/limbo/dailypulse/pkg/entity"
)

// GetLog returns the record for key, or an empty record when nothing was
// logged that day.
func GetLog(logs entity.Logs, key string) entity.DailyLog {
	if log, ok := logs[key]; ok {
		return log
	}
	return entity.DailyLog{
		Date:     key,
		Mood:     entity.MoodNone,
		Progress: entity.HabitProgress{},
	}
}

// SetProgress returns a new store where day key has habitID set to amount.
// The result shares no maps with logs.
func SetProgress(logs entity.Logs, key, habitID string, amount int) entity.Logs {
	next := CloneLogs(logs)
	log := GetLog(next, key)
	log.Progress[habitID] = amount
	next[key] = log
	return next
}

// SetMood returns a new store with the mood of day key replaced.
func SetMood(logs entity.Logs, key string, mood entity.Mood) entity.Logs {
	next := CloneLogs(logs)
	log := GetLog(next, key)
	log.Mood = mood
	next[key] = log
	return next
}

// CloneLogs deep-copies the store so the result shares no maps with logs.
func CloneLogs(logs entity.Logs) entity.Logs {
	next := make(entity.Logs, len(logs))
	for k, v := range logs {
		next[k] = cloneLog(v)
	}
	return next
}

func cloneLog(log entity.DailyLog) entity.DailyLog {
	progress := maps.Clone(log.Progress)
	if progress == nil {
		progress = entity.HabitProgress{}
	}
	log.Progress = progress
	return log
}
