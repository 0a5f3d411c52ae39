package pulse_test

import (
	"testing"

	"github.com/limbo/dailypulse/internal/pulse"
	"github.com/limbo/dailypulse/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestGetLog(t *testing.T) {
	logs := entity.Logs{
		"2025-03-04": {Date: "2025-03-04", Mood: entity.MoodHappy, Progress: entity.HabitProgress{"1": 3}},
	}
	t.Run("stored", func(t *testing.T) {
		log := pulse.GetLog(logs, "2025-03-04")
		assert.Equal(t, entity.MoodHappy, log.Mood)
		assert.Equal(t, 3, log.Progress["1"])
	})
	t.Run("absent", func(t *testing.T) {
		log := pulse.GetLog(logs, "2025-03-05")
		assert.Equal(t, entity.DailyLog{Date: "2025-03-05", Mood: entity.MoodNone, Progress: entity.HabitProgress{}}, log)
	})
	t.Run("nil store", func(t *testing.T) {
		log := pulse.GetLog(nil, "2025-03-05")
		assert.Empty(t, log.Progress)
	})
}

func TestSetProgress(t *testing.T) {
	original := entity.Logs{
		"2025-03-03": {Date: "2025-03-03", Progress: entity.HabitProgress{"1": 1}},
		"2025-03-04": {Date: "2025-03-04", Mood: entity.MoodSad, Progress: entity.HabitProgress{"1": 2, "2": 1}},
	}
	next := pulse.SetProgress(original, "2025-03-04", "1", 5)

	assert.Equal(t, 5, pulse.GetLog(next, "2025-03-04").Progress["1"])
	assert.Equal(t, 1, pulse.GetLog(next, "2025-03-04").Progress["2"])
	assert.Equal(t, entity.MoodSad, pulse.GetLog(next, "2025-03-04").Mood)
	assert.Equal(t, original["2025-03-03"], next["2025-03-03"])
	// input untouched
	assert.Equal(t, 2, original["2025-03-04"].Progress["1"])

	t.Run("no aliasing", func(t *testing.T) {
		next["2025-03-03"].Progress["1"] = 99
		assert.Equal(t, 1, original["2025-03-03"].Progress["1"])
	})
	t.Run("creates day lazily", func(t *testing.T) {
		created := pulse.SetProgress(nil, "2025-03-05", "3", 1)
		assert.Equal(t, entity.DailyLog{Date: "2025-03-05", Progress: entity.HabitProgress{"3": 1}}, created["2025-03-05"])
	})
}

func TestSetMood(t *testing.T) {
	original := entity.Logs{
		"2025-03-04": {Date: "2025-03-04", Progress: entity.HabitProgress{"1": 2}},
	}
	next := pulse.SetMood(original, "2025-03-04", entity.MoodTired)
	assert.Equal(t, entity.MoodTired, next["2025-03-04"].Mood)
	assert.Equal(t, 2, next["2025-03-04"].Progress["1"])
	assert.Equal(t, entity.MoodNone, original["2025-03-04"].Mood)

	created := pulse.SetMood(original, "2025-03-05", entity.MoodAngry)
	assert.Equal(t, entity.MoodAngry, created["2025-03-05"].Mood)
	assert.Empty(t, created["2025-03-05"].Progress)
	assert.NotContains(t, original, "2025-03-05")
}
