package pulse_test

import (
	"testing"

	"github.com/limbo/dailypulse/internal/pulse"
	"github.com/limbo/dailypulse/pkg/entity"
	"github.com/stretchr/testify/assert"
)

var testHabits = []entity.Habit{
	{ID: "water", Name: "Drink Water", Category: entity.CategoryHealth, Kind: entity.KindCountable, Target: 8},
	{ID: "read", Name: "Read", Category: entity.CategoryLearning, Kind: entity.KindBoolean, Target: 1},
}

func TestApplyDelta(t *testing.T) {
	const day = "2025-03-04"
	testCases := []struct {
		Desc     string
		Start    int
		HabitID  string
		Delta    int
		Expected int
	}{
		{Desc: "increment", Start: 2, HabitID: "water", Delta: 1, Expected: 3},
		{Desc: "decrement", Start: 2, HabitID: "water", Delta: -1, Expected: 1},
		{Desc: "clamped at target", Start: 7, HabitID: "water", Delta: 100, Expected: 8},
		{Desc: "clamped at zero", Start: 1, HabitID: "water", Delta: -100, Expected: 0},
		{Desc: "boolean done", Start: 0, HabitID: "read", Delta: 1, Expected: 1},
		{Desc: "boolean undone", Start: 1, HabitID: "read", Delta: -1, Expected: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			logs := pulse.SetProgress(nil, day, tc.HabitID, tc.Start)
			next := pulse.ApplyDelta(logs, testHabits, day, tc.HabitID, tc.Delta)
			assert.Equal(t, tc.Expected, pulse.GetLog(next, day).Progress[tc.HabitID])
		})
	}

	t.Run("clamping is idempotent", func(t *testing.T) {
		for _, delta := range []int{-1000, -9, 9, 1000} {
			once := pulse.ApplyDelta(nil, testHabits, day, "water", delta)
			twice := pulse.ApplyDelta(once, testHabits, day, "water", delta)
			assert.Equal(t, pulse.GetLog(once, day).Progress["water"], pulse.GetLog(twice, day).Progress["water"])
			v := pulse.GetLog(twice, day).Progress["water"]
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, 8)
		}
	})

	t.Run("unknown habit is a no-op", func(t *testing.T) {
		logs := pulse.SetProgress(nil, day, "water", 3)
		next := pulse.ApplyDelta(logs, testHabits, day, "ghost", 1)
		assert.Equal(t, logs, next)
		assert.NotContains(t, next[day].Progress, "ghost")
	})
}

func TestToggleDelta(t *testing.T) {
	read := testHabits[1]
	logs := entity.Logs{}
	for _, expected := range []int{1, 0, 1} {
		current := pulse.GetLog(logs, "2025-03-04").Progress["read"]
		logs = pulse.ApplyDelta(logs, testHabits, "2025-03-04", "read", pulse.ToggleDelta(read, current))
		assert.Equal(t, expected, logs["2025-03-04"].Progress["read"])
	}
}
