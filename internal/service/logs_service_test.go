package service_test

import (
	"context"
	"testing"

	errorvalues "github.com/limbo/dailypulse/internal/error_values"
	"github.com/limbo/dailypulse/internal/service"
	"github.com/limbo/dailypulse/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogProgress(t *testing.T) {
	reg := newTestRegistry(t, &entity.PulseData{Habits: testHabits(), Logs: entity.Logs{}})
	s := service.NewLogsService(reg)
	ctx := context.Background()

	tests := []struct {
		Desc        string
		Req         service.ProgressRequest
		ExpectedErr error
		Expected    int
	}{
		{Desc: "add today", Req: service.ProgressRequest{HabitID: "water", Delta: 3}, Expected: 3},
		{Desc: "clamped to target", Req: service.ProgressRequest{HabitID: "water", Delta: 100}, Expected: 8},
		{Desc: "clamped to zero", Req: service.ProgressRequest{HabitID: "water", Delta: -100}, Expected: 0},
		{Desc: "toggle on", Req: service.ProgressRequest{HabitID: "read", Toggle: true}, Expected: 1},
		{Desc: "toggle off", Req: service.ProgressRequest{HabitID: "read", Toggle: true}, Expected: 0},
		{Desc: "past day", Req: service.ProgressRequest{HabitID: "water", Delta: 2, Date: "2025-03-01"}, Expected: 2},
		{Desc: "unknown habit", Req: service.ProgressRequest{HabitID: "ghost", Delta: 1}, ExpectedErr: errorvalues.ErrHabitNotFound},
		{Desc: "future day", Req: service.ProgressRequest{HabitID: "water", Delta: 1, Date: "2025-03-06"}, ExpectedErr: errorvalues.ErrDateNotAllowed},
		{Desc: "broken date", Req: service.ProgressRequest{HabitID: "water", Delta: 1, Date: "05/03/2025"}, ExpectedErr: errorvalues.ErrValidation},
		{Desc: "no habit id", Req: service.ProgressRequest{Delta: 1}, ExpectedErr: errorvalues.ErrValidation},
	}
	for _, tc := range tests {
		t.Run(tc.Desc, func(t *testing.T) {
			log, err := s.LogProgress(ctx, ownerID, &tc.Req)
			if tc.ExpectedErr != nil {
				assert.ErrorIs(t, err, tc.ExpectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, log.Progress[tc.Req.HabitID])
		})
	}
}

func TestMoodAndLookups(t *testing.T) {
	reg := newTestRegistry(t, &entity.PulseData{
		Habits: testHabits(),
		Logs: entity.Logs{
			"2025-03-03": {Date: "2025-03-03", Mood: entity.MoodSad, Progress: entity.HabitProgress{"read": 1}},
			"2025-02-20": {Date: "2025-02-20", Progress: entity.HabitProgress{"water": 8}},
		},
	})
	s := service.NewLogsService(reg)
	ctx := context.Background()

	t.Run("set mood today", func(t *testing.T) {
		log, err := s.SetMood(ctx, ownerID, &service.MoodRequest{Mood: entity.MoodHappy})
		require.NoError(t, err)
		assert.Equal(t, "2025-03-05", log.Date)
		assert.Equal(t, entity.MoodHappy, log.Mood)
	})
	t.Run("unknown mood", func(t *testing.T) {
		_, err := s.SetMood(ctx, ownerID, &service.MoodRequest{Mood: "🤖"})
		assert.ErrorIs(t, err, errorvalues.ErrInvalidMood)
	})
	t.Run("future mood", func(t *testing.T) {
		_, err := s.SetMood(ctx, ownerID, &service.MoodRequest{Mood: entity.MoodTired, Date: "2026-01-01"})
		assert.ErrorIs(t, err, errorvalues.ErrDateNotAllowed)
	})
	t.Run("today", func(t *testing.T) {
		log, err := s.Today(ctx, ownerID)
		require.NoError(t, err)
		assert.Equal(t, entity.MoodHappy, log.Mood)
	})
	t.Run("absent day is a default record", func(t *testing.T) {
		log, err := s.ByDate(ctx, ownerID, "2025-03-04")
		require.NoError(t, err)
		assert.Equal(t, entity.DailyLog{Date: "2025-03-04", Progress: entity.HabitProgress{}}, *log)
	})
	t.Run("by date invalid", func(t *testing.T) {
		_, err := s.ByDate(ctx, ownerID, "yesterday")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidDate)
	})
	t.Run("range ascending", func(t *testing.T) {
		logs, err := s.Range(ctx, ownerID, "2025-03-01", "2025-03-05")
		require.NoError(t, err)
		require.Len(t, logs, 2)
		assert.Equal(t, "2025-03-03", logs[0].Date)
		assert.Equal(t, "2025-03-05", logs[1].Date)
	})
	t.Run("range reversed", func(t *testing.T) {
		_, err := s.Range(ctx, ownerID, "2025-03-05", "2025-03-01")
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("range invalid", func(t *testing.T) {
		_, err := s.Range(ctx, ownerID, "", "2025-03-01")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidDate)
	})
}
