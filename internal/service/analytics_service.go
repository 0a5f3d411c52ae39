package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/dailypulse/internal/error_values"
	"github.com/limbo/dailypulse/internal/pulse"
	"github.com/limbo/dailypulse/pkg/entity"
)

const (
	DefaultTrendDays = 7
	MaxTrendDays     = 90
	DefaultStatsDays = 30
	MaxStatsDays     = 365
)

type AnalyticsService struct {
	trackers TrackerSource
}

func NewAnalyticsService(trackers TrackerSource) *AnalyticsService {
	if trackers == nil {
		log.Fatal("provided nil tracker source")
	}
	return &AnalyticsService{
		trackers: trackers,
	}
}

func (as *AnalyticsService) Overview(ctx context.Context, uid uuid.UUID) (*entity.Overview, error) {
	tracker, err := as.trackers.Tracker(ctx, uid)
	if err != nil {
		return nil, errors.New("tracker error: " + err.Error())
	}
	snap := tracker.Snapshot()
	return &entity.Overview{
		CurrentStreak:   snap.Streak,
		LongestStreak:   pulse.LongestStreak(snap.Logs, snap.Habits),
		TodayCompletion: pulse.DayCompletionPercent(pulse.GetLog(snap.Logs, snap.Today), snap.Habits),
		TotalHabits:     len(snap.Habits),
		LoggedDays:      len(snap.Logs),
		Today:           snap.Today,
	}, nil
}

func (as *AnalyticsService) Week(ctx context.Context, uid uuid.UUID, date string) ([]entity.DayCompletion, error) {
	tracker, err := as.trackers.Tracker(ctx, uid)
	if err != nil {
		return nil, errors.New("tracker error: " + err.Error())
	}
	ref := tracker.Now()
	if date != "" {
		ref, err = pulse.ParseDayKey(date, ref.Location())
		if err != nil {
			return nil, errorvalues.ErrInvalidDate
		}
	}
	snap := tracker.Snapshot()
	return pulse.WeekCompletion(snap.Logs, snap.Habits, ref), nil
}

func (as *AnalyticsService) Trends(ctx context.Context, uid uuid.UUID, days int) ([]entity.DayCompletion, error) {
	tracker, err := as.trackers.Tracker(ctx, uid)
	if err != nil {
		return nil, errors.New("tracker error: " + err.Error())
	}
	snap := tracker.Snapshot()
	days = windowDays(days, DefaultTrendDays, MaxTrendDays)
	return pulse.CompletionTrend(snap.Logs, snap.Habits, tracker.Now(), days), nil
}

func (as *AnalyticsService) CategoryBreakdown(ctx context.Context, uid uuid.UUID) (map[entity.Category]int, error) {
	tracker, err := as.trackers.Tracker(ctx, uid)
	if err != nil {
		return nil, errors.New("tracker error: " + err.Error())
	}
	return pulse.CategoryBreakdown(tracker.Habits()), nil
}

func (as *AnalyticsService) MoodStats(ctx context.Context, uid uuid.UUID, days int) ([]entity.MoodCount, error) {
	tracker, err := as.trackers.Tracker(ctx, uid)
	if err != nil {
		return nil, errors.New("tracker error: " + err.Error())
	}
	now := tracker.Now()
	days = windowDays(days, DefaultStatsDays, MaxStatsDays)
	from := pulse.AddDays(now, -(days - 1))
	return pulse.MoodHistogram(pulse.LogsBetween(tracker.Snapshot().Logs, from, now)), nil
}

func (as *AnalyticsService) BestHabits(ctx context.Context, uid uuid.UUID, days int) ([]entity.HabitSuccess, error) {
	tracker, err := as.trackers.Tracker(ctx, uid)
	if err != nil {
		return nil, errors.New("tracker error: " + err.Error())
	}
	snap := tracker.Snapshot()
	days = windowDays(days, DefaultStatsDays, MaxStatsDays)
	return pulse.HabitSuccessRates(snap.Logs, snap.Habits, tracker.Now(), days), nil
}

func windowDays(days, def, limit int) int {
	if days < 1 {
		return def
	}
	return min(days, limit)
}
