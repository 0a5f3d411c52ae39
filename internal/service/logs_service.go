package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/dailypulse/internal/error_values"
	"github.com/limbo/dailypulse/internal/pulse"
	"github.com/limbo/dailypulse/internal/state"
	"github.com/limbo/dailypulse/pkg/entity"
)

type LogsService struct {
	trackers TrackerSource
}

func NewLogsService(trackers TrackerSource) *LogsService {
	if trackers == nil {
		log.Fatal("provided nil tracker source")
	}
	return &LogsService{
		trackers: trackers,
	}
}

func (ls *LogsService) LogProgress(ctx context.Context, uid uuid.UUID, req *ProgressRequest) (*entity.DailyLog, error) {
	if err := validationError(*req); err != nil {
		return nil, err
	}
	tracker, err := ls.trackers.Tracker(ctx, uid)
	if err != nil {
		return nil, errors.New("tracker error: " + err.Error())
	}
	day, err := resolveDay(tracker, req.Date)
	if err != nil {
		return nil, err
	}
	var dayLog entity.DailyLog
	var ok bool
	if req.Toggle {
		dayLog, ok = tracker.Toggle(day, req.HabitID)
	} else {
		dayLog, ok = tracker.ApplyDelta(day, req.HabitID, req.Delta)
	}
	if !ok {
		return nil, errorvalues.ErrHabitNotFound
	}
	return &dayLog, nil
}

func (ls *LogsService) SetMood(ctx context.Context, uid uuid.UUID, req *MoodRequest) (*entity.DailyLog, error) {
	if !req.Mood.Valid() {
		return nil, errorvalues.ErrInvalidMood
	}
	if err := validationError(*req); err != nil {
		return nil, err
	}
	tracker, err := ls.trackers.Tracker(ctx, uid)
	if err != nil {
		return nil, errors.New("tracker error: " + err.Error())
	}
	day, err := resolveDay(tracker, req.Date)
	if err != nil {
		return nil, err
	}
	dayLog := tracker.SetMood(day, req.Mood)
	return &dayLog, nil
}

func (ls *LogsService) Today(ctx context.Context, uid uuid.UUID) (*entity.DailyLog, error) {
	return ls.ByDate(ctx, uid, "")
}

func (ls *LogsService) ByDate(ctx context.Context, uid uuid.UUID, date string) (*entity.DailyLog, error) {
	tracker, err := ls.trackers.Tracker(ctx, uid)
	if err != nil {
		return nil, errors.New("tracker error: " + err.Error())
	}
	day := pulse.DayKey(tracker.Now())
	if date != "" {
		t, err := pulse.ParseDayKey(date, tracker.Now().Location())
		if err != nil {
			return nil, errorvalues.ErrInvalidDate
		}
		day = pulse.DayKey(t)
	}
	dayLog := tracker.Log(day)
	return &dayLog, nil
}

func (ls *LogsService) Range(ctx context.Context, uid uuid.UUID, start, end string) ([]entity.DailyLog, error) {
	tracker, err := ls.trackers.Tracker(ctx, uid)
	if err != nil {
		return nil, errors.New("tracker error: " + err.Error())
	}
	loc := tracker.Now().Location()
	from, err := pulse.ParseDayKey(start, loc)
	if err != nil {
		return nil, errorvalues.ErrInvalidDate
	}
	to, err := pulse.ParseDayKey(end, loc)
	if err != nil {
		return nil, errorvalues.ErrInvalidDate
	}
	if to.Before(from) {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("start_date is after end_date"))
	}
	window := pulse.LogsBetween(tracker.Snapshot().Logs, from, to)
	result := make([]entity.DailyLog, 0, len(window))
	for _, key := range pulse.SortedKeys(window) {
		result = append(result, window[key])
	}
	return result, nil
}

// resolveDay turns an optional YYYY-MM-DD date into a day key, rejecting days
// after today in the tracker's zone.
func resolveDay(tracker *state.Tracker, date string) (string, error) {
	now := tracker.Now()
	today := pulse.DayKey(now)
	if date == "" {
		return today, nil
	}
	t, err := pulse.ParseDayKey(date, now.Location())
	if err != nil {
		return "", errorvalues.ErrInvalidDate
	}
	day := pulse.DayKey(t)
	if day > today {
		return "", errorvalues.ErrDateNotAllowed
	}
	return day, nil
}
