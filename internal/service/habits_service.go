package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/dailypulse/internal/error_values"
	"github.com/limbo/dailypulse/pkg/entity"
)

type HabitsService struct {
	trackers TrackerSource
}

func NewHabitsService(trackers TrackerSource) *HabitsService {
	if trackers == nil {
		log.Fatal("provided nil tracker source")
	}
	return &HabitsService{
		trackers: trackers,
	}
}

func (hs *HabitsService) List(ctx context.Context, uid uuid.UUID) ([]entity.Habit, error) {
	tracker, err := hs.trackers.Tracker(ctx, uid)
	if err != nil {
		return nil, errors.New("tracker error: " + err.Error())
	}
	return tracker.Habits(), nil
}

func (hs *HabitsService) Get(ctx context.Context, uid uuid.UUID, habitID string) (*entity.Habit, error) {
	tracker, err := hs.trackers.Tracker(ctx, uid)
	if err != nil {
		return nil, errors.New("tracker error: " + err.Error())
	}
	habit, ok := tracker.Habit(habitID)
	if !ok {
		return nil, errorvalues.ErrHabitNotFound
	}
	return &habit, nil
}

func (hs *HabitsService) Create(ctx context.Context, uid uuid.UUID, req *HabitRequest) (*entity.Habit, error) {
	habit, err := habitFromRequest(req)
	if err != nil {
		return nil, err
	}
	tracker, err := hs.trackers.Tracker(ctx, uid)
	if err != nil {
		return nil, errors.New("tracker error: " + err.Error())
	}
	habit.ID = uuid.NewString()
	created, _ := tracker.SaveHabit(habit)
	return &created, nil
}

func (hs *HabitsService) Update(ctx context.Context, uid uuid.UUID, habitID string, req *HabitRequest) (*entity.Habit, error) {
	habit, err := habitFromRequest(req)
	if err != nil {
		return nil, err
	}
	tracker, err := hs.trackers.Tracker(ctx, uid)
	if err != nil {
		return nil, errors.New("tracker error: " + err.Error())
	}
	if _, ok := tracker.Habit(habitID); !ok {
		return nil, errorvalues.ErrHabitNotFound
	}
	habit.ID = habitID
	updated, _ := tracker.SaveHabit(habit)
	return &updated, nil
}

func (hs *HabitsService) Delete(ctx context.Context, uid uuid.UUID, habitID string) error {
	tracker, err := hs.trackers.Tracker(ctx, uid)
	if err != nil {
		return errors.New("tracker error: " + err.Error())
	}
	if !tracker.RemoveHabit(habitID) {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func habitFromRequest(req *HabitRequest) (entity.Habit, error) {
	if req == nil {
		return entity.Habit{}, errorvalues.ErrValidation
	}
	r := *req
	if r.Kind == entity.KindBoolean {
		r.Target = 1
	}
	if err := validationError(r); err != nil {
		return entity.Habit{}, err
	}
	return entity.Habit{
		Name:     r.Name,
		Icon:     r.Icon,
		Category: r.Category,
		Kind:     r.Kind,
		Target:   r.Target,
		Color:    r.Color,
	}, nil
}
