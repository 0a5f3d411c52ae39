package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/dailypulse/internal/state"
	"github.com/limbo/dailypulse/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type HabitRequest struct {
	Name     string           `validate:"required,max=100"`
	Icon     string           `validate:"max=16"`
	Category entity.Category  `validate:"required,category"`
	Kind     entity.HabitKind `validate:"required,habit_kind"`
	Target   int              `validate:"min=1,max=10000"`
	Color    string           `validate:"max=32"`
}

type ProgressRequest struct {
	HabitID string `validate:"required"`
	Delta   int
	// Toggle flips the habit between done and not done, Delta is ignored.
	Toggle bool
	// Empty means today.
	Date string `validate:"omitempty,day_key"`
}

type MoodRequest struct {
	Mood entity.Mood `validate:"required,mood"`
	Date string      `validate:"omitempty,day_key"`
}

// TrackerSource hands out the per-user state containers.
type TrackerSource interface {
	Tracker(ctx context.Context, userID uuid.UUID) (*state.Tracker, error)
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type HabitsServiceI interface {
	List(ctx context.Context, uid uuid.UUID) ([]entity.Habit, error)
	Get(ctx context.Context, uid uuid.UUID, habitID string) (*entity.Habit, error)
	Create(ctx context.Context, uid uuid.UUID, req *HabitRequest) (*entity.Habit, error)
	// Edits habit in place, id stays the same
	Update(ctx context.Context, uid uuid.UUID, habitID string, req *HabitRequest) (*entity.Habit, error)
	// Removes habit. Logged progress for it is kept but no longer counted
	Delete(ctx context.Context, uid uuid.UUID, habitID string) error
}

type LogsServiceI interface {
	LogProgress(ctx context.Context, uid uuid.UUID, req *ProgressRequest) (*entity.DailyLog, error)
	SetMood(ctx context.Context, uid uuid.UUID, req *MoodRequest) (*entity.DailyLog, error)
	Today(ctx context.Context, uid uuid.UUID) (*entity.DailyLog, error)
	ByDate(ctx context.Context, uid uuid.UUID, date string) (*entity.DailyLog, error)
	// Returns stored logs between start and end inclusive, oldest first
	Range(ctx context.Context, uid uuid.UUID, start, end string) ([]entity.DailyLog, error)
}

type AnalyticsServiceI interface {
	Overview(ctx context.Context, uid uuid.UUID) (*entity.Overview, error)
	// Monday to Sunday completion of the week containing date (today if empty)
	Week(ctx context.Context, uid uuid.UUID, date string) ([]entity.DayCompletion, error)
	Trends(ctx context.Context, uid uuid.UUID, days int) ([]entity.DayCompletion, error)
	CategoryBreakdown(ctx context.Context, uid uuid.UUID) (map[entity.Category]int, error)
	MoodStats(ctx context.Context, uid uuid.UUID, days int) ([]entity.MoodCount, error)
	BestHabits(ctx context.Context, uid uuid.UUID, days int) ([]entity.HabitSuccess, error)
}
