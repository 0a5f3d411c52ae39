package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/dailypulse/internal/repository/mocks"
	"github.com/limbo/dailypulse/internal/state"
	"github.com/limbo/dailypulse/pkg/entity"
)

// Wednesday
var (
	testNow   = time.Date(2025, time.March, 5, 18, 0, 0, 0, time.UTC)
	testClock = func() time.Time { return testNow }
	ownerID   = uuid.New()
)

func testHabits() []entity.Habit {
	return []entity.Habit{
		{ID: "water", Name: "Drink Water", Icon: "💧", Category: entity.CategoryHealth, Kind: entity.KindCountable, Target: 8, Color: "blue"},
		{ID: "read", Name: "Read a Book", Icon: "📚", Category: entity.CategoryLearning, Kind: entity.KindBoolean, Target: 1, Color: "indigo"},
	}
}

// newTestRegistry serves data for ownerID and accepts every save.
func newTestRegistry(t *testing.T, data *entity.PulseData) *state.Registry {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPulseRepositoryI(ctrl)
	repo.EXPECT().Load(gomock.Any(), ownerID).Return(data, nil).AnyTimes()
	repo.EXPECT().Save(gomock.Any(), ownerID, gomock.Any()).Return(nil).AnyTimes()
	reg := state.NewRegistry(repo, testClock, nil)
	t.Cleanup(func() { reg.Close() })
	return reg
}

type brokenSource struct{}

func (brokenSource) Tracker(ctx context.Context, userID uuid.UUID) (*state.Tracker, error) {
	return nil, errors.New("db down")
}
