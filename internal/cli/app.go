package cli

import (
	"errors"
	"time"
	_ "time/tzdata"

	"github.com/limbo/dailypulse/internal/motivation"
	"github.com/limbo/dailypulse/internal/repository"
	"github.com/limbo/dailypulse/internal/service"
	"github.com/limbo/dailypulse/internal/state"
)

// OpenApp opens the local store named by flags and wires the services over
// it. The returned close func flushes pending saves and closes the store.
func OpenApp(flags GlobalFlags, now func() time.Time) (*App, func() error, error) {
	if now == nil {
		now = time.Now
	}
	clock := now
	if flags.TimeZone != "" {
		loc, err := time.LoadLocation(flags.TimeZone)
		if err != nil {
			return nil, nil, errors.New("loading time zone error: " + err.Error())
		}
		clock = func() time.Time { return now().In(loc) }
	}

	store, err := repository.OpenLocalStore(flags.DBPath)
	if err != nil {
		return nil, nil, err
	}
	registry := state.NewRegistry(store, clock, nil)
	app := &App{
		UserID:    LocalProfileID,
		Habits:    service.NewHabitsService(registry),
		Logs:      service.NewLogsService(registry),
		Analytics: service.NewAnalyticsService(registry),
		Quotes:    motivation.NewProvider(),
	}
	closeFn := func() error {
		return errors.Join(registry.Close(), store.Close())
	}
	return app, closeFn, nil
}
