// @title DailyPulse API
// @description API for the habit and mood tracker "DailyPulse"
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"log"
	"log/slog"
	"time"
	_ "time/tzdata"

	_ "github.com/limbo/dailypulse/docs"
	"github.com/limbo/dailypulse/internal/api"
	"github.com/limbo/dailypulse/internal/motivation"
	"github.com/limbo/dailypulse/internal/repository"
	"github.com/limbo/dailypulse/internal/service"
	"github.com/limbo/dailypulse/internal/state"
	"github.com/limbo/dailypulse/pkg/cleanup"
	"github.com/limbo/dailypulse/pkg/config"
	jwtservice "github.com/limbo/dailypulse/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	usersRepo := repository.NewUsersRepo(&dbCfg)

	var pulseRepo repository.PulseRepositoryI
	switch driver := cfg.GetStringOr("STORAGE_DRIVER", "postgres"); driver {
	case "postgres":
		pulseRepo = repository.NewPulseRepo(&dbCfg)
	case "sqlite":
		store, err := repository.OpenLocalStore(cfg.GetStringOr("SQLITE_PATH", "./data/pulse.db"))
		if err != nil {
			log.Fatal("opening local store error: " + err.Error())
		}
		cleanup.Register(&cleanup.Job{Name: "closing local store", F: store.Close})
		pulseRepo = store
	default:
		log.Fatal("unknown STORAGE_DRIVER " + driver)
	}

	loc := cfg.GetLocation("TIMEZONE")
	clock := func() time.Time { return time.Now().In(loc) }
	registry := state.NewRegistry(pulseRepo, clock, slog.Default())
	cleanup.Register(&cleanup.Job{Name: "flushing trackers", F: registry.Close})

	serv := api.New(&api.ServicesList{
		UserService:      service.NewUserService(usersRepo),
		HabitsService:    service.NewHabitsService(registry),
		LogsService:      service.NewLogsService(registry),
		AnalyticsService: service.NewAnalyticsService(registry),
		JwtService:       jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("TOKEN_TTL", jwtservice.DefaultTokenTTL)),
		Quotes:           motivation.NewProvider(),
		Trackers:         registry,
	})
	slog.Info("starting server", slog.String("address", cfg.GetString("API_ADDRESS")), slog.String("timezone", loc.String()))
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
