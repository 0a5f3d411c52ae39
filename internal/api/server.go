package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/dailypulse/internal/service"
	"github.com/limbo/dailypulse/pkg/cleanup"
	httpSwagger "github.com/swaggo/http-swagger"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	mx               *chi.Mux
	userService      service.UserServiceI
	habitsService    service.HabitsServiceI
	logsService      service.LogsServiceI
	analyticsService service.AnalyticsServiceI
	jwtService       JWTServiceI
	quotes           QuoteProviderI
	trackers         TrackerRegistryI
}

type ServicesList struct {
	UserService      service.UserServiceI
	HabitsService    service.HabitsServiceI
	LogsService      service.LogsServiceI
	AnalyticsService service.AnalyticsServiceI
	JwtService       JWTServiceI
	Quotes           QuoteProviderI
	// Optional
	Trackers TrackerRegistryI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:               chi.NewMux(),
		userService:      servicesOptions.UserService,
		habitsService:    servicesOptions.HabitsService,
		logsService:      servicesOptions.LogsService,
		analyticsService: servicesOptions.AnalyticsService,
		jwtService:       servicesOptions.JwtService,
		quotes:           servicesOptions.Quotes,
		trackers:         servicesOptions.Trackers,
	}
	s.mountRoutes()
	return s
}

func (s *Server) mountRoutes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.RecoverMiddleware)
	s.mx.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Get("/motivation/quote", s.Quote)
		r.Get("/motivation/tips", s.Tips)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Get("/auth/me", s.Me)
			r.Delete("/auth/me", s.DeleteAccount)

			r.Get("/habits", s.ListHabits)
			r.Post("/habits", s.CreateHabit)
			r.Get("/habits/{id}", s.GetHabit)
			r.Put("/habits/{id}", s.UpdateHabit)
			r.Delete("/habits/{id}", s.DeleteHabit)

			r.Post("/logs/progress", s.LogProgress)
			r.Get("/logs/today", s.TodayLog)
			r.Get("/logs/date/{date}", s.LogByDate)
			r.Get("/logs/range", s.LogsRange)
			r.Post("/moods", s.SetMood)

			r.Get("/analytics/overview", s.Overview)
			r.Get("/analytics/week", s.Week)
			r.Get("/analytics/trends", s.Trends)
			r.Get("/analytics/category-breakdown", s.CategoryBreakdown)
			r.Get("/analytics/mood-stats", s.MoodStats)
			r.Get("/analytics/best-habits", s.BestHabits)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until SIGINT or SIGTERM, then shuts down gracefully and runs
// registered cleanup jobs.
func (s *Server) Run(address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		cleanup.CleanUp()
		return err
	case <-ctx.Done():
	}
	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	cleanup.CleanUp()
	return err
}
