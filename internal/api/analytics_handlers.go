package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/limbo/dailypulse/pkg/httputil"
)

// daysParam reads ?days=; missing or broken values become 0 and the service
// applies its default window.
func daysParam(r *http.Request) int {
	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil || days < 1 {
		return 0
	}
	return days
}

// @Summary Streaks and today completion
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} entity.Overview
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /analytics/overview [get]
func (s *Server) Overview(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("overview error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	overview, err := s.analyticsService.Overview(ctx, uid)
	if err != nil {
		s.writeServiceError(w, logger, "overview", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, overview)
}

// @Summary Completion of each day of a week
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param date query string false "any day of the week, YYYY-MM-DD"
// @Success 200 {object} map[string][]entity.DayCompletion
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /analytics/week [get]
func (s *Server) Week(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("week error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	days, err := s.analyticsService.Week(ctx, uid, r.URL.Query().Get("date"))
	if err != nil {
		s.writeServiceError(w, logger, "week", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"days": days})
}

// @Summary Completion trend
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param days query int false "window size"
// @Success 200 {object} map[string][]entity.DayCompletion
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /analytics/trends [get]
func (s *Server) Trends(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("trends error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	days, err := s.analyticsService.Trends(ctx, uid, daysParam(r))
	if err != nil {
		s.writeServiceError(w, logger, "trends", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"days": days})
}

// @Summary Habit count per category
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]map[string]int
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /analytics/category-breakdown [get]
func (s *Server) CategoryBreakdown(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("category breakdown error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	counts, err := s.analyticsService.CategoryBreakdown(ctx, uid)
	if err != nil {
		s.writeServiceError(w, logger, "category breakdown", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"categories": counts})
}

// @Summary Mood histogram
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param days query int false "window size"
// @Success 200 {object} map[string][]entity.MoodCount
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /analytics/mood-stats [get]
func (s *Server) MoodStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("mood stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	moods, err := s.analyticsService.MoodStats(ctx, uid, daysParam(r))
	if err != nil {
		s.writeServiceError(w, logger, "mood stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"moods": moods})
}

// @Summary Habits by success rate
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param days query int false "window size"
// @Success 200 {object} map[string][]entity.HabitSuccess
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /analytics/best-habits [get]
func (s *Server) BestHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("best habits error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habits, err := s.analyticsService.BestHabits(ctx, uid, daysParam(r))
	if err != nil {
		s.writeServiceError(w, logger, "best habits", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"habits": habits})
}
