package api

import (
	"context"
	"net/http"

	"github.com/limbo/dailypulse/internal/service"
	"github.com/limbo/dailypulse/pkg/entity"
	"github.com/limbo/dailypulse/pkg/httputil"
)

type ProgressRequest struct {
	HabitID string `json:"habit_id"`
	Delta   int    `json:"delta"`
	Toggle  bool   `json:"toggle"`
	Date    string `json:"date"`
}

type MoodRequest struct {
	Mood entity.Mood `json:"mood"`
	Date string      `json:"date"`
}

type LogsRangeResponse struct {
	StartDate string            `json:"start_date"`
	EndDate   string            `json:"end_date"`
	Logs      []entity.DailyLog `json:"logs"`
}

// @Summary Change progress of a habit
// @Tags logs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProgressRequest true "progress change"
// @Success 200 {object} entity.DailyLog
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /logs/progress [post]
func (s *Server) LogProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("log progress error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req ProgressRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("log progress error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	log, err := s.logsService.LogProgress(ctx, uid, &service.ProgressRequest{
		HabitID: req.HabitID,
		Delta:   req.Delta,
		Toggle:  req.Toggle,
		Date:    req.Date,
	})
	if err != nil {
		s.writeServiceError(w, logger, "log progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, log)
	logger.Info("progress logged")
}

// @Summary Set mood of a day
// @Tags logs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MoodRequest true "mood"
// @Success 200 {object} entity.DailyLog
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /moods [post]
func (s *Server) SetMood(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("set mood error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req MoodRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("set mood error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	log, err := s.logsService.SetMood(ctx, uid, &service.MoodRequest{Mood: req.Mood, Date: req.Date})
	if err != nil {
		s.writeServiceError(w, logger, "set mood", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, log)
	logger.Info("mood set")
}

// @Summary Today's log
// @Tags logs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} entity.DailyLog
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /logs/today [get]
func (s *Server) TodayLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("today log error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	log, err := s.logsService.Today(ctx, uid)
	if err != nil {
		s.writeServiceError(w, logger, "today log", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, log)
}

// @Summary Log of a day
// @Tags logs
// @Produce json
// @Security BearerAuth
// @Param date path string true "YYYY-MM-DD"
// @Success 200 {object} entity.DailyLog
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /logs/date/{date} [get]
func (s *Server) LogByDate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("log by date error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	log, err := s.logsService.ByDate(ctx, uid, r.PathValue("date"))
	if err != nil {
		s.writeServiceError(w, logger, "log by date", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, log)
}

// @Summary Logs between two days
// @Tags logs
// @Produce json
// @Security BearerAuth
// @Param start_date query string true "YYYY-MM-DD"
// @Param end_date query string true "YYYY-MM-DD"
// @Success 200 {object} LogsRangeResponse
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /logs/range [get]
func (s *Server) LogsRange(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("logs range error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	start, end := r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date")
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	logs, err := s.logsService.Range(ctx, uid, start, end)
	if err != nil {
		s.writeServiceError(w, logger, "logs range", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, LogsRangeResponse{
		StartDate: start,
		EndDate:   end,
		Logs:      logs,
	})
}
