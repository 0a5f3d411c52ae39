package api

import (
	"context"
	"net/http"

	"github.com/limbo/dailypulse/internal/service"
	"github.com/limbo/dailypulse/pkg/entity"
	"github.com/limbo/dailypulse/pkg/httputil"
)

type HabitRequest struct {
	Name     string           `json:"name"`
	Icon     string           `json:"icon"`
	Category entity.Category  `json:"category"`
	Kind     entity.HabitKind `json:"type"`
	Target   int              `json:"target"`
	Color    string           `json:"color"`
}

func (hr *HabitRequest) toService() *service.HabitRequest {
	return &service.HabitRequest{
		Name:     hr.Name,
		Icon:     hr.Icon,
		Category: hr.Category,
		Kind:     hr.Kind,
		Target:   hr.Target,
		Color:    hr.Color,
	}
}

type GetHabitsResponse struct {
	UserID string         `json:"uid"`
	Habits []entity.Habit `json:"habits"`
}

// @Summary List habits
// @Tags habits
// @Produce json
// @Security BearerAuth
// @Success 200 {object} GetHabitsResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /habits [get]
func (s *Server) ListHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get habits error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habits, err := s.habitsService.List(ctx, uid)
	if err != nil {
		s.writeServiceError(w, logger, "get habits", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetHabitsResponse{
		UserID: uid.String(),
		Habits: habits,
	})
	logger.Info("habits provided")
}

// @Summary Get habit
// @Tags habits
// @Produce json
// @Security BearerAuth
// @Param id path string true "habit id"
// @Success 200 {object} entity.Habit
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /habits/{id} [get]
func (s *Server) GetHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get habit error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habit, err := s.habitsService.Get(ctx, uid, r.PathValue("id"))
	if err != nil {
		s.writeServiceError(w, logger, "get habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
}

// @Summary Create habit
// @Tags habits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body HabitRequest true "habit"
// @Success 201 {object} entity.Habit
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /habits [post]
func (s *Server) CreateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create habit error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req HabitRequest
	err = httputil.DecodeJSON(r, &req)
	if err != nil {
		logger.Error("create habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habit, err := s.habitsService.Create(ctx, uid, req.toService())
	if err != nil {
		s.writeServiceError(w, logger, "create habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, habit)
	logger.Info("habit created")
}

// @Summary Edit habit
// @Tags habits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "habit id"
// @Param request body HabitRequest true "habit"
// @Success 200 {object} entity.Habit
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /habits/{id} [put]
func (s *Server) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update habit error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req HabitRequest
	err = httputil.DecodeJSON(r, &req)
	if err != nil {
		logger.Error("update habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habit, err := s.habitsService.Update(ctx, uid, r.PathValue("id"), req.toService())
	if err != nil {
		s.writeServiceError(w, logger, "update habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
	logger.Info("habit updated")
}

// @Summary Delete habit, past progress is kept
// @Tags habits
// @Produce json
// @Security BearerAuth
// @Param id path string true "habit id"
// @Success 204
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /habits/{id} [delete]
func (s *Server) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("habit deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err = s.habitsService.Delete(ctx, uid, r.PathValue("id"))
	if err != nil {
		s.writeServiceError(w, logger, "habit deletion", err)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("habit deleted")
}
