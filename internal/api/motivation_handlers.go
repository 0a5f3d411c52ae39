package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/limbo/dailypulse/pkg/httputil"
)

// Quote never fails: provider errors leave the quote empty.
// @Summary Random motivational quote
// @Tags motivation
// @Produce json
// @Success 200 {object} map[string]string
// @Router /motivation/quote [get]
func (s *Server) Quote(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()
	quote, err := s.quotes.Quote(ctx)
	if err != nil {
		logger.Warn("quote unavailable", slog.String("error", err.Error()))
		quote = ""
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"quote": quote})
}

// @Summary Habit building tips
// @Tags motivation
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /motivation/tips [get]
func (s *Server) Tips(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"tips": s.quotes.Tips()})
}
