package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/dailypulse/internal/error_values"
	"github.com/limbo/dailypulse/pkg/httputil"
)

type ctxKey string

const (
	requestIDKey ctxKey = "Request-ID"
	loggerKey    ctxKey = "Logger"
	uidKey       ctxKey = "User-ID"

	requestIDHeader = "X-Request-ID"
	authLookupLimit = 5 * time.Second
)

// RequestIDMiddleware keeps the caller's X-Request-ID or generates one, and
// echoes it back.
func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, reqID)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, reqID)))
	})
}

// SettingUpLoggerMiddleware puts a request scoped logger into the context and
// writes one access line per request.
func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default()
		if reqID, ok := r.Context().Value(requestIDKey).(string); ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		logger = logger.With(slog.String("from", r.RemoteAddr), slog.String("method", r.Method), slog.String("path", r.URL.Path))

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r.WithContext(context.WithValue(r.Context(), loggerKey, logger)))
		logger.Debug("request served",
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("took", time.Since(start)),
		)
	})
}

// RecoverMiddleware turns a handler panic into a 500 response.
func (s *Server) RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			GetLoggerFromCtx(r.Context()).Error("handler panic",
				slog.Any("panic", rec),
				slog.String("stack", string(debug.Stack())),
			)
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) LoggerExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		if userID, ok := r.Context().Value(uidKey).(uuid.UUID); ok {
			logger = logger.With(slog.String("uid", userID.String()))
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), loggerKey, logger)))
	})
}

type authError struct {
	status  int
	message string
	logMsg  string
	err     error
}

// AuthMiddleware admits requests carrying a live token of an existing user
// and stores the user's id in the context.
func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		uid, authErr := s.authenticate(r)
		if authErr != nil {
			if authErr.err != nil {
				logger.Error(authErr.logMsg, slog.String("error", authErr.err.Error()))
			} else {
				logger.Error(authErr.logMsg)
			}
			httputil.WriteErrorResponse(w, authErr.status, authErr.message, nil)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), uidKey, uid)))
	})
}

func (s *Server) authenticate(r *http.Request) (uuid.UUID, *authError) {
	tokenString, err := GetTokenFromHeader(r)
	if err != nil {
		return uuid.Nil, &authError{http.StatusUnauthorized, "authorization failed: invalid token", "auth failed: no bearer token", nil}
	}
	claims, err := s.jwtService.ParseToken(tokenString)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidToken) {
			return uuid.Nil, &authError{http.StatusUnauthorized, "authorization failed: invalid token", "auth failed: error parsing token", nil}
		}
		return uuid.Nil, &authError{http.StatusInternalServerError, "error parsing token", "auth failed: internal error while parsing token", err}
	}
	now := time.Now()
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(now) ||
		(claims.NotBefore != nil && claims.NotBefore.Time.After(now)) {
		return uuid.Nil, &authError{http.StatusUnauthorized, "token expired or not ready", "tried to auth with expired or not ready token", nil}
	}
	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, &authError{http.StatusUnauthorized, "invalid token payload", "invalid uid in token claims", nil}
	}
	// the account may have been deleted after the token was issued
	ctx, cancel := context.WithTimeout(r.Context(), authLookupLimit)
	defer cancel()
	if _, err = s.userService.GetByID(ctx, uid); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return uuid.Nil, &authError{http.StatusNotFound, "auth failed: user not found", "user doesn't exist", nil}
		}
		return uuid.Nil, &authError{http.StatusInternalServerError, "internal error while searching for user", "error while searching for user", err}
	}
	return uid, nil
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// GetTokenFromHeader extracts the token of an "Authorization: Bearer <token>"
// header. The scheme is matched case-insensitively.
func GetTokenFromHeader(r *http.Request) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", errorvalues.ErrInvalidToken
	}
	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsRune(token, ' ') {
		return "", errorvalues.ErrInvalidToken
	}
	return token, nil
}

func GetUIDFromContext(r *http.Request) (uuid.UUID, error) {
	uid, ok := r.Context().Value(uidKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("uid invalid or doesn't exists")
	}
	return uid, nil
}
