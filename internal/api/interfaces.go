package api

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/limbo/dailypulse/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

type QuoteProviderI interface {
	Quote(ctx context.Context) (string, error)
	Tips() []string
}

// TrackerRegistryI drops the in-memory and stored pulse data of deleted accounts.
type TrackerRegistryI interface {
	Delete(ctx context.Context, userID uuid.UUID) error
}
