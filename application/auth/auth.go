package auth

import (
	"context"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wareflow/backoffice/cmd/config"
	redisrepo "github.com/wareflow/backoffice/repository/redis"
)

// AuthApp validates operator tokens issued by the identity service. Login
// and registration live outside this system.
type AuthApp interface {
	ValidateToken(ctx context.Context, tokenString string) (uint64, error)
}

type authAppImpl struct {
	config    *config.Config
	redisRepo redisrepo.Repository
}

func NewAuthApp(config *config.Config, redisRepo redisrepo.Repository) AuthApp {
	return &authAppImpl{config: config, redisRepo: redisRepo}
}

func (s *authAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, error) {
	// Parse token
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return 0, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid claims")
	}

	workerIDStr := claims.Subject
	workerID, err := strconv.ParseUint(workerIDStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid worker id in token")
	}

	jti := claims.ID
	if jti == "" {
		return 0, fmt.Errorf("token missing jti")
	}

	// Check Redis session key
	redisWorkerID, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return 0, fmt.Errorf("invalid or expired session")
	}

	if redisWorkerID != workerID {
		return 0, fmt.Errorf("token does not match worker session")
	}

	return workerID, nil
}
