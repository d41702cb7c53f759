package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/muhammadheryan/booking-capacity/cmd/config"
	"github.com/muhammadheryan/booking-capacity/constant"
	redisrepo "github.com/muhammadheryan/booking-capacity/repository/redis"
	"github.com/muhammadheryan/booking-capacity/utils/errors"
	"github.com/muhammadheryan/booking-capacity/utils/logger"
	"go.uber.org/zap"
)

const RoleAdmin = "admin"

// AdminClaims are the claims of the admin tokens issued by the platform.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type AuthApp interface {
	// ValidateToken returns the admin id carried by a valid, unrevoked admin
	// token.
	ValidateToken(ctx context.Context, tokenString string) (uint64, error)
	// RevokeToken rejects the token for the rest of its lifetime.
	RevokeToken(ctx context.Context, tokenString string) error
}

type authAppImpl struct {
	config    *config.Config
	redisRepo redisrepo.Repository
}

func NewAuthApp(config *config.Config, redisRepo redisrepo.Repository) AuthApp {
	return &authAppImpl{
		config:    config,
		redisRepo: redisRepo,
	}
}

func (s *authAppImpl) parse(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("token missing jti")
	}
	return claims, nil
}

func (s *authAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return 0, err
	}
	if claims.Role != RoleAdmin {
		return 0, fmt.Errorf("role %q is not allowed", claims.Role)
	}
	adminID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid admin id in token")
	}

	revoked, err := s.redisRepo.IsSessionRevoked(ctx, claims.ID)
	if err != nil {
		logger.Error("[ValidateToken] check revocation", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	if revoked {
		return 0, fmt.Errorf("token revoked")
	}
	return adminID, nil
}

func (s *authAppImpl) RevokeToken(ctx context.Context, tokenString string) error {
	claims, err := s.parse(tokenString)
	if err != nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}

	ttl := time.Minute
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}
	if err := s.redisRepo.RevokeSession(ctx, claims.ID, ttl); err != nil {
		logger.Error("[RevokeToken] revoke session", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
