package auth

import (
	"context"
	"os"
	"time"

	"staff-tracker/internal/shared/apperror"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"go.uber.org/zap"
)

// RoleAdmin is the only role this system knows. Everyone who holds the
// shared admin password is the same principal.
const RoleAdmin = "ADMIN"

const tokenTTL = 24 * time.Hour

var ErrInvalidCredentials = apperror.New(apperror.CodeUnauthorized, "Invalid password", 401)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, password string) (string, error)
	Verify(ctx context.Context, token string) (VerifyResponse, error)
}

type service struct {
	passwordHash []byte
	secret       []byte
	logger       *zap.Logger
}

// NewService reads ADMIN_PASSWORD_HASH (a bcrypt hash of the shared admin
// password) and JWT_SECRET from the environment.
func NewService() Service {
	return &service{
		passwordHash: []byte(os.Getenv("ADMIN_PASSWORD_HASH")),
		secret:       []byte(os.Getenv("JWT_SECRET")),
		logger:       zap.L().Named("auth.service"),
	}
}

func (s *service) Login(ctx context.Context, password string) (string, error) {
	if len(s.passwordHash) == 0 {
		s.logger.Error("ADMIN_PASSWORD_HASH is not configured")
		return "", apperror.ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		s.logger.Warn("login rejected")
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": RoleAdmin,
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		s.logger.Error("token signing failed", zap.Error(err))
		return "", apperror.ErrInternal
	}

	s.logger.Info("admin logged in")
	return signed, nil
}

func (s *service) Verify(ctx context.Context, tokenString string) (VerifyResponse, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperror.ErrUnauthorized
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return VerifyResponse{}, apperror.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return VerifyResponse{}, apperror.ErrUnauthorized
	}
	role, _ := claims["role"].(string)
	if role != RoleAdmin {
		return VerifyResponse{}, apperror.ErrForbidden
	}

	return VerifyResponse{Success: true, Role: role}, nil
}
