package service

import (
	"context"
	"errors"
	"fmt"

	"task_tracker/internal/model"
	"task_tracker/internal/repository"
	"task_tracker/internal/utils"

	"go.uber.org/zap"
)

const missingCredentialsMessage = `Must include "phone_number" and "password".`

// TokenPair is the result of a successful credential exchange
type TokenPair struct {
	Access   string
	Refresh  string
	UserID   int64
	Username string
	UserType string
}

// AuthService provides authentication related services
type AuthService interface {
	ObtainToken(ctx context.Context, phoneNumber, password string) (*TokenPair, error)
	Authenticate(ctx context.Context, accessToken string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
	log      *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
		log:      log,
	}
}

// ObtainToken exchanges a phone number and password for a token pair. Unknown
// phone, inactive account and wrong password are indistinguishable.
func (s *authService) ObtainToken(ctx context.Context, phoneNumber, password string) (*TokenPair, error) {
	if phoneNumber == "" || password == "" {
		return nil, NewValidationError(missingCredentialsMessage)
	}

	user, err := s.userRepo.FindByPhone(ctx, phoneNumber)
	if err != nil {
		return nil, fmt.Errorf("error finding user by phone: %w", err)
	}
	if user == nil || !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	access, refresh, err := s.jwtUtil.GenerateTokenPair(user.ID, int(user.UserType))
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	s.log.Info("issued token pair", zap.Int64("user_id", user.ID), zap.String("user_type", user.UserType.String()))
	return &TokenPair{
		Access:   access,
		Refresh:  refresh,
		UserID:   user.ID,
		Username: user.Username,
		UserType: user.UserType.String(),
	}, nil
}

// Authenticate resolves an access token to the active user it was issued for.
func (s *authService) Authenticate(ctx context.Context, accessToken string) (*model.User, error) {
	if accessToken == "" {
		return nil, ErrUnauthenticated
	}

	claims, err := s.jwtUtil.ValidateAccessToken(accessToken)
	if err != nil {
		s.log.Debug("rejected token", zap.Error(err))
		return nil, ErrUnauthenticated
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load token user: %w", err)
	}
	if user == nil || !user.IsActive {
		return nil, ErrUnauthenticated
	}
	return user, nil
}

// IsAuthError reports whether err should be answered with 401.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthenticated) || errors.Is(err, ErrInvalidCredentials)
}
