package service

import (
	"context"
	"errors"
	"fmt"

	"task_tracker/internal/model"
	"task_tracker/internal/repository"
	"task_tracker/internal/utils"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// UserService manages user accounts. There is no public registration
// endpoint; accounts are created from the command line.
type UserService interface {
	CreateUser(ctx context.Context, in model.CreateUserInput) (*model.User, error)
	CreateSuperuser(ctx context.Context, in model.CreateUserInput) (*model.User, error)
}

type userService struct {
	repo     repository.UserRepository
	validate *validator.Validate
	log      *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(repo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{repo: repo, validate: newValidator(), log: log}
}

// CreateUser validates the input, hashes the password and stores a regular
// active account. A zero UserType defaults to Client.
func (s *userService) CreateUser(ctx context.Context, in model.CreateUserInput) (*model.User, error) {
	if in.UserType == 0 {
		in.UserType = model.UserTypeClient
	}
	return s.create(ctx, in)
}

// CreateSuperuser stores an active staff superuser, defaulting to Instructor.
func (s *userService) CreateSuperuser(ctx context.Context, in model.CreateUserInput) (*model.User, error) {
	if in.UserType == 0 {
		in.UserType = model.UserTypeInstructor
	}
	in.IsStaff = true
	in.IsSuperuser = true
	return s.create(ctx, in)
}

func (s *userService) create(ctx context.Context, in model.CreateUserInput) (*model.User, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, toValidationError(err)
	}
	if !in.UserType.Valid() {
		return nil, &ValidationError{
			Message: "invalid input",
			Fields:  map[string]string{"user_type": "Must be 1 (Instructor) or 2 (Client)."},
		}
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     in.Username,
		Email:        model.NormalizeEmail(in.Email),
		PhoneNumber:  in.PhoneNumber,
		PasswordHash: hash,
		UserType:     in.UserType,
		Bio:          in.Bio,
		IsActive:     true,
		IsStaff:      in.IsStaff,
		IsSuperuser:  in.IsSuperuser,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicatePhone) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	s.log.Info("user created",
		zap.Int64("user_id", user.ID),
		zap.String("user_type", user.UserType.String()),
		zap.Bool("superuser", user.IsSuperuser),
	)
	return user, nil
}
