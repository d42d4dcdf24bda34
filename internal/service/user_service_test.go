package service

import (
	"context"
	"errors"
	"testing"

	"task_tracker/internal/model"
	"task_tracker/internal/repository"
	"task_tracker/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUserInput() model.CreateUserInput {
	return model.CreateUserInput{
		Username:    "instructor",
		Email:       "Instructor@EXAMPLE.com",
		PhoneNumber: "+1234567890",
		Password:    "testpass123",
	}
}

func TestUserService_CreateUser(t *testing.T) {
	var stored *model.User
	repo := &mockUserRepository{
		createFunc: func(ctx context.Context, user *model.User) error {
			user.ID = 10
			stored = user
			return nil
		},
	}
	svc := NewUserService(repo, nopLogger())

	user, err := svc.CreateUser(context.Background(), validUserInput())

	require.NoError(t, err)
	assert.Equal(t, int64(10), user.ID)
	assert.Same(t, stored, user)
	assert.Equal(t, "Instructor@example.com", user.Email)
	assert.Equal(t, model.UserTypeClient, user.UserType)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsSuperuser)
	assert.NotEqual(t, "testpass123", user.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("testpass123", user.PasswordHash))
}

func TestUserService_CreateSuperuser(t *testing.T) {
	repo := &mockUserRepository{
		createFunc: func(ctx context.Context, user *model.User) error { return nil },
	}
	svc := NewUserService(repo, nopLogger())

	user, err := svc.CreateSuperuser(context.Background(), validUserInput())

	require.NoError(t, err)
	assert.Equal(t, model.UserTypeInstructor, user.UserType)
	assert.True(t, user.IsStaff)
	assert.True(t, user.IsSuperuser)
	assert.True(t, user.IsActive)
}

func TestUserService_CreateUser_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *model.CreateUserInput)
		field  string
	}{
		{"missing username", func(in *model.CreateUserInput) { in.Username = "" }, "username"},
		{"missing email", func(in *model.CreateUserInput) { in.Email = "" }, "email"},
		{"bad email", func(in *model.CreateUserInput) { in.Email = "nope" }, "email"},
		{"missing phone", func(in *model.CreateUserInput) { in.PhoneNumber = "" }, "phone_number"},
		{"bad phone", func(in *model.CreateUserInput) { in.PhoneNumber = "12-34" }, "phone_number"},
		{"short phone", func(in *model.CreateUserInput) { in.PhoneNumber = "+12345" }, "phone_number"},
		{"missing password", func(in *model.CreateUserInput) { in.Password = "" }, "password"},
		{"unknown user type", func(in *model.CreateUserInput) { in.UserType = 7 }, "user_type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepository{
				createFunc: func(ctx context.Context, user *model.User) error {
					t.Fatal("invalid input must not reach the repository")
					return nil
				},
			}
			svc := NewUserService(repo, nopLogger())
			in := validUserInput()
			tt.mutate(&in)

			_, err := svc.CreateUser(context.Background(), in)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestUserService_CreateUser_DuplicatePhone(t *testing.T) {
	repo := &mockUserRepository{
		createFunc: func(ctx context.Context, user *model.User) error {
			return repository.ErrDuplicatePhone
		},
	}
	svc := NewUserService(repo, nopLogger())

	_, err := svc.CreateUser(context.Background(), validUserInput())

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestValidPhoneNumber(t *testing.T) {
	assert.True(t, ValidPhoneNumber("+1234567890"))
	assert.True(t, ValidPhoneNumber("123456789"))
	assert.True(t, ValidPhoneNumber("+1123456789012345"))
	assert.False(t, ValidPhoneNumber("12345678"))
	assert.False(t, ValidPhoneNumber("+12 3456 7890"))
	assert.False(t, ValidPhoneNumber("phone"))
}
