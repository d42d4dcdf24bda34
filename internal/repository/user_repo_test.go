package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"task_tracker/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumnNames = []string{
	"id", "username", "email", "phone_number", "password_hash", "user_type",
	"bio", "is_active", "is_staff", "is_superuser", "date_joined",
}

func TestUserRepository_FindByPhone(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	joined := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + userColumns + ` FROM users WHERE phone_number = $1`)).
		WithArgs("+1234567890").
		WillReturnRows(pgxmock.NewRows(userColumnNames).AddRow(
			int64(1), "instructor", "instructor@example.com", "+1234567890", "hash", 1,
			(*string)(nil), true, false, false, joined,
		))

	user, err := repo.FindByPhone(context.Background(), "+1234567890")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, model.UserTypeInstructor, user.UserType)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.Nil(t, user.Bio)
	assert.True(t, user.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByPhone_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`FROM users WHERE phone_number`).
		WithArgs("+1000000000").
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.FindByPhone(context.Background(), "+1000000000")

	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_FindByID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	bio := "teaches go"

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + userColumns + ` FROM users WHERE id = $1`)).
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows(userColumnNames).AddRow(
			int64(2), "client", "client@example.com", "+0987654321", "hash", 2,
			&bio, true, false, false, time.Now(),
		))

	user, err := repo.FindByID(context.Background(), 2)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, model.UserTypeClient, user.UserType)
	require.NotNil(t, user.Bio)
	assert.Equal(t, "teaches go", *user.Bio)
}

func TestUserRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	joined := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("client", "client@example.com", "+0987654321", "hash", 2,
			pgxmock.AnyArg(), true, false, false).
		WillReturnRows(pgxmock.NewRows([]string{"id", "date_joined"}).AddRow(int64(11), joined))

	user := &model.User{
		Username:     "client",
		Email:        "client@example.com",
		PhoneNumber:  "+0987654321",
		PasswordHash: "hash",
		UserType:     model.UserTypeClient,
		IsActive:     true,
	}
	err := repo.Create(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, int64(11), user.ID)
	assert.Equal(t, joined, user.DateJoined)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicatePhone(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_phone_number_key"})

	err := repo.Create(context.Background(), &model.User{
		Username:    "dup",
		Email:       "dup@example.com",
		PhoneNumber: "+1234567890",
		UserType:    model.UserTypeClient,
	})

	assert.ErrorIs(t, err, ErrDuplicatePhone)
}
