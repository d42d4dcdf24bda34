package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"task_tracker/internal/model"
	"task_tracker/internal/utils"

	"go.uber.org/zap"
)

const (
	testSecret     = "this-is-a-test-secret-with-32-bytes!"
	testAccessTTL  = 5 * time.Minute
	testRefreshTTL = 24 * time.Hour
)

// =============================================================================
// Mock UserRepository
// =============================================================================

type mockUserRepository struct {
	createFunc      func(ctx context.Context, user *model.User) error
	findByPhoneFunc func(ctx context.Context, phone string) (*model.User, error)
	findByIDFunc    func(ctx context.Context, id int64) (*model.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return errors.New("not implemented")
}

func (m *mockUserRepository) FindByPhone(ctx context.Context, phone string) (*model.User, error) {
	if m.findByPhoneFunc != nil {
		return m.findByPhoneFunc(ctx, phone)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

// =============================================================================
// Mock TaskRepository
// =============================================================================

type mockTaskRepository struct {
	createFunc   func(ctx context.Context, task *model.Task) error
	findByIDFunc func(ctx context.Context, id int64) (*model.Task, error)
	findAllFunc  func(ctx context.Context, filters model.TaskFilters) ([]model.Task, error)
	updateFunc   func(ctx context.Context, task *model.Task) error
	deleteFunc   func(ctx context.Context, id int64) (bool, error)
}

func (m *mockTaskRepository) Create(ctx context.Context, task *model.Task) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, task)
	}
	return errors.New("not implemented")
}

func (m *mockTaskRepository) FindByID(ctx context.Context, id int64) (*model.Task, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTaskRepository) FindAll(ctx context.Context, filters model.TaskFilters) ([]model.Task, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, filters)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTaskRepository) Update(ctx context.Context, task *model.Task) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, task)
	}
	return errors.New("not implemented")
}

func (m *mockTaskRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return false, errors.New("not implemented")
}

// =============================================================================
// Test Helpers
// =============================================================================

func newTestJWTUtil() *utils.JWTUtil {
	return utils.NewJWTUtil(testSecret, testAccessTTL, testRefreshTTL)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	return hash
}

func instructor() *model.User {
	return &model.User{ID: 1, Username: "instructor", PhoneNumber: "+1234567890", UserType: model.UserTypeInstructor, IsActive: true}
}

func client() *model.User {
	return &model.User{ID: 2, Username: "client", PhoneNumber: "+0987654321", UserType: model.UserTypeClient, IsActive: true}
}

func otherClient() *model.User {
	return &model.User{ID: 3, Username: "other", PhoneNumber: "+1122334455", UserType: model.UserTypeClient, IsActive: true}
}

func nopLogger() *zap.Logger { return zap.NewNop() }

func strPtr(s string) *string { return &s }
