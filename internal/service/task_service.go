package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"task_tracker/internal/model"
	"task_tracker/internal/repository"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// TaskService defines operations for tasks. Every method receives the
// authenticated caller and applies the role and ownership rules itself.
type TaskService interface {
	ListTasks(ctx context.Context, caller *model.User, filters model.TaskFilters) ([]model.Task, error)
	CreateTask(ctx context.Context, caller *model.User, req model.CreateTaskRequest) (*model.Task, error)
	GetTask(ctx context.Context, caller *model.User, taskID int64) (*model.Task, error)
	UpdateTask(ctx context.Context, caller *model.User, taskID int64, req model.UpdateTaskRequest) (*model.Task, error)
	DeleteTask(ctx context.Context, caller *model.User, taskID int64) error
}

type taskService struct {
	repo     repository.TaskRepository
	validate *validator.Validate
	log      *zap.Logger
}

// NewTaskService creates a new TaskService
func NewTaskService(repo repository.TaskRepository, log *zap.Logger) TaskService {
	return &taskService{repo: repo, validate: newValidator(), log: log}
}

// ListTasks returns the tasks visible to caller. Clients are always scoped
// to their own tasks, whatever the filters say.
func (s *taskService) ListTasks(ctx context.Context, caller *model.User, filters model.TaskFilters) ([]model.Task, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}
	filters.OwnerID = nil
	if caller.UserType == model.UserTypeClient {
		ownerID := caller.ID
		filters.OwnerID = &ownerID
	}

	tasks, err := s.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *taskService) CreateTask(ctx context.Context, caller *model.User, req model.CreateTaskRequest) (*model.Task, error) {
	if !IsInstructor(caller) {
		return nil, ErrForbidden
	}

	req.Title = strings.TrimSpace(req.Title)
	if err := s.validate.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	task := &model.Task{
		Title:  req.Title,
		Status: req.Status,
		UserID: caller.ID,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task in repo: %w", err)
	}

	s.log.Info("task created", zap.Int64("task_id", task.ID), zap.Int64("user_id", caller.ID))
	return task, nil
}

// GetTask checks existence before ownership, so a foreign task yields
// ErrForbidden rather than ErrTaskNotFound.
func (s *taskService) GetTask(ctx context.Context, caller *model.User, taskID int64) (*model.Task, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}

	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task by id: %w", err)
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	if !CanAccessTask(caller, task) {
		return nil, ErrForbidden
	}
	return task, nil
}

// UpdateTask merges the provided fields into the stored task. Owner and
// created_at are never changed.
func (s *taskService) UpdateTask(ctx context.Context, caller *model.User, taskID int64, req model.UpdateTaskRequest) (*model.Task, error) {
	task, err := s.GetTask(ctx, caller, taskID)
	if err != nil {
		return nil, err
	}

	title, status := task.Title, task.Status
	if req.Title != nil {
		title = strings.TrimSpace(*req.Title)
		if verr := validateVar(s.validate, "title", title, "required,max=255"); verr != nil {
			return nil, verr
		}
	}
	if req.Status != nil {
		status = *req.Status
		if verr := validateVar(s.validate, "status", status, "required,task_status"); verr != nil {
			return nil, verr
		}
	}
	task.Title, task.Status = title, status

	if err := s.repo.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task in repo: %w", err)
	}

	s.log.Info("task updated", zap.Int64("task_id", task.ID), zap.Int64("user_id", caller.ID))
	return task, nil
}

// DeleteTask removes a task. Any Instructor may delete any task.
func (s *taskService) DeleteTask(ctx context.Context, caller *model.User, taskID int64) error {
	if !IsInstructor(caller) {
		return ErrForbidden
	}

	deleted, err := s.repo.Delete(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task in repo: %w", err)
	}
	if !deleted {
		return ErrTaskNotFound
	}

	s.log.Info("task deleted", zap.Int64("task_id", taskID), zap.Int64("user_id", caller.ID))
	return nil
}
