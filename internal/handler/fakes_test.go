package handler

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"task_tracker/internal/model"
	"task_tracker/internal/repository"
)

type memoryUserRepository struct {
	mu     sync.Mutex
	users  map[int64]*model.User
	nextID int64
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: map[int64]*model.User{}}
}

func (r *memoryUserRepository) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.PhoneNumber == user.PhoneNumber {
			return repository.ErrDuplicatePhone
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.DateJoined = time.Now().UTC()
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *memoryUserRepository) FindByPhone(ctx context.Context, phone string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.PhoneNumber == phone {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *memoryUserRepository) setActive(id int64, active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[id].IsActive = active
}

type memoryTaskRepository struct {
	mu     sync.Mutex
	tasks  map[int64]model.Task
	nextID int64
	now    func() time.Time
	err    error
}

func newMemoryTaskRepository() *memoryTaskRepository {
	return &memoryTaskRepository{tasks: map[int64]model.Task{}, now: func() time.Time { return time.Now().UTC() }}
}

func (r *memoryTaskRepository) Create(ctx context.Context, task *model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.nextID++
	task.ID = r.nextID
	task.CreatedAt = r.now()
	r.tasks[task.ID] = *task
	return nil
}

func (r *memoryTaskRepository) FindByID(ctx context.Context, id int64) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	t, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *memoryTaskRepository) FindAll(ctx context.Context, filters model.TaskFilters) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := []model.Task{}
	for _, t := range r.tasks {
		if filters.OwnerID != nil && t.UserID != *filters.OwnerID {
			continue
		}
		if filters.Title != nil && !strings.Contains(strings.ToLower(t.Title), strings.ToLower(*filters.Title)) {
			continue
		}
		if filters.Status != nil && t.Status != *filters.Status {
			continue
		}
		if filters.CreatedOn != nil && t.CreatedAt.UTC().Format(dateLayout) != filters.CreatedOn.Format(dateLayout) {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memoryTaskRepository) Update(ctx context.Context, task *model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.tasks[task.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Title = task.Title
	stored.Status = task.Status
	r.tasks[task.ID] = stored
	task.UserID = stored.UserID
	task.CreatedAt = stored.CreatedAt
	return nil
}

func (r *memoryTaskRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[id]; !ok {
		return false, nil
	}
	delete(r.tasks, id)
	return true, nil
}

func (r *memoryTaskRepository) get(id int64) (model.Task, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	return t, ok
}

func (r *memoryTaskRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tasks)
}
