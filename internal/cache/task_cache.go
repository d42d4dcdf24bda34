// Package cache provides a Redis read-through cache in front of the task store.
package cache

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"task_tracker/internal/model"
	"task_tracker/internal/repository"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient creates a Redis client and checks the connection. TLS is
// only negotiated when useTLS is set.
func NewRedisClient(ctx context.Context, addr, password string, useTLS bool) (*redis.Client, error) {
	options := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	}
	if useTLS {
		options.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client := redis.NewClient(options)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}

// TaskKey returns the cache key for a task id.
func TaskKey(id int64) string {
	return fmt.Sprintf("task:%d", id)
}

// CachedTaskRepository decorates a TaskRepository with a Redis cache for
// single-task lookups. Lists always go to the underlying store. Cache
// failures are logged and never fail the request.
type CachedTaskRepository struct {
	next   repository.TaskRepository
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

var _ repository.TaskRepository = (*CachedTaskRepository)(nil)

// NewCachedTaskRepository wraps next with a read-through cache.
func NewCachedTaskRepository(next repository.TaskRepository, client *redis.Client, ttl time.Duration, log *zap.Logger) *CachedTaskRepository {
	return &CachedTaskRepository{next: next, client: client, ttl: ttl, log: log}
}

func (r *CachedTaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.next.Create(ctx, task); err != nil {
		return err
	}
	r.store(ctx, task)
	return nil
}

func (r *CachedTaskRepository) FindByID(ctx context.Context, id int64) (*model.Task, error) {
	key := TaskKey(id)
	data, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var task model.Task
		if err := json.Unmarshal(data, &task); err == nil {
			return &task, nil
		}
		r.log.Warn("dropping undecodable cache entry", zap.String("key", key))
		r.invalidate(ctx, id)
	case !errors.Is(err, redis.Nil):
		r.log.Warn("task cache read failed", zap.String("key", key), zap.Error(err))
	}

	task, err := r.next.FindByID(ctx, id)
	if err != nil || task == nil {
		return task, err
	}
	r.store(ctx, task)
	return task, nil
}

func (r *CachedTaskRepository) FindAll(ctx context.Context, filters model.TaskFilters) ([]model.Task, error) {
	return r.next.FindAll(ctx, filters)
}

func (r *CachedTaskRepository) Update(ctx context.Context, task *model.Task) error {
	r.invalidate(ctx, task.ID)
	if err := r.next.Update(ctx, task); err != nil {
		return err
	}
	r.store(ctx, task)
	return nil
}

func (r *CachedTaskRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := r.next.Delete(ctx, id)
	r.invalidate(ctx, id)
	return deleted, err
}

func (r *CachedTaskRepository) store(ctx context.Context, task *model.Task) {
	data, err := json.Marshal(task)
	if err != nil {
		r.log.Warn("failed to encode task for cache", zap.Int64("task_id", task.ID), zap.Error(err))
		return
	}
	if err := r.client.Set(ctx, TaskKey(task.ID), data, r.ttl).Err(); err != nil {
		r.log.Warn("task cache write failed", zap.Int64("task_id", task.ID), zap.Error(err))
	}
}

func (r *CachedTaskRepository) invalidate(ctx context.Context, id int64) {
	if err := r.client.Del(ctx, TaskKey(id)).Err(); err != nil {
		r.log.Warn("task cache invalidation failed", zap.Int64("task_id", id), zap.Error(err))
	}
}
