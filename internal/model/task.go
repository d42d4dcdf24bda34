package model

import "time"

const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
)

// ValidTaskStatus reports whether status is one of the known task states.
func ValidTaskStatus(status string) bool {
	switch status {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

// Task is a unit of work owned by the user that created it
type Task struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	UserID    int64     `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateTaskRequest is used for creating a new task. The owner is never
// read from the payload.
type CreateTaskRequest struct {
	Title  string `json:"title" form:"title" validate:"required,max=255"`
	Status string `json:"status" form:"status" validate:"required,task_status"`
}

// UpdateTaskRequest holds a partial update; nil fields are left unchanged.
type UpdateTaskRequest struct {
	Title  *string `json:"title,omitempty" form:"title"`
	Status *string `json:"status,omitempty" form:"status"`
}

// TaskFilters contains the optional list filters. CreatedOn matches the
// calendar date (UTC) of created_at.
type TaskFilters struct {
	OwnerID   *int64
	Title     *string
	Status    *string
	CreatedOn *time.Time
}
