package service

import "task_tracker/internal/model"

// IsInstructor reports whether user is an active Instructor. Gates task
// creation and deletion.
func IsInstructor(user *model.User) bool {
	return user != nil && user.IsActive && user.UserType == model.UserTypeInstructor
}

// CanAccessTask reports whether user may retrieve or update task. Clients
// only reach their own tasks; every other role passes.
func CanAccessTask(user *model.User, task *model.Task) bool {
	if user == nil || task == nil {
		return false
	}
	if user.UserType == model.UserTypeClient && task.UserID != user.ID {
		return false
	}
	return true
}
