package handler

import (
	"net/http"
	"strconv"
	"time"

	"task_tracker/internal/middleware"
	"task_tracker/internal/model"
	"task_tracker/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// TaskHandler handles task-related requests
type TaskHandler struct {
	service service.TaskService
	log     *zap.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(s service.TaskService, log *zap.Logger) *TaskHandler {
	return &TaskHandler{service: s, log: log}
}

// ListTasks returns the caller's visible tasks, narrowed by the optional
// title, status and created_at query parameters.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	var filters model.TaskFilters
	if title := c.Query("title"); title != "" {
		filters.Title = &title
	}
	if status := c.Query("status"); status != "" {
		filters.Status = &status
	}
	if createdAt := c.Query("created_at"); createdAt != "" {
		day, err := time.ParseInLocation(dateLayout, createdAt, time.UTC)
		if err != nil {
			respondError(c, h.log, &service.ValidationError{
				Message: "invalid filter",
				Fields:  map[string]string{"created_at": "Enter a valid date in YYYY-MM-DD format."},
			})
			return
		}
		filters.CreatedOn = &day
	}

	tasks, err := h.service.ListTasks(c.Request.Context(), middleware.CurrentUser(c), filters)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req model.CreateTaskRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, h.log, err)
		return
	}

	task, err := h.service.CreateTask(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	task, err := h.service.GetTask(c.Request.Context(), middleware.CurrentUser(c), taskID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// UpdateTask serves both PUT and PATCH. Fields absent from the body keep
// their stored values.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	var req model.UpdateTaskRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, h.log, err)
		return
	}

	task, err := h.service.UpdateTask(c.Request.Context(), middleware.CurrentUser(c), taskID, req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteTask(c.Request.Context(), middleware.CurrentUser(c), taskID); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseTaskID answers 404 for ids that are not positive integers, the same
// as an unknown task.
func parseTaskID(c *gin.Context) (int64, bool) {
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || taskID <= 0 {
		c.Status(http.StatusNotFound)
		return 0, false
	}
	return taskID, true
}

// RegisterTaskRoutes registers task routes. Creation and deletion are
// rejected for non-Instructors before the body is read.
func (h *TaskHandler) RegisterTaskRoutes(rg *gin.RouterGroup, authMW, instructorMW gin.HandlerFunc) {
	tasks := rg.Group("/tasks")
	tasks.Use(authMW)
	{
		tasks.GET("/", h.ListTasks)
		tasks.POST("/", instructorMW, h.CreateTask)
		tasks.GET("/:id/", h.GetTask)
		tasks.PUT("/:id/", h.UpdateTask)
		tasks.PATCH("/:id/", h.UpdateTask)
		tasks.DELETE("/:id/", instructorMW, h.DeleteTask)
	}
}
