package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskmanager-api/internal/constants"
	"github.com/yukikurage/taskmanager-api/internal/dto"
	apierrors "github.com/yukikurage/taskmanager-api/internal/errors"
	"github.com/yukikurage/taskmanager-api/internal/services"
)

// TaskHandler serves the /tasks routes
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns every task
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.ListTasks(c.Request.Context())
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// GetTask returns a specific task by ID
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := pathID(c, constants.MsgTaskNotFound)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), id)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// CreateTask creates a task owned by the user named in the user_id query parameter
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query(constants.QueryUserID), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+constants.QueryUserID)
		return
	}

	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, err)
		return
	}

	if userID < 0 {
		apierrors.NotFound(c, constants.MsgUserNotFound)
		return
	}

	_, err = h.taskService.CreateTask(c.Request.Context(), services.CreateTaskInput{
		Title:     req.Title,
		Content:   req.Content,
		Priority:  req.Priority,
		Completed: req.Completed,
		UserID:    uint64(userID),
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAck(http.StatusCreated, constants.MsgCreated))
}

// UpdateTask overwrites a task's title, content, priority and completed flag
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := pathID(c, constants.MsgTaskNotFound)
	if !ok {
		return
	}

	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, err)
		return
	}

	err := h.taskService.UpdateTask(c.Request.Context(), id, services.UpdateTaskInput{
		Title:     req.Title,
		Content:   req.Content,
		Priority:  req.Priority,
		Completed: req.Completed,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAck(http.StatusOK, constants.MsgTaskUpdated))
}

// DeleteTask removes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := pathID(c, constants.MsgTaskNotFound)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), id); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAck(http.StatusOK, constants.MsgTaskDeleted))
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, constants.MsgTaskNotFound)
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, constants.MsgUserNotFound)
	case errors.Is(err, services.ErrTaskSlugTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrTitleRequired):
		apierrors.BadRequest(c, err.Error())
	default:
		internalError(c, err)
	}
}
