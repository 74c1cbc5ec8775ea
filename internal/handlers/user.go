package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskmanager-api/internal/constants"
	"github.com/yukikurage/taskmanager-api/internal/dto"
	apierrors "github.com/yukikurage/taskmanager-api/internal/errors"
	"github.com/yukikurage/taskmanager-api/internal/services"
)

// UserHandler serves the /users routes
type UserHandler struct {
	userService *services.UserService
	log         *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *services.UserService, log *slog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		log:         log,
	}
}

// ListUsers returns every user
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTOs(users))
}

// GetUser returns a single user
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c, constants.MsgUserNotFound)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// CreateUser registers a user and acknowledges without echoing it
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, err)
		return
	}

	_, err := h.userService.CreateUser(c.Request.Context(), services.CreateUserInput{
		Username:  req.Username,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Age:       req.Age,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAck(http.StatusCreated, constants.MsgCreated))
}

// UpdateUser changes a user's names and age
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, constants.MsgUserNotFound)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, err)
		return
	}

	err := h.userService.UpdateUser(c.Request.Context(), id, services.UpdateUserInput{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Age:       req.Age,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAck(http.StatusOK, constants.MsgUserUpdated))
}

// DeleteUser removes a user together with its tasks
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, constants.MsgUserNotFound)
	if !ok {
		return
	}

	purged, err := h.userService.DeleteUser(c.Request.Context(), id)
	if err != nil {
		if purged > 0 {
			h.log.Warn("orphan tasks removed for missing user",
				"user_id", id,
				"tasks_deleted", purged,
				"request_id", c.GetString(constants.ContextKeyRequestID),
			)
		}
		respondUserError(c, err)
		return
	}

	h.log.Info("user deleted",
		"user_id", id,
		"tasks_deleted", purged,
		"request_id", c.GetString(constants.ContextKeyRequestID),
	)

	c.JSON(http.StatusOK, dto.NewAck(http.StatusOK, constants.MsgUserDeleted))
}

// ListUserTasks returns the tasks owned by a user
func (h *UserHandler) ListUserTasks(c *gin.Context) {
	id, ok := pathID(c, constants.MsgNoTasksForUser)
	if !ok {
		return
	}

	tasks, err := h.userService.ListUserTasks(c.Request.Context(), id)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, constants.MsgUserNotFound)
	case errors.Is(err, services.ErrNoTasksForUser):
		apierrors.NotFound(c, constants.MsgNoTasksForUser)
	case errors.Is(err, services.ErrUsernameTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidUsername):
		apierrors.BadRequest(c, err.Error())
	default:
		internalError(c, err)
	}
}
