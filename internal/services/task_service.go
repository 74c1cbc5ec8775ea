package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/taskmanager-api/internal/models"
	"github.com/yukikurage/taskmanager-api/internal/repository"
	"github.com/yukikurage/taskmanager-api/internal/utils"
	"gorm.io/gorm"
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title     string
	Content   string
	Priority  int
	Completed bool
	UserID    uint64
}

// UpdateTaskInput represents input for updating a task
type UpdateTaskInput struct {
	Title     string
	Content   string
	Priority  int
	Completed bool
}

// ListTasks returns all tasks
func (s *TaskService) ListTasks(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns a task by ID
func (s *TaskService) GetTask(ctx context.Context, id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// CreateTask validates the owner and inserts a task with a slug derived from the title
func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*models.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}

	exists, err := s.taskRepo.UserExists(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	task := &models.Task{
		Title:     input.Title,
		Content:   input.Content,
		Priority:  input.Priority,
		Completed: input.Completed,
		Slug:      utils.Slugify(input.Title),
		UserID:    input.UserID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTaskSlugTaken
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// UpdateTask changes title, content, priority and completed. The slug keeps
// the value derived from the original title.
func (s *TaskService) UpdateTask(ctx context.Context, id uint64, input UpdateTaskInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return ErrTitleRequired
	}

	err := s.taskRepo.UpdateContent(ctx, id, repository.TaskContent{
		Title:     input.Title,
		Content:   input.Content,
		Priority:  input.Priority,
		Completed: input.Completed,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

// DeleteTask removes a task
func (s *TaskService) DeleteTask(ctx context.Context, id uint64) error {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
