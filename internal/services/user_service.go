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

// UserService handles user business logic
type UserService struct {
	userRepo repository.UserRepository
	// keepPurgeOnMissing commits task deletion even when the user row is absent
	keepPurgeOnMissing bool
}

// NewUserService creates a new UserService. With legacyDelete, deleting an
// unknown user id still removes tasks that reference it.
func NewUserService(userRepo repository.UserRepository, legacyDelete bool) *UserService {
	return &UserService{
		userRepo:           userRepo,
		keepPurgeOnMissing: legacyDelete,
	}
}

// CreateUserInput represents input for creating a user
type CreateUserInput struct {
	Username  string
	Firstname string
	Lastname  string
	Age       *int
}

// UpdateUserInput represents input for updating a user
type UpdateUserInput struct {
	Firstname string
	Lastname  string
	Age       *int
}

// ListUsers returns all users
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser returns a user by ID
func (s *UserService) GetUser(ctx context.Context, id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// CreateUser inserts a user with a slug derived from the username.
// Uniqueness is left to the storage constraints.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error) {
	slug := utils.Slugify(strings.TrimSpace(input.Username))
	if slug == "" {
		return nil, ErrInvalidUsername
	}

	user := &models.User{
		Username:  input.Username,
		Firstname: input.Firstname,
		Lastname:  input.Lastname,
		Age:       input.Age,
		Slug:      slug,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// UpdateUser changes firstname, lastname and age. Username and slug never change.
func (s *UserService) UpdateUser(ctx context.Context, id uint64, input UpdateUserInput) error {
	err := s.userRepo.UpdateProfile(ctx, id, repository.UserProfile{
		Firstname: input.Firstname,
		Lastname:  input.Lastname,
		Age:       input.Age,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// DeleteUser removes the user and every task it owns. It returns the number
// of tasks removed.
func (s *UserService) DeleteUser(ctx context.Context, id uint64) (int64, error) {
	purged, err := s.userRepo.DeleteWithTasks(ctx, id, s.keepPurgeOnMissing)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return purged, ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to delete user: %w", err)
	}
	return purged, nil
}

// ListUserTasks returns the tasks owned by a user. An empty result is reported
// as ErrNoTasksForUser whether or not the user exists.
func (s *UserService) ListUserTasks(ctx context.Context, id uint64) ([]models.Task, error) {
	tasks, err := s.userRepo.ListTasks(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list user tasks: %w", err)
	}
	if len(tasks) == 0 {
		return nil, ErrNoTasksForUser
	}
	return tasks, nil
}
