package repository

import (
	"context"

	"github.com/yukikurage/taskmanager-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// List returns every user ordered by ID
	List(ctx context.Context) ([]models.User, error)

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// Create inserts a user; ID is assigned by storage
	Create(ctx context.Context, user *models.User) error

	// UpdateProfile overwrites firstname, lastname and age.
	// Returns gorm.ErrRecordNotFound when no row matches.
	UpdateProfile(ctx context.Context, id uint64, profile UserProfile) error

	// DeleteWithTasks removes the user's tasks and then the user in one transaction.
	// It returns the number of task rows removed and gorm.ErrRecordNotFound when
	// no user row matched. With keepPurgeOnMissing the task removal is committed
	// even in that case; otherwise it is rolled back.
	DeleteWithTasks(ctx context.Context, id uint64, keepPurgeOnMissing bool) (int64, error)

	// ListTasks returns the tasks owned by a user ordered by ID
	ListTasks(ctx context.Context, userID uint64) ([]models.Task, error)
}

// UserProfile holds the user columns that may change after creation
type UserProfile struct {
	Firstname string
	Lastname  string
	Age       *int
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// List returns every task ordered by ID
	List(ctx context.Context) ([]models.Task, error)

	// FindByID finds a task by ID
	FindByID(ctx context.Context, id uint64) (*models.Task, error)

	// Create inserts a task; ID is assigned by storage
	Create(ctx context.Context, task *models.Task) error

	// UpdateContent overwrites title, content, priority and completed.
	// Returns gorm.ErrRecordNotFound when no row matches.
	UpdateContent(ctx context.Context, id uint64, content TaskContent) error

	// Delete removes a task.
	// Returns gorm.ErrRecordNotFound when no row matches.
	Delete(ctx context.Context, id uint64) error

	// UserExists reports whether a user row with the given ID exists
	UserExists(ctx context.Context, userID uint64) (bool, error)
}

// TaskContent holds the task columns that may change after creation
type TaskContent struct {
	Title     string
	Content   string
	Priority  int
	Completed bool
}
