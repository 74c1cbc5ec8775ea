package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/taskmanager-api/internal/database"
	"github.com/yukikurage/taskmanager-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

var (
	// ErrDeleteUserTasks is returned when removing a user's tasks fails inside the delete transaction.
	ErrDeleteUserTasks = errors.New("user repository: delete user tasks failed")
	// ErrDeleteUser is returned when removing the user row fails inside the delete transaction.
	ErrDeleteUser = errors.New("user repository: delete user failed")
)

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// List returns every user ordered by ID
func (r *GormUserRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Scopes(database.OrderByID).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Create creates a new user
func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// UpdateProfile overwrites the mutable profile columns of a user
func (r *GormUserRepository) UpdateProfile(ctx context.Context, id uint64, profile UserProfile) error {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"firstname": profile.Firstname,
			"lastname":  profile.Lastname,
			"age":       profile.Age,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteWithTasks removes a user's tasks and the user atomically.
func (r *GormUserRepository) DeleteWithTasks(ctx context.Context, id uint64, keepPurgeOnMissing bool) (int64, error) {
	var (
		purged  int64
		missing bool
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Scopes(database.OwnedBy(id)).Delete(&models.Task{})
		if result.Error != nil {
			return fmt.Errorf("%w: %v", ErrDeleteUserTasks, result.Error)
		}
		purged = result.RowsAffected

		result = tx.Delete(&models.User{}, id)
		if result.Error != nil {
			return fmt.Errorf("%w: %v", ErrDeleteUser, result.Error)
		}
		if result.RowsAffected == 0 {
			if keepPurgeOnMissing {
				missing = true
				return nil
			}
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if missing {
		return purged, gorm.ErrRecordNotFound
	}
	return purged, nil
}

// ListTasks returns the tasks owned by a user
func (r *GormUserRepository) ListTasks(ctx context.Context, userID uint64) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(userID), database.OrderByID).
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
