package database

import "gorm.io/gorm"

// OrderByID gives list queries a stable order
func OrderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// OwnedBy restricts a task query to one owning user
func OwnedBy(userID uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
