package models

// Task slug indexes are reconciled at startup by database.EnsureTaskSlugIndex,
// so Slug carries no index tag here.
type Task struct {
	ID        uint64 `gorm:"primarykey" json:"id"`
	Title     string `gorm:"type:varchar(255);not null" json:"title"`
	Content   string `gorm:"type:text;not null" json:"content"`
	Priority  int    `gorm:"not null;default:0" json:"priority"`
	Completed bool   `gorm:"not null;default:false" json:"completed"`
	Slug      string `gorm:"type:varchar(255);not null" json:"slug"`
	UserID    uint64 `gorm:"not null;index" json:"user_id"`
}
