package models

type User struct {
	ID        uint64 `gorm:"primarykey" json:"id"`
	Username  string `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Firstname string `gorm:"type:varchar(255);not null" json:"firstname"`
	Lastname  string `gorm:"type:varchar(255);not null" json:"lastname"`
	Age       *int   `json:"age"`
	Slug      string `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`

	// Relations
	Tasks []Task `gorm:"foreignKey:UserID" json:"-"`
}
