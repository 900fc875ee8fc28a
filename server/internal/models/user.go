package models

type User struct {
	ID    int64  `gorm:"primaryKey"`
	Name  string `gorm:"size:255;not null"`
	Email string `gorm:"size:512;not null;uniqueIndex"`
}
