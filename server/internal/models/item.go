package models

import "time"

type Item struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"size:1024;not null"`
	Available   bool   `gorm:"not null"`
	OwnerID     int64  `gorm:"not null;index"`
	RequestID   *int64 `gorm:"index"`
}

type Comment struct {
	ID       int64     `gorm:"primaryKey"`
	Text     string    `gorm:"size:2048;not null"`
	ItemID   int64     `gorm:"not null;index"`
	AuthorID int64     `gorm:"not null;index"`
	Created  time.Time `gorm:"not null"`

	Author *User `gorm:"foreignKey:AuthorID"`
}
