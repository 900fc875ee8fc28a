package models

import "time"

// ItemRequest is a user's request for an item nobody has listed yet.
type ItemRequest struct {
	ID          int64     `gorm:"primaryKey"`
	Description string    `gorm:"size:2048;not null"`
	RequesterID int64     `gorm:"not null;index"`
	Created     time.Time `gorm:"not null;index"`

	Items []Item `gorm:"foreignKey:RequestID"`
}

func (ItemRequest) TableName() string {
	return "requests"
}
