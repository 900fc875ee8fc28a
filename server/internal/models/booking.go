package models

import (
	"strings"
	"time"
)

type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
)

// BookingState selects bookings relative to the current time.
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

// ParseBookingState accepts any case; an empty string means ALL.
func ParseBookingState(raw string) (BookingState, bool) {
	if raw == "" {
		return StateAll, true
	}
	switch s := BookingState(strings.ToUpper(raw)); s {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return s, true
	}
	return "", false
}

type Booking struct {
	ID       int64         `gorm:"primaryKey"`
	Start    time.Time     `gorm:"column:start_date;not null;index"`
	End      time.Time     `gorm:"column:end_date;not null"`
	ItemID   int64         `gorm:"not null;index"`
	BookerID int64         `gorm:"not null;index"`
	Status   BookingStatus `gorm:"type:varchar(20);not null;default:'WAITING'"`

	Item   *Item `gorm:"foreignKey:ItemID"`
	Booker *User `gorm:"foreignKey:BookerID"`
}
