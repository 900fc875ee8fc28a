package service

import (
	"context"
	"errors"

	"github.com/Eursukkul/shareit/server/internal/repository"
	"gorm.io/gorm"
)

// Not found: surfaced as 404.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrRequestNotFound = errors.New("request not found")
	ErrNotOwner        = errors.New("user is not the owner of the item")
	ErrOwnBooking      = errors.New("owner cannot book their own item")
	ErrAccessDenied    = errors.New("booking is visible to its booker and the item owner only")
)

// Bad request: surfaced as 400.
var (
	ErrValidation        = errors.New("validation failed")
	ErrItemUnavailable   = errors.New("item is not available for booking")
	ErrBookingDates      = errors.New("invalid booking dates")
	ErrBookingDecided    = errors.New("booking already decided")
	ErrUnknownState      = errors.New("Unknown state: UNSUPPORTED_STATUS")
	ErrCommentNotAllowed = errors.New("only users who completed a booking of the item can comment")
)

var ErrEmailExists = errors.New("user with this email already exists")

// lookupErr replaces gorm.ErrRecordNotFound with notFound.
func lookupErr(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}

func requireUser(ctx context.Context, users repository.UserRepository, id int64) error {
	ok, err := users.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUserNotFound
	}
	return nil
}
