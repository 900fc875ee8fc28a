package dto

import (
	"strings"
	"time"
)

type BookingCreate struct {
	ItemID *int64     `json:"itemId" validate:"required,gt=0"`
	Start  *time.Time `json:"start" validate:"required,futureorpresent"`
	End    *time.Time `json:"end" validate:"required,future,gtfield=Start"`
}

var bookingStates = map[string]struct{}{
	"ALL":      {},
	"CURRENT":  {},
	"PAST":     {},
	"FUTURE":   {},
	"WAITING":  {},
	"REJECTED": {},
}

// ValidBookingState reports whether raw names a booking state filter.
// Matching ignores case; empty means ALL.
func ValidBookingState(raw string) bool {
	if raw == "" {
		return true
	}
	_, ok := bookingStates[strings.ToUpper(raw)]
	return ok
}
