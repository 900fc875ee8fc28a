package rabbitmq

import "time"

// Routing keys published on the shareit exchange.
const (
	KeyUserUpdated     = "user.updated"
	KeyUserDeleted     = "user.deleted"
	KeyItemCreated     = "item.created"
	KeyItemUpdated     = "item.updated"
	KeyBookingCreated  = "booking.created"
	KeyBookingApproved = "booking.approved"
	KeyBookingRejected = "booking.rejected"
	KeyCommentCreated  = "comment.created"
	KeyRequestCreated  = "request.created"
)

// Message is the JSON body of every domain event.
type Message struct {
	Type      string    `json:"type"`
	UserID    int64     `json:"userId,omitempty"`
	ItemID    int64     `json:"itemId,omitempty"`
	BookingID int64     `json:"bookingId,omitempty"`
	RequestID int64     `json:"requestId,omitempty"`
	At        time.Time `json:"at"`
}
