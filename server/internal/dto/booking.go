package dto

import (
	"time"

	"github.com/Eursukkul/shareit/server/internal/models"
)

type BookingInput struct {
	ItemID *int64     `json:"itemId"`
	Start  *time.Time `json:"start"`
	End    *time.Time `json:"end"`
}

type BookingResponse struct {
	ID       int64                `json:"id"`
	Start    time.Time            `json:"start"`
	End      time.Time            `json:"end"`
	Status   models.BookingStatus `json:"status"`
	BookerID int64                `json:"bookerId"`
	Booker   UserResponse         `json:"booker"`
	Item     ItemResponse         `json:"item"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:       b.ID,
		Start:    b.Start,
		End:      b.End,
		Status:   b.Status,
		BookerID: b.BookerID,
		Booker:   UserResponse{ID: b.BookerID},
		Item:     ItemResponse{ID: b.ItemID},
	}
	if b.Booker != nil {
		resp.Booker = ToUserResponse(b.Booker)
	}
	if b.Item != nil {
		resp.Item = ToItemResponse(b.Item)
	}
	return resp
}

func ToBookingResponses(bookings []models.Booking) []BookingResponse {
	resp := make([]BookingResponse, len(bookings))
	for i := range bookings {
		resp[i] = ToBookingResponse(&bookings[i])
	}
	return resp
}
