package dto

import (
	"time"

	"github.com/Eursukkul/shareit/server/internal/models"
)

// ItemInput is used for both create and partial update.
type ItemInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
	RequestID   *int64  `json:"requestId"`
}

type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId"`
}

// BookingShort is the booking summary shown on an item.
type BookingShort struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type ItemDetailsResponse struct {
	ItemResponse
	LastBooking *BookingShort     `json:"lastBooking"`
	NextBooking *BookingShort     `json:"nextBooking"`
	Comments    []CommentResponse `json:"comments"`
}

type CommentInput struct {
	Text string `json:"text"`
}

type CommentResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	ItemID     int64     `json:"itemId"`
	AuthorID   int64     `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

func ToItemResponse(i *models.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		RequestID:   i.RequestID,
	}
}

func ToItemResponses(items []models.Item) []ItemResponse {
	resp := make([]ItemResponse, len(items))
	for i := range items {
		resp[i] = ToItemResponse(&items[i])
	}
	return resp
}

func toBookingShort(b *models.Booking) *BookingShort {
	if b == nil {
		return nil
	}
	return &BookingShort{ID: b.ID, BookerID: b.BookerID, Start: b.Start, End: b.End}
}

func ToItemDetailsResponse(item *models.Item, last, next *models.Booking, comments []models.Comment) ItemDetailsResponse {
	resp := ItemDetailsResponse{
		ItemResponse: ToItemResponse(item),
		LastBooking:  toBookingShort(last),
		NextBooking:  toBookingShort(next),
		Comments:     make([]CommentResponse, len(comments)),
	}
	for i := range comments {
		resp.Comments[i] = ToCommentResponse(&comments[i])
	}
	return resp
}

func ToCommentResponse(c *models.Comment) CommentResponse {
	resp := CommentResponse{
		ID:       c.ID,
		Text:     c.Text,
		ItemID:   c.ItemID,
		AuthorID: c.AuthorID,
		Created:  c.Created,
	}
	if c.Author != nil {
		resp.AuthorName = c.Author.Name
	}
	return resp
}
