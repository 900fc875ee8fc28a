package dto

import (
	"time"

	"github.com/Eursukkul/shareit/server/internal/models"
)

type ItemRequestInput struct {
	Description string `json:"description"`
}

type RequestItemResponse struct {
	ItemResponse
	OwnerID int64 `json:"ownerId"`
}

type ItemRequestResponse struct {
	ID          int64                 `json:"id"`
	Description string                `json:"description"`
	RequesterID int64                 `json:"requesterId"`
	Created     time.Time             `json:"created"`
	Items       []RequestItemResponse `json:"items"`
}

func ToItemRequestResponse(r *models.ItemRequest) ItemRequestResponse {
	resp := ItemRequestResponse{
		ID:          r.ID,
		Description: r.Description,
		RequesterID: r.RequesterID,
		Created:     r.Created,
		Items:       make([]RequestItemResponse, len(r.Items)),
	}
	for i := range r.Items {
		resp.Items[i] = RequestItemResponse{
			ItemResponse: ToItemResponse(&r.Items[i]),
			OwnerID:      r.Items[i].OwnerID,
		}
	}
	return resp
}

func ToItemRequestResponses(requests []models.ItemRequest) []ItemRequestResponse {
	resp := make([]ItemRequestResponse, len(requests))
	for i := range requests {
		resp[i] = ToItemRequestResponse(&requests[i])
	}
	return resp
}
