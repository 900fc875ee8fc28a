package dto

import "github.com/Eursukkul/shareit/server/internal/models"

// UserInput is used for both create and partial update.
type UserInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func ToUserResponses(users []models.User) []UserResponse {
	resp := make([]UserResponse, len(users))
	for i := range users {
		resp[i] = ToUserResponse(&users[i])
	}
	return resp
}
