package dto

type ItemCreate struct {
	Name        string `json:"name" validate:"notblank"`
	Description string `json:"description" validate:"notblank"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"requestId,omitempty" validate:"omitempty,gt=0"`
}

// ItemUpdate leaves absent fields unchanged.
type ItemUpdate struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,notblank"`
	Description *string `json:"description,omitempty" validate:"omitempty,notblank"`
	Available   *bool   `json:"available,omitempty"`
}

type CommentCreate struct {
	Text string `json:"text" validate:"notblank"`
}
