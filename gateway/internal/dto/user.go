package dto

type UserCreate struct {
	Name  string `json:"name" validate:"notblank"`
	Email string `json:"email" validate:"required,email"`
}

// UserUpdate leaves absent fields unchanged.
type UserUpdate struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,notblank"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}
