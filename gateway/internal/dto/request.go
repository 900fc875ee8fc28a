package dto

type RequestCreate struct {
	Description string `json:"description" validate:"notblank"`
}
