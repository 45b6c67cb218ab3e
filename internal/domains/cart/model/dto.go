package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// AddItemRequest is the payload for POST /cart/items.
type AddItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (r AddItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID, validation.Required),
		validation.Field(&r.Quantity, validation.Required, validation.Min(1)),
	)
}

// UpdateItemRequest is the payload for PUT /cart/items/:id.
// Quantity <= 0 means remove the line, so no lower bound here.
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (r UpdateItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Quantity, validation.Max(999)),
	)
}
