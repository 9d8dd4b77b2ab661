package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSupplyRequest entrada para crear un suministro.
type CreateSupplyRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Priority    string          `json:"priority" validate:"required,oneof=low medium high"`
	Value       decimal.Decimal `json:"value"`
	Observation string          `json:"observation"`
}

// UpdateSupplyRequest entrada para actualizar un suministro.
type UpdateSupplyRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Priority    *string          `json:"priority" validate:"omitempty,oneof=low medium high"`
	Value       *decimal.Decimal `json:"value"`
	Observation *string          `json:"observation"`
	IsPurchased *bool            `json:"is_purchased"`
}

// SupplyResponse salida de un suministro.
type SupplyResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Name        string          `json:"name"`
	Priority    string          `json:"priority"`
	Value       decimal.Decimal `json:"value"`
	Observation string          `json:"observation"`
	IsPurchased bool            `json:"is_purchased"`
	CreatedAt   time.Time       `json:"created_at"`
}
