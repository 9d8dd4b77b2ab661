package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto de la lista de compras.
// Installments solo aplica cuando PaymentType es installments (default 1).
type CreateProductRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Category     string          `json:"category" validate:"required"`
	Link         string          `json:"link"`
	Observation  string          `json:"observation"`
	Value        decimal.Decimal `json:"value"`
	PaymentType  string          `json:"payment_type" validate:"required,oneof=cash installments"`
	Installments *int            `json:"installments"`
}

// UpdateProductRequest entrada para actualizar un producto.
type UpdateProductRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category     *string          `json:"category"`
	Link         *string          `json:"link"`
	Observation  *string          `json:"observation"`
	Value        *decimal.Decimal `json:"value"`
	Status       *string          `json:"status" validate:"omitempty,oneof=none pending approved rejected"`
	PaymentType  *string          `json:"payment_type" validate:"omitempty,oneof=cash installments"`
	Installments *int             `json:"installments"`
	WasPurchased *bool            `json:"was_purchased"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Link         string          `json:"link"`
	Observation  string          `json:"observation"`
	Value        decimal.Decimal `json:"value"`
	Status       string          `json:"status"`
	PaymentType  string          `json:"payment_type"`
	Installments *int            `json:"installments,omitempty"`
	WasPurchased bool            `json:"was_purchased"`
	CreatedAt    time.Time       `json:"created_at"`
}
