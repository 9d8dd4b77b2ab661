package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockItemRequest entrada para crear un ítem de estoque.
// El resto de campos (minQuantity, supplier, sku, unitValue, flags) nacen en cero/vacío.
type CreateStockItemRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Category    string `json:"category" validate:"required"`
	Quantity    int64  `json:"quantity" validate:"min=0"`
	Observation string `json:"observation"`
}

// UpdateStockItemRequest entrada para actualizar un ítem (sin Quantity: se maneja vía movimientos).
type UpdateStockItemRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category     *string          `json:"category"`
	MinQuantity  *int64           `json:"min_quantity"`
	Supplier     *string          `json:"supplier"`
	SKU          *string          `json:"sku"`
	UnitValue    *decimal.Decimal `json:"unit_value"`
	Observation  *string          `json:"observation"`
	NeedsToBuy   *bool            `json:"needs_to_buy"`
	WasPurchased *bool            `json:"was_purchased"`
}

// StockItemResponse salida de un ítem de estoque, con los derivados LowStock y TotalValue.
type StockItemResponse struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Quantity     int64           `json:"quantity"`
	MinQuantity  int64           `json:"min_quantity"`
	Supplier     string          `json:"supplier"`
	SKU          string          `json:"sku"`
	UnitValue    decimal.Decimal `json:"unit_value"`
	Observation  string          `json:"observation"`
	NeedsToBuy   bool            `json:"needs_to_buy"`
	WasPurchased bool            `json:"was_purchased"`
	LowStock     bool            `json:"low_stock"`
	TotalValue   decimal.Decimal `json:"total_value"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// RecordMovementRequest body para POST /api/stock/items/{id}/movements.
// QuantityChange con signo: positivo para entrada, negativo para saída.
// TakenBy obligatorio en saídas; ignorado en entradas.
type RecordMovementRequest struct {
	Type           string `json:"type" validate:"required,oneof=entrada saída"`
	QuantityChange int64  `json:"quantity_change" validate:"required"`
	TakenBy        string `json:"taken_by"`
}

// MovementResponse salida de un movimiento del ledger.
type MovementResponse struct {
	ID             string    `json:"id"`
	ItemID         string    `json:"item_id"`
	ItemName       string    `json:"item_name"`
	UserID         string    `json:"user_id"`
	UserName       string    `json:"user_name"`
	TakenBy        string    `json:"taken_by"`
	Type           string    `json:"type"`
	QuantityChange int64     `json:"quantity_change"`
	QuantityAfter  int64     `json:"quantity_after"`
	Timestamp      time.Time `json:"timestamp"`
}
