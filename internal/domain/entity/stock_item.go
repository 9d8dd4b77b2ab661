package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías válidas para StockItem.
const (
	CategoryRecorrente    = "Recorrente"
	CategoryNaoRecorrente = "Não Recorrente"
)

// StockItem representa un ítem de estoque de un usuario.
// Quantity solo se modifica vía movimientos (ledger); el resto de campos por update genérico.
type StockItem struct {
	ID           string
	UserID       string
	Name         string
	Category     string // Recorrente | Não Recorrente
	Quantity     int64  // nunca negativa
	MinQuantity  int64  // umbral de reposición; 0 = sin mínimo configurado
	Supplier     string
	SKU          string
	UnitValue    decimal.Decimal
	Observation  string
	NeedsToBuy   bool
	WasPurchased bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLowStock indica si el ítem está por debajo del umbral de reposición.
// Un ítem sin mínimo configurado (MinQuantity == 0) nunca se considera bajo,
// incluso con cantidad cero.
func (s *StockItem) IsLowStock() bool {
	return s.MinQuantity > 0 && s.Quantity <= s.MinQuantity
}

// TotalValue devuelve la valuación del ítem: UnitValue * Quantity.
func (s *StockItem) TotalValue() decimal.Decimal {
	return s.UnitValue.Mul(decimal.NewFromInt(s.Quantity))
}
