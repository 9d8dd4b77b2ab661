package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Prioridades válidas para Supply.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Supply representa un suministro recurrente de un usuario.
type Supply struct {
	ID          string
	UserID      string
	Name        string
	Priority    string // low, medium, high
	Value       decimal.Decimal
	Observation string
	IsPurchased bool
	CreatedAt   time.Time
}
