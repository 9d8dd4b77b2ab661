package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Product.
const (
	ProductStatusNone     = "none"
	ProductStatusPending  = "pending"
	ProductStatusApproved = "approved"
	ProductStatusRejected = "rejected"
)

// Formas de pago válidas para Product.
const (
	PaymentTypeCash         = "cash"
	PaymentTypeInstallments = "installments"
)

// Product representa un producto de la lista de compras de un usuario.
type Product struct {
	ID           string
	UserID       string
	Name         string
	Category     string
	Link         string
	Observation  string
	Value        decimal.Decimal
	Status       string // none, pending, approved, rejected
	PaymentType  string // cash, installments
	Installments *int   // solo cuando PaymentType es installments
	WasPurchased bool
	CreatedAt    time.Time
}
