package entity

import "time"

// Tipos de movimiento de estoque.
const (
	MovementTypeEntrada = "entrada" // aumenta cantidad
	MovementTypeSaida   = "saída"   // disminuye cantidad, atribuida a un profesional
)

// Atribución fija para entradas y valor por defecto cuando no aplica.
const (
	TakenByEntrada = "Entrada no Estoque"
	TakenByDefault = "N/A"
)

// StockMovement representa un movimiento del ledger de estoque.
// Inmutable una vez creado; es la única pista de auditoría del historial de cantidades.
// ItemName, UserName y TakenBy se denormalizan al momento del movimiento:
// renombrar el ítem o el profesional no reescribe el historial.
type StockMovement struct {
	ID             string
	ItemID         string
	ItemName       string
	UserID         string
	UserName       string
	TakenBy        string // nombre del profesional en saídas; TakenByEntrada en entradas
	Type           string // entrada | saída
	QuantityChange int64  // con signo: positivo entrada, negativo saída
	QuantityAfter  int64  // cantidad del ítem inmediatamente después de aplicar el movimiento
	Timestamp      time.Time
}
