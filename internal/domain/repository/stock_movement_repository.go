package repository

import "github.com/jhoicas/estoque-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia para el ledger de movimientos.
// Los movimientos son append-only: no hay Update ni Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// ListByItem lista movimientos de un ítem, del más reciente al más antiguo.
	// movementType vacío = todos los tipos.
	ListByItem(itemID, movementType string) ([]*entity.StockMovement, error)
}
