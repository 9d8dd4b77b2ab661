package repository

import (
	"time"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// StockItemRepository define el puerto de persistencia para StockItem (DIP).
// Quantity solo se actualiza vía UpdateQuantity dentro de la transacción del ledger.
type StockItemRepository interface {
	Create(item *entity.StockItem) error
	GetByID(id string) (*entity.StockItem, error)
	ListByUser(userID string) ([]*entity.StockItem, error)
	Update(item *entity.StockItem) error
	Delete(id string) error
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE). Usar solo dentro de una tx.
	GetForUpdate(id string) (*entity.StockItem, error)
	UpdateQuantity(id string, quantity int64, updatedAt time.Time) error
}
