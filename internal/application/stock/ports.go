package stock

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad para el ledger: lectura, cálculo, update e inserción del
// movimiento se aplican como unidad frente a movimientos concurrentes del mismo ítem.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.StockItemRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}

// ItemListCache cachea el listado de ítems por usuario. El backend es la única
// fuente de verdad: cada mutación invalida la entrada y el siguiente listado refetchea.
// Implementación nil = caché deshabilitado.
type ItemListCache interface {
	GetItems(ctx context.Context, userID string) ([]*entity.StockItem, error)
	SetItems(ctx context.Context, userID string, items []*entity.StockItem) error
	InvalidateItems(ctx context.Context, userID string) error
}

// HistoryPDFGenerator genera la representación PDF del historial de movimientos de un ítem.
type HistoryPDFGenerator interface {
	GenerateHistoryPDF(ctx context.Context, item *entity.StockItem, movements []*entity.StockMovement) ([]byte, error)
}
