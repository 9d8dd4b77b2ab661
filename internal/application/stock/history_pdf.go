package stock

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// HistoryPDFUseCase genera el PDF del historial de movimientos de un ítem.
type HistoryPDFUseCase struct {
	itemRepo  repository.StockItemRepository
	movRepo   repository.StockMovementRepository
	generator HistoryPDFGenerator
}

// NewHistoryPDFUseCase construye el caso de uso.
func NewHistoryPDFUseCase(
	itemRepo repository.StockItemRepository,
	movRepo repository.StockMovementRepository,
	generator HistoryPDFGenerator,
) *HistoryPDFUseCase {
	return &HistoryPDFUseCase{itemRepo: itemRepo, movRepo: movRepo, generator: generator}
}

// Generate arma el reporte con todos los movimientos del ítem (más recientes primero).
func (uc *HistoryPDFUseCase) Generate(ctx context.Context, userID, itemID string) ([]byte, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.UserID != userID {
		return nil, domain.ErrItemNotFound
	}
	movements, err := uc.movRepo.ListByItem(itemID, "")
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateHistoryPDF(ctx, item, movements)
}
