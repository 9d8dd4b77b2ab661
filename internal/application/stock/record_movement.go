package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// RecordMovementUseCase registra movimientos del ledger de estoque de forma
// transaccional (entrada/saída) con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type RecordMovementUseCase struct {
	txRunner TxRunner
	cache    ItemListCache
}

// NewRecordMovementUseCase construye el caso de uso. cache puede ser nil.
func NewRecordMovementUseCase(txRunner TxRunner, cache ItemListCache) *RecordMovementUseCase {
	return &RecordMovementUseCase{txRunner: txRunner, cache: cache}
}

// MovementInput entrada para registrar un movimiento.
// QuantityChange con signo: positivo para entrada, negativo para saída (convención del caller).
// TakenBy obligatorio en saídas; en entradas se reemplaza por la etiqueta fija.
type MovementInput struct {
	UserID         string
	UserName       string
	ItemID         string
	Type           string
	QuantityChange int64
	TakenBy        string
}

// Record inicia una transacción, bloquea la fila del ítem, verifica que la nueva
// cantidad no sea negativa, actualiza cantidad+updatedAt y agrega exactamente un
// movimiento inmutable con QuantityAfter igual a la cantidad resultante.
// Falla completa (sin efectos parciales) con ErrInvalidInput, ErrItemNotFound o
// ErrInsufficientStock.
func (uc *RecordMovementUseCase) Record(ctx context.Context, in MovementInput) (*entity.StockMovement, error) {
	// Validación previa a cualquier llamada al backend
	if in.QuantityChange == 0 || in.ItemID == "" || in.UserID == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.Type {
	case entity.MovementTypeEntrada:
		if in.QuantityChange < 0 {
			return nil, domain.ErrInvalidInput
		}
		in.TakenBy = entity.TakenByEntrada
	case entity.MovementTypeSaida:
		if in.QuantityChange > 0 {
			return nil, domain.ErrInvalidInput
		}
		if in.TakenBy == "" {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	userName := in.UserName
	if userName == "" {
		userName = entity.TakenByDefault
	}

	now := time.Now()
	var movement *entity.StockMovement

	// Inicia transacción; Commit si todo ok, Rollback si algo falla (TxRunner.Run lo hace)
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.StockItemRepository,
		movRepo repository.StockMovementRepository,
	) error {
		// Bloquea la fila del ítem (SELECT FOR UPDATE) para serializar movimientos concurrentes
		item, err := itemRepo.GetForUpdate(in.ItemID)
		if err != nil {
			return err
		}
		if item == nil || item.UserID != in.UserID {
			return domain.ErrItemNotFound
		}

		newQty := item.Quantity + in.QuantityChange
		if newQty < 0 {
			return &domain.InsufficientStockError{
				Requested: -in.QuantityChange,
				Available: item.Quantity,
			}
		}

		if err := itemRepo.UpdateQuantity(item.ID, newQty, now); err != nil {
			return err
		}

		movement = &entity.StockMovement{
			ID:             uuid.New().String(),
			ItemID:         item.ID,
			ItemName:       item.Name,
			UserID:         in.UserID,
			UserName:       userName,
			TakenBy:        in.TakenBy,
			Type:           in.Type,
			QuantityChange: in.QuantityChange,
			QuantityAfter:  newQty,
			Timestamp:      now,
		}
		return movRepo.Create(movement)
	})
	if err != nil {
		return nil, err
	}

	// El backend es la fuente de verdad: se invalida el listado cacheado del usuario
	if uc.cache != nil {
		_ = uc.cache.InvalidateItems(ctx, in.UserID)
	}
	return movement, nil
}
