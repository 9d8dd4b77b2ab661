package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// StockUseCase casos de uso CRUD para ítems de estoque y consulta del ledger.
// Quantity se maneja vía RecordMovementUseCase; aquí solo los demás campos.
type StockUseCase struct {
	itemRepo repository.StockItemRepository
	movRepo  repository.StockMovementRepository
	cache    ItemListCache
}

// NewStockUseCase construye el caso de uso. cache puede ser nil.
func NewStockUseCase(itemRepo repository.StockItemRepository, movRepo repository.StockMovementRepository, cache ItemListCache) *StockUseCase {
	return &StockUseCase{itemRepo: itemRepo, movRepo: movRepo, cache: cache}
}

// Create crea un ítem de estoque para el usuario. Los campos no incluidos en el
// request nacen en cero/vacío y los flags en false.
func (uc *StockUseCase) Create(ctx context.Context, userID string, in dto.CreateStockItemRequest) (*dto.StockItemResponse, error) {
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Category != entity.CategoryRecorrente && in.Category != entity.CategoryNaoRecorrente {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.StockItem{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        in.Name,
		Category:    in.Category,
		Quantity:    in.Quantity,
		MinQuantity: 0,
		Supplier:    "",
		SKU:         "",
		UnitValue:   decimal.Zero,
		Observation: in.Observation,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, userID)
	return toStockItemResponse(item), nil
}

// GetByID obtiene un ítem del usuario. Ítems de otros usuarios no son visibles.
func (uc *StockUseCase) GetByID(ctx context.Context, userID, id string) (*dto.StockItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.UserID != userID {
		return nil, domain.ErrItemNotFound
	}
	return toStockItemResponse(item), nil
}

// List lista los ítems del usuario, leyendo primero del caché si está habilitado.
func (uc *StockUseCase) List(ctx context.Context, userID string) ([]dto.StockItemResponse, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.GetItems(ctx, userID); err == nil && cached != nil {
			return toStockItemResponses(cached), nil
		}
	}
	items, err := uc.itemRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if uc.cache != nil {
		_ = uc.cache.SetItems(ctx, userID, items)
	}
	return toStockItemResponses(items), nil
}

// Update actualiza un ítem. No permite modificar Quantity (se maneja vía movimientos)
// y refresca UpdatedAt.
func (uc *StockUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateStockItemRequest) (*dto.StockItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.UserID != userID {
		return nil, domain.ErrItemNotFound
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Category != nil {
		if *in.Category != entity.CategoryRecorrente && *in.Category != entity.CategoryNaoRecorrente {
			return nil, domain.ErrInvalidInput
		}
		item.Category = *in.Category
	}
	if in.MinQuantity != nil {
		if *in.MinQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.MinQuantity = *in.MinQuantity
	}
	if in.Supplier != nil {
		item.Supplier = *in.Supplier
	}
	if in.SKU != nil {
		item.SKU = *in.SKU
	}
	if in.UnitValue != nil {
		if in.UnitValue.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item.UnitValue = *in.UnitValue
	}
	if in.Observation != nil {
		item.Observation = *in.Observation
	}
	if in.NeedsToBuy != nil {
		item.NeedsToBuy = *in.NeedsToBuy
	}
	if in.WasPurchased != nil {
		item.WasPurchased = *in.WasPurchased
	}
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, userID)
	return toStockItemResponse(item), nil
}

// Delete elimina un ítem. Los movimientos históricos del ledger no se tocan.
func (uc *StockUseCase) Delete(ctx context.Context, userID, id string) error {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil || item.UserID != userID {
		return domain.ErrItemNotFound
	}
	if err := uc.itemRepo.Delete(id); err != nil {
		return err
	}
	uc.invalidate(ctx, userID)
	return nil
}

// ListMovements lista el historial de movimientos de un ítem, del más reciente
// al más antiguo. movementType vacío = todos; si no, debe ser entrada o saída.
// Devuelve slice vacío (no error) para ítems sin historial.
func (uc *StockUseCase) ListMovements(ctx context.Context, userID, itemID, movementType string) ([]dto.MovementResponse, error) {
	if movementType != "" && movementType != entity.MovementTypeEntrada && movementType != entity.MovementTypeSaida {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.UserID != userID {
		return nil, domain.ErrItemNotFound
	}
	movements, err := uc.movRepo.ListByItem(itemID, movementType)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementResponse(m))
	}
	return out, nil
}

func (uc *StockUseCase) invalidate(ctx context.Context, userID string) {
	if uc.cache != nil {
		_ = uc.cache.InvalidateItems(ctx, userID)
	}
}

func toStockItemResponse(item *entity.StockItem) *dto.StockItemResponse {
	if item == nil {
		return nil
	}
	return &dto.StockItemResponse{
		ID:           item.ID,
		UserID:       item.UserID,
		Name:         item.Name,
		Category:     item.Category,
		Quantity:     item.Quantity,
		MinQuantity:  item.MinQuantity,
		Supplier:     item.Supplier,
		SKU:          item.SKU,
		UnitValue:    item.UnitValue,
		Observation:  item.Observation,
		NeedsToBuy:   item.NeedsToBuy,
		WasPurchased: item.WasPurchased,
		LowStock:     item.IsLowStock(),
		TotalValue:   item.TotalValue(),
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

func toStockItemResponses(items []*entity.StockItem) []dto.StockItemResponse {
	out := make([]dto.StockItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, *toStockItemResponse(item))
	}
	return out
}

func toMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:             m.ID,
		ItemID:         m.ItemID,
		ItemName:       m.ItemName,
		UserID:         m.UserID,
		UserName:       m.UserName,
		TakenBy:        m.TakenBy,
		Type:           m.Type,
		QuantityChange: m.QuantityChange,
		QuantityAfter:  m.QuantityAfter,
		Timestamp:      m.Timestamp,
	}
}
