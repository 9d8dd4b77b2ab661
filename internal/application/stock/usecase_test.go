package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/stock"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

func newStockUC(store *memStore, cache stock.ItemListCache) *stock.StockUseCase {
	return stock.NewStockUseCase(
		&fakeItemRepo{items: store.items},
		&fakeMovementRepo{store: store},
		cache,
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestStockCreate_DefaultsDeCamposNoEnviados(t *testing.T) {
	store := newMemStore()
	uc := newStockUC(store, nil)

	item, err := uc.Create(context.Background(), testUserID, dto.CreateStockItemRequest{
		Name:     "Tinte 7.0",
		Category: entity.CategoryNaoRecorrente,
		Quantity: 12,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(12), item.Quantity)
	assert.Equal(t, int64(0), item.MinQuantity)
	assert.Empty(t, item.Supplier)
	assert.Empty(t, item.SKU)
	assert.True(t, item.UnitValue.IsZero())
	assert.False(t, item.NeedsToBuy)
	assert.False(t, item.WasPurchased)
	assert.False(t, item.LowStock, "minQuantity 0 nunca marca stock bajo")
	assert.True(t, item.TotalValue.IsZero())
	assert.NotEmpty(t, item.ID)
}

func TestStockCreate_CategoriaInvalida(t *testing.T) {
	store := newMemStore()
	uc := newStockUC(store, nil)

	_, err := uc.Create(context.Background(), testUserID, dto.CreateStockItemRequest{
		Name:     "Tinte 7.0",
		Category: "Otra",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStockCreate_CantidadNegativa(t *testing.T) {
	store := newMemStore()
	uc := newStockUC(store, nil)

	_, err := uc.Create(context.Background(), testUserID, dto.CreateStockItemRequest{
		Name:     "Tinte 7.0",
		Category: entity.CategoryRecorrente,
		Quantity: -1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetByID / Update / Delete — propiedad del usuario
// ──────────────────────────────────────────────────────────────────────────────

func TestStockGetByID_ItemAjeno_NotFound(t *testing.T) {
	item := testItem(5)
	item.UserID = "otro-usuario"
	store := newMemStore(item)
	uc := newStockUC(store, nil)

	_, err := uc.GetByID(context.Background(), testUserID, testItemID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestStockUpdate_NoTocaCantidadYRefrescaUpdatedAt(t *testing.T) {
	item := testItem(7)
	before := item.UpdatedAt
	store := newMemStore(item)
	uc := newStockUC(store, nil)

	newName := "Shampoo Premium"
	newMin := int64(3)
	newValue := decimal.NewFromFloat(45.90)
	updated, err := uc.Update(context.Background(), testUserID, testItemID, dto.UpdateStockItemRequest{
		Name:        &newName,
		MinQuantity: &newMin,
		UnitValue:   &newValue,
	})
	require.NoError(t, err)

	assert.Equal(t, "Shampoo Premium", updated.Name)
	assert.Equal(t, int64(7), updated.Quantity, "Update nunca modifica la cantidad")
	assert.Equal(t, int64(3), updated.MinQuantity)
	assert.Equal(t, entity.CategoryRecorrente, updated.Category, "campo no enviado queda igual")
	assert.True(t, updated.UpdatedAt.After(before) || updated.UpdatedAt.Equal(before))
	assert.True(t, updated.TotalValue.Equal(decimal.NewFromFloat(45.90).Mul(decimal.NewFromInt(7))))
}

func TestStockUpdate_MinQuantityNegativa(t *testing.T) {
	store := newMemStore(testItem(7))
	uc := newStockUC(store, nil)

	bad := int64(-1)
	_, err := uc.Update(context.Background(), testUserID, testItemID, dto.UpdateStockItemRequest{
		MinQuantity: &bad,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStockDelete_ConservaMovimientos(t *testing.T) {
	store := newMemStore(testItem(10))
	recordUC := stock.NewRecordMovementUseCase(&fakeTxRunner{store: store}, nil)
	_, err := recordUC.Record(context.Background(), entradaInput(5))
	require.NoError(t, err)

	uc := newStockUC(store, nil)
	require.NoError(t, uc.Delete(context.Background(), testUserID, testItemID))

	assert.NotContains(t, store.items, testItemID)
	assert.Len(t, store.movements, 1, "el historial del ledger sobrevive al borrado del ítem")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ListMovements
// ──────────────────────────────────────────────────────────────────────────────

func TestListMovements_OrdenDescYFiltro(t *testing.T) {
	store := newMemStore(testItem(0))
	base := time.Now()
	store.movements = []*entity.StockMovement{
		{ID: "m1", ItemID: testItemID, Type: entity.MovementTypeEntrada, QuantityChange: 10, QuantityAfter: 10, Timestamp: base.Add(-2 * time.Hour)},
		{ID: "m2", ItemID: testItemID, Type: entity.MovementTypeSaida, QuantityChange: -4, QuantityAfter: 6, Timestamp: base.Add(-1 * time.Hour)},
		{ID: "m3", ItemID: testItemID, Type: entity.MovementTypeEntrada, QuantityChange: 2, QuantityAfter: 8, Timestamp: base},
	}
	uc := newStockUC(store, nil)

	all, err := uc.ListMovements(context.Background(), testUserID, testItemID, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"m3", "m2", "m1"}, []string{all[0].ID, all[1].ID, all[2].ID},
		"del más reciente al más antiguo")

	entradas, err := uc.ListMovements(context.Background(), testUserID, testItemID, entity.MovementTypeEntrada)
	require.NoError(t, err)
	require.Len(t, entradas, 2)
	for _, m := range entradas {
		assert.Equal(t, entity.MovementTypeEntrada, m.Type)
	}
}

func TestListMovements_SinHistorial_SliceVacio(t *testing.T) {
	store := newMemStore(testItem(0))
	uc := newStockUC(store, nil)

	movements, err := uc.ListMovements(context.Background(), testUserID, testItemID, "")
	require.NoError(t, err)
	assert.NotNil(t, movements)
	assert.Empty(t, movements)
}

func TestListMovements_TipoInvalido(t *testing.T) {
	store := newMemStore(testItem(0))
	uc := newStockUC(store, nil)

	_, err := uc.ListMovements(context.Background(), testUserID, testItemID, "ajuste")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListMovements_ItemAjeno_NotFound(t *testing.T) {
	item := testItem(0)
	item.UserID = "otro-usuario"
	store := newMemStore(item)
	uc := newStockUC(store, nil)

	_, err := uc.ListMovements(context.Background(), testUserID, testItemID, "")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests List — caché read-through
// ──────────────────────────────────────────────────────────────────────────────

func TestStockList_CacheMissPueblaYCacheHitEvitaRepo(t *testing.T) {
	store := newMemStore(testItem(10))
	cache := newFakeCache()
	uc := newStockUC(store, cache)

	// Primer listado: miss, puebla el caché desde el repo.
	first, err := uc.List(context.Background(), testUserID)
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.Contains(t, cache.cached, testUserID)

	// Se muta el store por debajo: un hit de caché devuelve el listado viejo,
	// demostrando que no se tocó el repo.
	store.items[testItemID].Name = "Renombrado"
	second, err := uc.List(context.Background(), testUserID)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "Shampoo Profesional", second[0].Name)
}

func TestStockList_MutacionInvalidaYRefresca(t *testing.T) {
	store := newMemStore(testItem(10))
	cache := newFakeCache()
	uc := newStockUC(store, cache)

	_, err := uc.List(context.Background(), testUserID)
	require.NoError(t, err)

	newName := "Renombrado"
	_, err = uc.Update(context.Background(), testUserID, testItemID, dto.UpdateStockItemRequest{Name: &newName})
	require.NoError(t, err)
	assert.NotContains(t, cache.cached, testUserID, "la mutación invalida la entrada")

	refreshed, err := uc.List(context.Background(), testUserID)
	require.NoError(t, err)
	require.Len(t, refreshed, 1)
	assert.Equal(t, "Renombrado", refreshed[0].Name)
}
