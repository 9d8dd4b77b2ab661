package stock_test

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/stock"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memStore estado compartido de los fakes. El mutex lo toma el fakeTxRunner,
// de modo que cada "transacción" se serializa como lo harían los row locks.
type memStore struct {
	mu        sync.Mutex
	items     map[string]*entity.StockItem
	movements []*entity.StockMovement
}

func newMemStore(items ...*entity.StockItem) *memStore {
	s := &memStore{items: make(map[string]*entity.StockItem)}
	for _, it := range items {
		copied := *it
		s.items[it.ID] = &copied
	}
	return s
}

func (s *memStore) snapshot() (map[string]*entity.StockItem, []*entity.StockMovement) {
	items := make(map[string]*entity.StockItem, len(s.items))
	for id, it := range s.items {
		copied := *it
		items[id] = &copied
	}
	movements := make([]*entity.StockMovement, len(s.movements))
	copy(movements, s.movements)
	return items, movements
}

type fakeItemRepo struct {
	items map[string]*entity.StockItem
}

func (r *fakeItemRepo) Create(item *entity.StockItem) error {
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.StockItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	copied := *item
	return &copied, nil
}

func (r *fakeItemRepo) GetForUpdate(id string) (*entity.StockItem, error) {
	return r.GetByID(id)
}

func (r *fakeItemRepo) ListByUser(userID string) ([]*entity.StockItem, error) {
	var list []*entity.StockItem
	for _, item := range r.items {
		if item.UserID == userID {
			copied := *item
			list = append(list, &copied)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (r *fakeItemRepo) Update(item *entity.StockItem) error {
	existing, ok := r.items[item.ID]
	if !ok {
		return nil
	}
	qty := existing.Quantity
	copied := *item
	copied.Quantity = qty // Update nunca toca la cantidad
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeItemRepo) UpdateQuantity(id string, quantity int64, updatedAt time.Time) error {
	if item, ok := r.items[id]; ok {
		item.Quantity = quantity
		item.UpdatedAt = updatedAt
	}
	return nil
}

func (r *fakeItemRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type fakeMovementRepo struct {
	store *memStore
}

func (r *fakeMovementRepo) Create(movement *entity.StockMovement) error {
	copied := *movement
	r.store.movements = append(r.store.movements, &copied)
	return nil
}

func (r *fakeMovementRepo) ListByItem(itemID, movementType string) ([]*entity.StockMovement, error) {
	list := make([]*entity.StockMovement, 0)
	for _, m := range r.store.movements {
		if m.ItemID != itemID {
			continue
		}
		if movementType != "" && m.Type != movementType {
			continue
		}
		copied := *m
		list = append(list, &copied)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Timestamp.After(list[j].Timestamp) })
	return list, nil
}

// fakeTxRunner serializa transacciones con el mutex del store y aplica los
// cambios solo si fn termina sin error (commit/rollback).
type fakeTxRunner struct {
	store *memStore
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	itemRepo repository.StockItemRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	stagedItems, stagedMovements := t.store.snapshot()
	staged := &memStore{items: stagedItems, movements: stagedMovements}

	if err := fn(&fakeItemRepo{items: staged.items}, &fakeMovementRepo{store: staged}); err != nil {
		return err
	}
	t.store.items = staged.items
	t.store.movements = staged.movements
	return nil
}

// fakeCache registra las invalidaciones para verificar el flujo de caché.
type fakeCache struct {
	mu          sync.Mutex
	cached      map[string][]*entity.StockItem
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{cached: make(map[string][]*entity.StockItem)}
}

func (c *fakeCache) GetItems(_ context.Context, userID string) ([]*entity.StockItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cached[userID], nil
}

func (c *fakeCache) SetItems(_ context.Context, userID string, items []*entity.StockItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached[userID] = items
	return nil
}

func (c *fakeCache) InvalidateItems(_ context.Context, userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.cached, userID)
	c.invalidated = append(c.invalidated, userID)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testUserID   = "user-1"
	testUserName = "María"
	testItemID   = "item-1"
)

func testItem(quantity int64) *entity.StockItem {
	now := time.Now()
	return &entity.StockItem{
		ID:        testItemID,
		UserID:    testUserID,
		Name:      "Shampoo Profesional",
		Category:  entity.CategoryRecorrente,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func entradaInput(change int64) stock.MovementInput {
	return stock.MovementInput{
		UserID:         testUserID,
		UserName:       testUserName,
		ItemID:         testItemID,
		Type:           entity.MovementTypeEntrada,
		QuantityChange: change,
	}
}

func saidaInput(change int64, takenBy string) stock.MovementInput {
	return stock.MovementInput{
		UserID:         testUserID,
		UserName:       testUserName,
		ItemID:         testItemID,
		Type:           entity.MovementTypeSaida,
		QuantityChange: change,
		TakenBy:        takenBy,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Record — entradas y saídas
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_Entrada_IncrementaYEtiquetaFija(t *testing.T) {
	store := newMemStore(testItem(10))
	uc := stock.NewRecordMovementUseCase(&fakeTxRunner{store: store}, nil)

	movement, err := uc.Record(context.Background(), entradaInput(5))
	require.NoError(t, err)

	assert.Equal(t, int64(5), movement.QuantityChange)
	assert.Equal(t, int64(15), movement.QuantityAfter, "QuantityAfter debe ser la cantidad resultante")
	assert.Equal(t, entity.TakenByEntrada, movement.TakenBy,
		"en entradas TakenBy siempre es la etiqueta fija, ignore lo que mande el caller")
	assert.Equal(t, "Shampoo Profesional", movement.ItemName, "el nombre del ítem se desnormaliza")
	assert.Equal(t, testUserName, movement.UserName)
	assert.NotEmpty(t, movement.ID)

	assert.Equal(t, int64(15), store.items[testItemID].Quantity)
	require.Len(t, store.movements, 1)
}

func TestRecord_Saida_DecrementaConResponsable(t *testing.T) {
	store := newMemStore(testItem(10))
	uc := stock.NewRecordMovementUseCase(&fakeTxRunner{store: store}, nil)

	movement, err := uc.Record(context.Background(), saidaInput(-4, "Ana Paula"))
	require.NoError(t, err)

	assert.Equal(t, int64(-4), movement.QuantityChange)
	assert.Equal(t, int64(6), movement.QuantityAfter)
	assert.Equal(t, "Ana Paula", movement.TakenBy)
	assert.Equal(t, int64(6), store.items[testItemID].Quantity)
}

func TestRecord_SaidaHastaCero_Permitida(t *testing.T) {
	store := newMemStore(testItem(4))
	uc := stock.NewRecordMovementUseCase(&fakeTxRunner{store: store}, nil)

	movement, err := uc.Record(context.Background(), saidaInput(-4, "Ana Paula"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), movement.QuantityAfter, "llegar exactamente a cero es válido")
}

func TestRecord_UserNameVacio_UsaDefault(t *testing.T) {
	store := newMemStore(testItem(10))
	uc := stock.NewRecordMovementUseCase(&fakeTxRunner{store: store}, nil)

	in := entradaInput(1)
	in.UserName = ""
	movement, err := uc.Record(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, entity.TakenByDefault, movement.UserName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Record — validación
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_Validacion(t *testing.T) {
	cases := []struct {
		name string
		in   stock.MovementInput
	}{
		{"cambio cero", entradaInput(0)},
		{"entrada con cambio negativo", entradaInput(-3)},
		{"saída con cambio positivo", saidaInput(3, "Ana")},
		{"saída sin responsable", saidaInput(-3, "")},
		{"tipo desconocido", stock.MovementInput{UserID: testUserID, ItemID: testItemID, Type: "ajuste", QuantityChange: 1}},
		{"sin item", stock.MovementInput{UserID: testUserID, Type: entity.MovementTypeEntrada, QuantityChange: 1}},
		{"sin usuario", stock.MovementInput{ItemID: testItemID, Type: entity.MovementTypeEntrada, QuantityChange: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newMemStore(testItem(10))
			uc := stock.NewRecordMovementUseCase(&fakeTxRunner{store: store}, nil)

			_, err := uc.Record(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, int64(10), store.items[testItemID].Quantity, "la cantidad no debe cambiar")
			assert.Empty(t, store.movements, "no debe registrarse ningún movimiento")
		})
	}
}

func TestRecord_ItemDeOtroUsuario_NotFound(t *testing.T) {
	item := testItem(10)
	item.UserID = "otro-usuario"
	store := newMemStore(item)
	uc := stock.NewRecordMovementUseCase(&fakeTxRunner{store: store}, nil)

	_, err := uc.Record(context.Background(), entradaInput(1))
	assert.ErrorIs(t, err, domain.ErrItemNotFound,
		"un ítem ajeno es indistinguible de uno inexistente")
}

func TestRecord_ItemInexistente_NotFound(t *testing.T) {
	store := newMemStore()
	uc := stock.NewRecordMovementUseCase(&fakeTxRunner{store: store}, nil)

	_, err := uc.Record(context.Background(), entradaInput(1))
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Record — stock insuficiente y atomicidad
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_StockInsuficiente_SinEfectos(t *testing.T) {
	store := newMemStore(testItem(3))
	uc := stock.NewRecordMovementUseCase(&fakeTxRunner{store: store}, nil)

	_, err := uc.Record(context.Background(), saidaInput(-5, "Ana Paula"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficientErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, int64(5), insufficientErr.Requested)
	assert.Equal(t, int64(3), insufficientErr.Available)

	assert.Equal(t, int64(3), store.items[testItemID].Quantity, "rollback: la cantidad no cambia")
	assert.Empty(t, store.movements, "rollback: no queda movimiento huérfano")
}

func TestRecord_SaidasConcurrentes_NuncaNegativo(t *testing.T) {
	const (
		initialQty = 100
		workers    = 10
		perWorker  = int64(-10)
	)
	store := newMemStore(testItem(initialQty))
	uc := stock.NewRecordMovementUseCase(&fakeTxRunner{store: store}, nil)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Record(context.Background(), saidaInput(perWorker, "Ana Paula"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(0), store.items[testItemID].Quantity)
	require.Len(t, store.movements, workers)

	// Cada movimiento vio un estado serializado distinto: los QuantityAfter
	// deben ser exactamente {0, 10, ..., 90}.
	afters := make([]int64, 0, workers)
	for _, m := range store.movements {
		assert.GreaterOrEqual(t, m.QuantityAfter, int64(0))
		afters = append(afters, m.QuantityAfter)
	}
	sort.Slice(afters, func(i, j int) bool { return afters[i] < afters[j] })
	for i, after := range afters {
		assert.Equal(t, int64(i*10), after)
	}
}

func TestRecord_SaidasConcurrentesSobregiradas_SoloAlgunasPasan(t *testing.T) {
	// 5 saídas de 10 contra un stock de 30: exactamente 3 deben pasar.
	store := newMemStore(testItem(30))
	uc := stock.NewRecordMovementUseCase(&fakeTxRunner{store: store}, nil)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var okCount, conflictCount int
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Record(context.Background(), saidaInput(-10, "Ana Paula"))
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				okCount++
			} else if assert.ErrorIs(t, err, domain.ErrInsufficientStock) {
				conflictCount++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, okCount)
	assert.Equal(t, 2, conflictCount)
	assert.Equal(t, int64(0), store.items[testItemID].Quantity)
	assert.Len(t, store.movements, 3)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Record — invalidación de caché
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_Exito_InvalidaCacheDelUsuario(t *testing.T) {
	store := newMemStore(testItem(10))
	cache := newFakeCache()
	uc := stock.NewRecordMovementUseCase(&fakeTxRunner{store: store}, cache)

	_, err := uc.Record(context.Background(), entradaInput(5))
	require.NoError(t, err)
	assert.Equal(t, []string{testUserID}, cache.invalidated)
}

func TestRecord_Fallo_NoInvalidaCache(t *testing.T) {
	store := newMemStore(testItem(3))
	cache := newFakeCache()
	uc := stock.NewRecordMovementUseCase(&fakeTxRunner{store: store}, cache)

	_, err := uc.Record(context.Background(), saidaInput(-5, "Ana Paula"))
	require.Error(t, err)
	assert.Empty(t, cache.invalidated, "sin mutación no hay nada que invalidar")
}
