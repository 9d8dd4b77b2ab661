package postgres

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

func itemRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "user_id", "name", "category", "quantity", "min_quantity", "supplier", "sku",
		"unit_value", "observation", "needs_to_buy", "was_purchased", "created_at", "updated_at",
	})
}

func TestItemGetByID_Encontrado(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStockItemRepository(mock)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM stock_items WHERE id = \$1`).
		WithArgs("item-1").
		WillReturnRows(itemRows().AddRow(
			"item-1", "user-1", "Shampoo Profesional", entity.CategoryRecorrente,
			int64(10), int64(2), "Proveedor SA", "SH-001",
			decimal.NewFromFloat(45.90), "frasco 500ml", false, false, now, now,
		))

	item, err := repo.GetByID("item-1")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Shampoo Profesional", item.Name)
	assert.Equal(t, int64(10), item.Quantity)
	assert.True(t, item.UnitValue.Equal(decimal.NewFromFloat(45.90)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemGetByID_NoExiste_NilSinError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStockItemRepository(mock)

	mock.ExpectQuery(`SELECT .+ FROM stock_items WHERE id = \$1`).
		WithArgs("no-existe").
		WillReturnError(pgx.ErrNoRows)

	item, err := repo.GetByID("no-existe")
	require.NoError(t, err, "no-encontrado no es un error del repositorio")
	assert.Nil(t, item)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemGetForUpdate_BloqueaFila(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStockItemRepository(mock)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM stock_items WHERE id = \$1 FOR UPDATE`).
		WithArgs("item-1").
		WillReturnRows(itemRows().AddRow(
			"item-1", "user-1", "Shampoo Profesional", entity.CategoryRecorrente,
			int64(10), int64(0), "", "",
			decimal.Zero, "", false, false, now, now,
		))

	item, err := repo.GetForUpdate("item-1")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, int64(10), item.Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemUpdateQuantity(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStockItemRepository(mock)
	now := time.Now()

	mock.ExpectExec(`UPDATE stock_items SET quantity = \$2, updated_at = \$3 WHERE id = \$1`).
		WithArgs("item-1", int64(6), now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.UpdateQuantity("item-1", 6, now))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemUpdate_NoIncluyeQuantity(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStockItemRepository(mock)
	now := time.Now()
	item := &entity.StockItem{
		ID:          "item-1",
		Name:        "Shampoo Premium",
		Category:    entity.CategoryRecorrente,
		MinQuantity: 3,
		UnitValue:   decimal.NewFromFloat(52.00),
		UpdatedAt:   now,
	}

	// El UPDATE general nunca toca la columna quantity: esa pertenece al ledger.
	mock.ExpectExec(`UPDATE stock_items\s+SET name = \$2, category = \$3, min_quantity = \$4`).
		WithArgs(item.ID, item.Name, item.Category, item.MinQuantity, item.Supplier, item.SKU,
			item.UnitValue, item.Observation, item.NeedsToBuy, item.WasPurchased, item.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.Update(item))
	assert.NoError(t, mock.ExpectationsWereMet())
}
