package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

const stockItemColumns = `id, user_id, name, category, quantity, min_quantity, supplier, sku,
		unit_value, observation, needs_to_buy, was_purchased, created_at, updated_at`

// StockItemRepo implementación de StockItemRepository sobre PostgreSQL (usable con pool o tx).
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

// Create persiste un nuevo ítem de estoque.
func (r *StockItemRepo) Create(item *entity.StockItem) error {
	query := `
		INSERT INTO stock_items (` + stockItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.UserID, item.Name, item.Category, item.Quantity, item.MinQuantity,
		item.Supplier, item.SKU, item.UnitValue, item.Observation,
		item.NeedsToBuy, item.WasPurchased, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID. Devuelve nil (sin error) si no existe.
func (r *StockItemRepo) GetByID(id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE id = $1`
	item, err := r.scanOne(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get stock item: %w", err)
	}
	return item, nil
}

// GetForUpdate obtiene el ítem y bloquea la fila (SELECT FOR UPDATE).
// Usar solo dentro de una transacción; fuera de una tx el lock no sobrevive.
func (r *StockItemRepo) GetForUpdate(id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE id = $1 FOR UPDATE`
	item, err := r.scanOne(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get stock item for update: %w", err)
	}
	return item, nil
}

// ListByUser lista los ítems de un usuario, más recientes primero.
func (r *StockItemRepo) ListByUser(userID string) ([]*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockItem
	for rows.Next() {
		var item entity.StockItem
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Name, &item.Category, &item.Quantity, &item.MinQuantity,
			&item.Supplier, &item.SKU, &item.UnitValue, &item.Observation,
			&item.NeedsToBuy, &item.WasPurchased, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// Update actualiza todos los campos del ítem excepto Quantity.
func (r *StockItemRepo) Update(item *entity.StockItem) error {
	query := `
		UPDATE stock_items
		SET name = $2, category = $3, min_quantity = $4, supplier = $5, sku = $6,
		    unit_value = $7, observation = $8, needs_to_buy = $9, was_purchased = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Category, item.MinQuantity, item.Supplier, item.SKU,
		item.UnitValue, item.Observation, item.NeedsToBuy, item.WasPurchased, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock item: %w", err)
	}
	return nil
}

// UpdateQuantity actualiza cantidad y updatedAt. Solo el ledger debe llamarlo,
// dentro de la transacción que también inserta el movimiento.
func (r *StockItemRepo) UpdateQuantity(id string, quantity int64, updatedAt time.Time) error {
	query := `UPDATE stock_items SET quantity = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, quantity, updatedAt)
	if err != nil {
		return fmt.Errorf("update stock item quantity: %w", err)
	}
	return nil
}

// Delete elimina un ítem. El historial de movimientos no se borra.
func (r *StockItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock item: %w", err)
	}
	return nil
}

func (r *StockItemRepo) scanOne(row pgx.Row) (*entity.StockItem, error) {
	var item entity.StockItem
	err := row.Scan(
		&item.ID, &item.UserID, &item.Name, &item.Category, &item.Quantity, &item.MinQuantity,
		&item.Supplier, &item.SKU, &item.UnitValue, &item.Observation,
		&item.NeedsToBuy, &item.WasPurchased, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}
