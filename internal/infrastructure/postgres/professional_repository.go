package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.ProfessionalRepository = (*ProfessionalRepo)(nil)

// ProfessionalRepo implementación de ProfessionalRepository sobre PostgreSQL.
type ProfessionalRepo struct {
	q Querier
}

// NewProfessionalRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProfessionalRepository(q Querier) *ProfessionalRepo {
	return &ProfessionalRepo{q: q}
}

// Create persiste un nuevo profesional.
func (r *ProfessionalRepo) Create(professional *entity.Professional) error {
	query := `INSERT INTO professionals (id, name) VALUES ($1, $2)`
	_, err := r.q.Exec(context.Background(), query, professional.ID, professional.Name)
	if err != nil {
		return fmt.Errorf("insert professional: %w", err)
	}
	return nil
}

// GetByID obtiene un profesional por ID. Devuelve nil (sin error) si no existe.
func (r *ProfessionalRepo) GetByID(id string) (*entity.Professional, error) {
	query := `SELECT id, name FROM professionals WHERE id = $1`
	var p entity.Professional
	err := r.q.QueryRow(context.Background(), query, id).Scan(&p.ID, &p.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get professional: %w", err)
	}
	return &p, nil
}

// List devuelve todos los profesionales ordenados por nombre ascendente.
func (r *ProfessionalRepo) List() ([]*entity.Professional, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name FROM professionals ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list professionals: %w", err)
	}
	defer rows.Close()

	var list []*entity.Professional
	for rows.Next() {
		var p entity.Professional
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("scan professional: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un profesional. El historial de movimientos lo referencia por
// nombre, así que no se toca.
func (r *ProfessionalRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM professionals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete professional: %w", err)
	}
	return nil
}
