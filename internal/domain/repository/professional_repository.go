package repository

import "github.com/jhoicas/estoque-api/internal/domain/entity"

// ProfessionalRepository define el puerto de persistencia para Professional (DIP).
// Los profesionales son compartidos entre todos los usuarios.
type ProfessionalRepository interface {
	Create(professional *entity.Professional) error
	GetByID(id string) (*entity.Professional, error)
	// List devuelve todos los profesionales ordenados por nombre ascendente.
	List() ([]*entity.Professional, error)
	Delete(id string) error
}
