package repository

import "github.com/jhoicas/estoque-api/internal/domain/entity"

// SupplyRepository define el puerto de persistencia para Supply (DIP).
type SupplyRepository interface {
	Create(supply *entity.Supply) error
	GetByID(id string) (*entity.Supply, error)
	ListByUser(userID string) ([]*entity.Supply, error)
	Update(supply *entity.Supply) error
	Delete(id string) error
}
