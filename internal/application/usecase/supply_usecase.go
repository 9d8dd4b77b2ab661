package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// SupplyUseCase casos de uso CRUD para suministros.
type SupplyUseCase struct {
	repo repository.SupplyRepository
}

// NewSupplyUseCase construye el caso de uso.
func NewSupplyUseCase(repo repository.SupplyRepository) *SupplyUseCase {
	return &SupplyUseCase{repo: repo}
}

// Create crea un suministro. IsPurchased nace en false.
func (uc *SupplyUseCase) Create(userID string, in dto.CreateSupplyRequest) (*dto.SupplyResponse, error) {
	if !validPriority(in.Priority) {
		return nil, domain.ErrInvalidInput
	}
	supply := &entity.Supply{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        in.Name,
		Priority:    in.Priority,
		Value:       in.Value,
		Observation: in.Observation,
		IsPurchased: false,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(supply); err != nil {
		return nil, err
	}
	return toSupplyResponse(supply), nil
}

// List lista los suministros del usuario.
func (uc *SupplyUseCase) List(userID string) ([]dto.SupplyResponse, error) {
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplyResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplyResponse(s))
	}
	return items, nil
}

// Update actualiza un suministro (merge parcial).
func (uc *SupplyUseCase) Update(userID, id string, in dto.UpdateSupplyRequest) (*dto.SupplyResponse, error) {
	supply, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supply == nil || supply.UserID != userID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		supply.Name = *in.Name
	}
	if in.Priority != nil {
		if !validPriority(*in.Priority) {
			return nil, domain.ErrInvalidInput
		}
		supply.Priority = *in.Priority
	}
	if in.Value != nil {
		supply.Value = *in.Value
	}
	if in.Observation != nil {
		supply.Observation = *in.Observation
	}
	if in.IsPurchased != nil {
		supply.IsPurchased = *in.IsPurchased
	}
	if err := uc.repo.Update(supply); err != nil {
		return nil, err
	}
	return toSupplyResponse(supply), nil
}

// Delete elimina un suministro del usuario.
func (uc *SupplyUseCase) Delete(userID, id string) error {
	supply, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if supply == nil || supply.UserID != userID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func validPriority(p string) bool {
	return p == entity.PriorityLow || p == entity.PriorityMedium || p == entity.PriorityHigh
}

func toSupplyResponse(s *entity.Supply) *dto.SupplyResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplyResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		Name:        s.Name,
		Priority:    s.Priority,
		Value:       s.Value,
		Observation: s.Observation,
		IsPurchased: s.IsPurchased,
		CreatedAt:   s.CreatedAt,
	}
}
