package usecase

import (
	"github.com/google/uuid"
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// ProfessionalUseCase casos de uso para profesionales (compartidos entre usuarios).
// Los movimientos referencian al profesional por nombre: borrarlo o renombrarlo
// no reescribe el historial del ledger.
type ProfessionalUseCase struct {
	repo repository.ProfessionalRepository
}

// NewProfessionalUseCase construye el caso de uso.
func NewProfessionalUseCase(repo repository.ProfessionalRepository) *ProfessionalUseCase {
	return &ProfessionalUseCase{repo: repo}
}

// Create registra un profesional.
func (uc *ProfessionalUseCase) Create(in dto.CreateProfessionalRequest) (*dto.ProfessionalResponse, error) {
	professional := &entity.Professional{
		ID:   uuid.New().String(),
		Name: in.Name,
	}
	if err := uc.repo.Create(professional); err != nil {
		return nil, err
	}
	return toProfessionalResponse(professional), nil
}

// List devuelve todos los profesionales ordenados por nombre.
func (uc *ProfessionalUseCase) List() ([]dto.ProfessionalResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProfessionalResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProfessionalResponse(p))
	}
	return items, nil
}

// Delete elimina un profesional.
func (uc *ProfessionalUseCase) Delete(id string) error {
	professional, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if professional == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProfessionalResponse(p *entity.Professional) *dto.ProfessionalResponse {
	if p == nil {
		return nil
	}
	return &dto.ProfessionalResponse{ID: p.ID, Name: p.Name}
}
