package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para la lista de compras.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. Status nace en "none" y WasPurchased en false.
// Installments solo se guarda cuando PaymentType es installments (default 1).
func (uc *ProductUseCase) Create(userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.PaymentType != entity.PaymentTypeCash && in.PaymentType != entity.PaymentTypeInstallments {
		return nil, domain.ErrInvalidInput
	}
	var installments *int
	if in.PaymentType == entity.PaymentTypeInstallments {
		n := 1
		if in.Installments != nil && *in.Installments > 0 {
			n = *in.Installments
		}
		installments = &n
	}
	product := &entity.Product{
		ID:           uuid.New().String(),
		UserID:       userID,
		Name:         in.Name,
		Category:     in.Category,
		Link:         in.Link,
		Observation:  in.Observation,
		Value:        in.Value,
		Status:       entity.ProductStatusNone,
		PaymentType:  in.PaymentType,
		Installments: installments,
		WasPurchased: false,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto del usuario.
func (uc *ProductUseCase) GetByID(userID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista los productos del usuario.
func (uc *ProductUseCase) List(userID string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update actualiza un producto (merge parcial). Cambiar PaymentType a cash
// descarta Installments.
func (uc *ProductUseCase) Update(userID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.UserID != userID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Link != nil {
		product.Link = *in.Link
	}
	if in.Observation != nil {
		product.Observation = *in.Observation
	}
	if in.Value != nil {
		product.Value = *in.Value
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.ProductStatusNone, entity.ProductStatusPending,
			entity.ProductStatusApproved, entity.ProductStatusRejected:
			product.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.PaymentType != nil {
		switch *in.PaymentType {
		case entity.PaymentTypeCash:
			product.PaymentType = entity.PaymentTypeCash
			product.Installments = nil
		case entity.PaymentTypeInstallments:
			product.PaymentType = entity.PaymentTypeInstallments
			if product.Installments == nil {
				n := 1
				product.Installments = &n
			}
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Installments != nil && product.PaymentType == entity.PaymentTypeInstallments {
		if *in.Installments <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Installments = in.Installments
	}
	if in.WasPurchased != nil {
		product.WasPurchased = *in.WasPurchased
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto del usuario.
func (uc *ProductUseCase) Delete(userID, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil || product.UserID != userID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		UserID:       p.UserID,
		Name:         p.Name,
		Category:     p.Category,
		Link:         p.Link,
		Observation:  p.Observation,
		Value:        p.Value,
		Status:       p.Status,
		PaymentType:  p.PaymentType,
		Installments: p.Installments,
		WasPurchased: p.WasPurchased,
		CreatedAt:    p.CreatedAt,
	}
}
