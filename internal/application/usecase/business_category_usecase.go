package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/menuqr-api/internal/application/dto"
	"github.com/jhoicas/menuqr-api/internal/domain"
	"github.com/jhoicas/menuqr-api/internal/domain/entity"
	"github.com/jhoicas/menuqr-api/internal/domain/repository"
	"github.com/jhoicas/menuqr-api/pkg/validation"
)

// BusinessCategoryUseCase CRUD de rubros (administrador).
type BusinessCategoryUseCase struct {
	repo       repository.BusinessCategoryRepository
	businesses repository.BusinessRepository
	validator  *validation.Validator
}

// NewBusinessCategoryUseCase construye el caso de uso.
func NewBusinessCategoryUseCase(repo repository.BusinessCategoryRepository, businesses repository.BusinessRepository, v *validation.Validator) *BusinessCategoryUseCase {
	return &BusinessCategoryUseCase{repo: repo, businesses: businesses, validator: v}
}

// Create crea un rubro. Status por defecto true.
func (uc *BusinessCategoryUseCase) Create(ctx context.Context, in dto.BusinessCategoryRequest) (*dto.BusinessCategoryResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := uc.validator.Validate(in); err != nil {
		return nil, err
	}
	now := time.Now()
	c := &entity.BusinessCategory{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Status:    in.Status == nil || *in.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toBusinessCategoryResponse(c), nil
}

// List lista todos los rubros ordenados por nombre.
func (uc *BusinessCategoryUseCase) List(ctx context.Context) ([]dto.BusinessCategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BusinessCategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toBusinessCategoryResponse(c))
	}
	return items, nil
}

// Update renombra o activa/desactiva un rubro.
func (uc *BusinessCategoryUseCase) Update(ctx context.Context, id string, in dto.BusinessCategoryRequest) (*dto.BusinessCategoryResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := uc.validator.Validate(in); err != nil {
		return nil, err
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.Name = in.Name
	if in.Status != nil {
		c.Status = *in.Status
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toBusinessCategoryResponse(c), nil
}

// Delete elimina un rubro. Si hay negocios que lo usan devuelve *domain.ConflictError.
func (uc *BusinessCategoryUseCase) Delete(ctx context.Context, id string) error {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	n, err := uc.businesses.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return &domain.ConflictError{Field: "category_id", Value: id}
	}
	return uc.repo.Delete(ctx, id)
}

func toBusinessCategoryResponse(c *entity.BusinessCategory) *dto.BusinessCategoryResponse {
	return &dto.BusinessCategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
