package repository

import (
	"context"

	"github.com/jhoicas/menuqr-api/internal/domain/entity"
)

// BusinessCategoryRepository define el puerto de persistencia para BusinessCategory.
type BusinessCategoryRepository interface {
	Create(ctx context.Context, c *entity.BusinessCategory) error
	GetByID(ctx context.Context, id string) (*entity.BusinessCategory, error)
	Update(ctx context.Context, c *entity.BusinessCategory) error
	List(ctx context.Context) ([]*entity.BusinessCategory, error)
	Delete(ctx context.Context, id string) error
}
