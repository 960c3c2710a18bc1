package repository

import (
	"context"

	"github.com/jhoicas/menuqr-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para las secciones del menú.
type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	ListByBusiness(ctx context.Context, businessID string) ([]*entity.Category, error)
	Delete(ctx context.Context, id string) error
	DeleteByBusiness(ctx context.Context, businessID string) error
}
