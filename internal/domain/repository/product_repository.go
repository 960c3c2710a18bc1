package repository

import (
	"context"

	"github.com/jhoicas/menuqr-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	// ListByBusiness con limit <= 0 devuelve todos.
	ListByBusiness(ctx context.Context, businessID string, limit, offset int) ([]*entity.Product, error)
	// ClearCategory deja sin sección los productos de una categoría eliminada.
	ClearCategory(ctx context.Context, categoryID string) error
	Delete(ctx context.Context, id string) error
	DeleteByBusiness(ctx context.Context, businessID string) error
}
