package repository

import (
	"context"

	"github.com/jhoicas/menuqr-api/internal/domain/entity"
)

// BusinessRepository define el puerto de persistencia para Business (DIP).
// Los Get*/Match* devuelven (nil, nil) cuando no hay coincidencia.
type BusinessRepository interface {
	// Create persiste el negocio. Slug y email duplicados deben rechazarse en el almacén
	// con *domain.ConflictError (no con un check-then-act en la aplicación).
	Create(ctx context.Context, b *entity.Business) error
	GetByID(ctx context.Context, id string) (*entity.Business, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Business, error)
	GetByEmail(ctx context.Context, email string) (*entity.Business, error)
	// MatchSlugFold y MatchNameFold comparan sin distinguir mayúsculas el valor completo
	// (equivalente a una regex anclada ^valor$ insensible a mayúsculas, con el valor escapado).
	MatchSlugFold(ctx context.Context, value string) (*entity.Business, error)
	MatchNameFold(ctx context.Context, value string) (*entity.Business, error)
	// Update modifica campos editables; nunca slug, qr_code_url ni contadores.
	Update(ctx context.Context, b *entity.Business) error
	UpdateQRCode(ctx context.Context, id, qrURL string) error
	// IncrementViews/IncrementShares son atómicos en el almacén y devuelven el nuevo valor.
	IncrementViews(ctx context.Context, id string) (int64, error)
	IncrementShares(ctx context.Context, id string) (int64, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Business, error)
	Count(ctx context.Context) (int, error)
	CountByCategory(ctx context.Context, categoryID string) (int, error)
	Delete(ctx context.Context, id string) error
}
