package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/menuqr-api/internal/application/dto"
	"github.com/jhoicas/menuqr-api/internal/application/tenant"
	"github.com/jhoicas/menuqr-api/internal/domain"
	"github.com/jhoicas/menuqr-api/internal/domain/entity"
	"github.com/jhoicas/menuqr-api/internal/domain/repository"
)

// UncategorizedSection nombre de la sección para productos sin categoría.
const UncategorizedSection = "Otros"

// MenuResult resultado del menú público. Menu solo viene con Outcome Found.
type MenuResult struct {
	Outcome tenant.Outcome
	Query   string
	Menu    *dto.PublicMenuResponse
}

// PublicUseCase menú público y contadores de visitas/compartidos.
type PublicUseCase struct {
	resolver   *tenant.Resolver
	businesses repository.BusinessRepository
	bizCats    repository.BusinessCategoryRepository
	categories repository.CategoryRepository
	products   repository.ProductRepository
	log        zerolog.Logger
}

// NewPublicUseCase construye el caso de uso.
func NewPublicUseCase(
	resolver *tenant.Resolver,
	businesses repository.BusinessRepository,
	bizCats repository.BusinessCategoryRepository,
	categories repository.CategoryRepository,
	products repository.ProductRepository,
	log zerolog.Logger,
) *PublicUseCase {
	return &PublicUseCase{
		resolver:   resolver,
		businesses: businesses,
		bizCats:    bizCats,
		categories: categories,
		products:   products,
		log:        log,
	}
}

// Menu resuelve el negocio y, si está activo, registra la visita y arma el menú.
// Inactivo y no encontrado no son errores: se informan con Outcome.
func (uc *PublicUseCase) Menu(ctx context.Context, raw string) (*MenuResult, error) {
	res, err := uc.resolver.Resolve(ctx, raw)
	if err != nil {
		return nil, err
	}
	out := &MenuResult{Outcome: res.Outcome, Query: res.Query}
	if res.Outcome != tenant.Found {
		uc.log.Debug().Str("query", res.Query).Str("outcome", res.Outcome.String()).Msg("menú público no disponible")
		return out, nil
	}

	b := res.Business
	views, err := uc.businesses.IncrementViews(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	b.Views = views

	menu := &dto.PublicMenuResponse{Business: toPublicBusiness(b)}
	if bc, err := uc.bizCats.GetByID(ctx, b.CategoryID); err != nil {
		return nil, err
	} else if bc != nil {
		menu.Category = bc.Name
	}
	if menu.Sections, err = uc.sections(ctx, b.ID); err != nil {
		return nil, err
	}
	out.Menu = menu
	return out, nil
}

// Share registra un compartido y devuelve el nuevo total.
func (uc *PublicUseCase) Share(ctx context.Context, raw string) (*dto.ShareResponse, error) {
	res, err := uc.resolver.Resolve(ctx, raw)
	if err != nil {
		return nil, err
	}
	switch res.Outcome {
	case tenant.Inactive:
		return nil, domain.ErrInactiveTenant
	case tenant.NotFound:
		return nil, domain.ErrNotFound
	}
	shares, err := uc.businesses.IncrementShares(ctx, res.Business.ID)
	if err != nil {
		return nil, err
	}
	return &dto.ShareResponse{Shares: shares}, nil
}

// sections agrupa los productos disponibles por sección, en el orden de las secciones.
// Las secciones vacías se omiten; los productos sin sección van al final.
func (uc *PublicUseCase) sections(ctx context.Context, businessID string) ([]dto.PublicSection, error) {
	cats, err := uc.categories.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	products, err := uc.products.ListByBusiness(ctx, businessID, 0, 0)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string][]dto.PublicProduct)
	for _, p := range products {
		if !p.Available {
			continue
		}
		byCategory[p.CategoryID] = append(byCategory[p.CategoryID], toPublicProduct(p))
	}

	sections := make([]dto.PublicSection, 0, len(cats)+1)
	for _, c := range cats {
		items, ok := byCategory[c.ID]
		if !ok {
			continue
		}
		sections = append(sections, dto.PublicSection{ID: c.ID, Name: c.Name, Products: items})
		delete(byCategory, c.ID)
	}
	// sin sección, o con una sección que ya no existe
	var rest []dto.PublicProduct
	for _, p := range products {
		if !p.Available {
			continue
		}
		if _, orphan := byCategory[p.CategoryID]; orphan {
			rest = append(rest, toPublicProduct(p))
		}
	}
	if len(rest) > 0 {
		sections = append(sections, dto.PublicSection{Name: UncategorizedSection, Products: rest})
	}
	return sections, nil
}

func toPublicBusiness(b *entity.Business) dto.PublicBusiness {
	return dto.PublicBusiness{
		ID:          b.ID,
		Name:        b.Name,
		Slug:        b.Slug,
		Phone:       b.Phone,
		WhatsApp:    b.WhatsApp,
		Address:     b.Address,
		Description: b.Description,
		LogoURL:     b.LogoURL,
		QRCodeURL:   b.QRCodeURL,
		Views:       b.Views,
	}
}

func toPublicProduct(p *entity.Product) dto.PublicProduct {
	return dto.PublicProduct{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
	}
}
