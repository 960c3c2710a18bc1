package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/menuqr-api/internal/application/dto"
	"github.com/jhoicas/menuqr-api/internal/domain"
	"github.com/jhoicas/menuqr-api/internal/domain/entity"
	"github.com/jhoicas/menuqr-api/internal/domain/repository"
	"github.com/jhoicas/menuqr-api/pkg/validation"
)

// CatalogUseCase secciones y productos del menú de un negocio.
// Todas las operaciones reciben el businessID del principal autenticado; recursos de otro negocio
// se tratan como inexistentes.
type CatalogUseCase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	tx         CatalogTxRunner
	validator  *validation.Validator
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(categories repository.CategoryRepository, products repository.ProductRepository, tx CatalogTxRunner, v *validation.Validator) *CatalogUseCase {
	return &CatalogUseCase{categories: categories, products: products, tx: tx, validator: v}
}

// CreateCategory crea una sección. El nombre es único dentro del negocio.
func (uc *CatalogUseCase) CreateCategory(ctx context.Context, businessID string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := uc.validator.Validate(in); err != nil {
		return nil, err
	}
	now := time.Now()
	c := &entity.Category{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Name:       in.Name,
		Position:   in.Position,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// ListCategories secciones del negocio por posición.
func (uc *CatalogUseCase) ListCategories(ctx context.Context, businessID string) ([]dto.CategoryResponse, error) {
	list, err := uc.categories.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// DeleteCategory elimina la sección; sus productos quedan sin sección.
func (uc *CatalogUseCase) DeleteCategory(ctx context.Context, businessID, id string) error {
	if _, err := uc.ownedCategory(ctx, businessID, id); err != nil {
		return err
	}
	return uc.tx.RunCatalog(ctx, func(
		_ repository.BusinessRepository,
		categoryRepo repository.CategoryRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := productRepo.ClearCategory(ctx, id); err != nil {
			return err
		}
		return categoryRepo.Delete(ctx, id)
	})
}

// CreateProduct crea un producto. Available por defecto true.
func (uc *CatalogUseCase) CreateProduct(ctx context.Context, businessID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := uc.validator.Validate(in); err != nil {
		return nil, err
	}
	if err := validatePrice(in.Price); err != nil {
		return nil, err
	}
	if in.CategoryID != "" {
		if _, err := uc.ownedCategory(ctx, businessID, in.CategoryID); err != nil {
			return nil, asCategoryFieldError(err)
		}
	}
	now := time.Now()
	p := &entity.Product{
		ID:          uuid.New().String(),
		BusinessID:  businessID,
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Available:   in.Available == nil || *in.Available,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// ListProducts lista productos del negocio con paginación.
func (uc *CatalogUseCase) ListProducts(ctx context.Context, businessID string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.products.ListByBusiness(ctx, businessID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// UpdateProduct actualiza los campos presentes.
func (uc *CatalogUseCase) UpdateProduct(ctx context.Context, businessID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := uc.validator.Validate(in); err != nil {
		return nil, err
	}
	p, err := uc.ownedProduct(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if in.CategoryID != nil {
		if *in.CategoryID != "" {
			if _, err := uc.ownedCategory(ctx, businessID, *in.CategoryID); err != nil {
				return nil, asCategoryFieldError(err)
			}
		}
		p.CategoryID = *in.CategoryID
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.NewValidationError("name", "es requerido")
		}
		p.Name = name
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}
	if in.Price != nil {
		if err := validatePrice(*in.Price); err != nil {
			return nil, err
		}
		p.Price = *in.Price
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	if in.Available != nil {
		p.Available = *in.Available
	}
	p.UpdatedAt = time.Now()
	if err := uc.products.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// DeleteProduct elimina un producto del negocio.
func (uc *CatalogUseCase) DeleteProduct(ctx context.Context, businessID, id string) error {
	if _, err := uc.ownedProduct(ctx, businessID, id); err != nil {
		return err
	}
	return uc.products.Delete(ctx, id)
}

func (uc *CatalogUseCase) ownedCategory(ctx context.Context, businessID, id string) (*entity.Category, error) {
	c, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil || c.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (uc *CatalogUseCase) ownedProduct(ctx context.Context, businessID, id string) (*entity.Product, error) {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || p.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// asCategoryFieldError una sección referenciada que no existe es error de entrada, no 404.
func asCategoryFieldError(err error) error {
	if err == domain.ErrNotFound {
		return domain.NewValidationError("category_id", "no existe")
	}
	return err
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return domain.NewValidationError("price", "no puede ser negativo")
	}
	return nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:         c.ID,
		BusinessID: c.BusinessID,
		Name:       c.Name,
		Position:   c.Position,
		CreatedAt:  c.CreatedAt,
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		BusinessID:  p.BusinessID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Available:   p.Available,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
