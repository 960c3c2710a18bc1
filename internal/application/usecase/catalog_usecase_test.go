package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/menuqr-api/internal/application/dto"
	"github.com/jhoicas/menuqr-api/internal/application/usecase"
	"github.com/jhoicas/menuqr-api/internal/domain"
	"github.com/jhoicas/menuqr-api/internal/infrastructure/memory"
	"github.com/jhoicas/menuqr-api/pkg/validation"
)

func newCatalog() (*memory.Store, *usecase.CatalogUseCase) {
	store := memory.NewStore()
	return store, usecase.NewCatalogUseCase(store.Categories(), store.Products(), store, validation.New())
}

func TestCatalog_SeccionesYProductos(t *testing.T) {
	_, uc := newCatalog()
	ctx := context.Background()

	drinks, err := uc.CreateCategory(ctx, "biz-1", dto.CreateCategoryRequest{Name: "Bebidas", Position: 2})
	require.NoError(t, err)
	_, err = uc.CreateCategory(ctx, "biz-1", dto.CreateCategoryRequest{Name: "Entradas", Position: 1})
	require.NoError(t, err)

	_, err = uc.CreateCategory(ctx, "biz-1", dto.CreateCategoryRequest{Name: "bebidas"})
	assert.ErrorIs(t, err, domain.ErrConflict, "nombre único por negocio")
	_, err = uc.CreateCategory(ctx, "biz-2", dto.CreateCategoryRequest{Name: "Bebidas"})
	assert.NoError(t, err, "otro negocio puede usar el mismo nombre")

	cats, err := uc.ListCategories(ctx, "biz-1")
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "Entradas", cats[0].Name)

	p, err := uc.CreateProduct(ctx, "biz-1", dto.CreateProductRequest{
		Name: "Limonada", CategoryID: drinks.ID, Price: decimal.RequireFromString("4500.50"),
	})
	require.NoError(t, err)
	assert.True(t, p.Available)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("4500.5")))
}

func TestCatalog_Validaciones(t *testing.T) {
	_, uc := newCatalog()
	ctx := context.Background()
	foreign, err := uc.CreateCategory(ctx, "biz-2", dto.CreateCategoryRequest{Name: "Ajena"})
	require.NoError(t, err)

	_, err = uc.CreateProduct(ctx, "biz-1", dto.CreateProductRequest{Name: "X", Price: decimal.NewFromInt(-1)})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "price", verr.Field)

	_, err = uc.CreateProduct(ctx, "biz-1", dto.CreateProductRequest{Name: "X", CategoryID: foreign.ID})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "category_id", verr.Field)

	_, err = uc.CreateProduct(ctx, "biz-1", dto.CreateProductRequest{Price: decimal.NewFromInt(1)})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
}

func TestCatalog_AislamientoEntreNegocios(t *testing.T) {
	_, uc := newCatalog()
	ctx := context.Background()
	p, err := uc.CreateProduct(ctx, "biz-1", dto.CreateProductRequest{Name: "Pan"})
	require.NoError(t, err)

	name := "Robado"
	_, err = uc.UpdateProduct(ctx, "biz-2", p.ID, dto.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.DeleteProduct(ctx, "biz-2", p.ID), domain.ErrNotFound)

	list, err := uc.ListProducts(ctx, "biz-2", dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

func TestCatalog_UpdateYDelete(t *testing.T) {
	_, uc := newCatalog()
	ctx := context.Background()
	p, err := uc.CreateProduct(ctx, "biz-1", dto.CreateProductRequest{Name: "Pan", Price: decimal.NewFromInt(1000)})
	require.NoError(t, err)

	price := decimal.NewFromInt(1200)
	off := false
	out, err := uc.UpdateProduct(ctx, "biz-1", p.ID, dto.UpdateProductRequest{Price: &price, Available: &off})
	require.NoError(t, err)
	assert.True(t, out.Price.Equal(price))
	assert.False(t, out.Available)
	assert.Equal(t, "Pan", out.Name)

	require.NoError(t, uc.DeleteProduct(ctx, "biz-1", p.ID))
	list, err := uc.ListProducts(ctx, "biz-1", dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

func TestCatalog_BorrarSeccionDejaProductosSinSeccion(t *testing.T) {
	store, uc := newCatalog()
	ctx := context.Background()
	sec, err := uc.CreateCategory(ctx, "biz-1", dto.CreateCategoryRequest{Name: "Postres"})
	require.NoError(t, err)
	p, err := uc.CreateProduct(ctx, "biz-1", dto.CreateProductRequest{Name: "Flan", CategoryID: sec.ID})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.DeleteCategory(ctx, "biz-2", sec.ID), domain.ErrNotFound)
	require.NoError(t, uc.DeleteCategory(ctx, "biz-1", sec.ID))

	got, err := store.Products().GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.CategoryID)
}
