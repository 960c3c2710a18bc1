// Package memory implementa los puertos de persistencia en proceso (DB_DRIVER=memory y tests).
// Respeta los mismos contratos que postgres: unicidad de slug/email en el almacén, incrementos
// atómicos de contadores y borrado en cascada dentro de RunCatalog.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/menuqr-api/internal/application/usecase"
	"github.com/jhoicas/menuqr-api/internal/domain/entity"
	"github.com/jhoicas/menuqr-api/internal/domain/repository"
)

var _ usecase.CatalogTxRunner = (*Store)(nil)

// Store contenedor de todas las colecciones, protegido por un único mutex.
type Store struct {
	mu                 sync.RWMutex
	businesses         map[string]entity.Business
	businessCategories map[string]entity.BusinessCategory
	categories         map[string]entity.Category
	products           map[string]entity.Product
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		businesses:         make(map[string]entity.Business),
		businessCategories: make(map[string]entity.BusinessCategory),
		categories:         make(map[string]entity.Category),
		products:           make(map[string]entity.Product),
	}
}

// Businesses devuelve el repositorio de negocios.
func (s *Store) Businesses() *BusinessRepo { return &BusinessRepo{s: s} }

// BusinessCategories devuelve el repositorio de rubros.
func (s *Store) BusinessCategories() *BusinessCategoryRepo { return &BusinessCategoryRepo{s: s} }

// Categories devuelve el repositorio de secciones del menú.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s: s} }

// Products devuelve el repositorio de productos.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// RunCatalog ejecuta fn y, si falla, restaura el estado previo de las colecciones.
// No aísla de escrituras concurrentes hechas fuera de fn.
func (s *Store) RunCatalog(ctx context.Context, fn func(
	businessRepo repository.BusinessRepository,
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
) error) error {
	s.mu.RLock()
	businesses := cloneMap(s.businesses)
	categories := cloneMap(s.categories)
	products := cloneMap(s.products)
	s.mu.RUnlock()

	if err := fn(s.Businesses(), s.Categories(), s.Products()); err != nil {
		s.mu.Lock()
		s.businesses, s.categories, s.products = businesses, categories, products
		s.mu.Unlock()
		return err
	}
	return nil
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// page aplica limit/offset a una lista ya ordenada.
func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// sortBusinesses orden estable: más recientes primero, desempate por id.
func sortBusinesses(list []*entity.Business) {
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID < list[j].ID
	})
}
