package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/menuqr-api/internal/domain"
	"github.com/jhoicas/menuqr-api/internal/domain/entity"
	"github.com/jhoicas/menuqr-api/internal/domain/repository"
)

var (
	_ repository.BusinessCategoryRepository = (*BusinessCategoryRepo)(nil)
	_ repository.CategoryRepository         = (*CategoryRepo)(nil)
	_ repository.ProductRepository          = (*ProductRepo)(nil)
)

// BusinessCategoryRepo rubros en memoria.
type BusinessCategoryRepo struct {
	s *Store
}

func (r *BusinessCategoryRepo) Create(_ context.Context, c *entity.BusinessCategory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.businessCategories {
		if strings.EqualFold(existing.Name, c.Name) {
			return &domain.ConflictError{Field: "name", Value: c.Name}
		}
	}
	r.s.businessCategories[c.ID] = *c
	return nil
}

func (r *BusinessCategoryRepo) GetByID(_ context.Context, id string) (*entity.BusinessCategory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.businessCategories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *BusinessCategoryRepo) Update(_ context.Context, c *entity.BusinessCategory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.businessCategories[c.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, existing := range r.s.businessCategories {
		if id != c.ID && strings.EqualFold(existing.Name, c.Name) {
			return &domain.ConflictError{Field: "name", Value: c.Name}
		}
	}
	r.s.businessCategories[c.ID] = *c
	return nil
}

func (r *BusinessCategoryRepo) List(_ context.Context) ([]*entity.BusinessCategory, error) {
	r.s.mu.RLock()
	list := make([]*entity.BusinessCategory, 0, len(r.s.businessCategories))
	for _, c := range r.s.businessCategories {
		c := c
		list = append(list, &c)
	}
	r.s.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *BusinessCategoryRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.businessCategories, id)
	return nil
}

// CategoryRepo secciones del menú en memoria.
type CategoryRepo struct {
	s *Store
}

func (r *CategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.categories {
		if existing.BusinessID == c.BusinessID && strings.EqualFold(existing.Name, c.Name) {
			return &domain.ConflictError{Field: "name", Value: c.Name}
		}
	}
	r.s.categories[c.ID] = *c
	return nil
}

func (r *CategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CategoryRepo) ListByBusiness(_ context.Context, businessID string) ([]*entity.Category, error) {
	r.s.mu.RLock()
	var list []*entity.Category
	for _, c := range r.s.categories {
		if c.BusinessID == businessID {
			c := c
			list = append(list, &c)
		}
	}
	r.s.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool {
		if list[i].Position != list[j].Position {
			return list[i].Position < list[j].Position
		}
		return list[i].Name < list[j].Name
	})
	return list, nil
}

func (r *CategoryRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.categories, id)
	return nil
}

func (r *CategoryRepo) DeleteByBusiness(_ context.Context, businessID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, c := range r.s.categories {
		if c.BusinessID == businessID {
			delete(r.s.categories, id)
		}
	}
	return nil
}

// ProductRepo productos en memoria.
type ProductRepo struct {
	s *Store
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[p.ID] = *p
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.products[p.ID] = *p
	return nil
}

func (r *ProductRepo) ListByBusiness(_ context.Context, businessID string, limit, offset int) ([]*entity.Product, error) {
	r.s.mu.RLock()
	var list []*entity.Product
	for _, p := range r.s.products {
		if p.BusinessID == businessID {
			p := p
			list = append(list, &p)
		}
	}
	r.s.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
	return page(list, limit, offset), nil
}

func (r *ProductRepo) ClearCategory(_ context.Context, categoryID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, p := range r.s.products {
		if p.CategoryID == categoryID {
			p.CategoryID = ""
			r.s.products[id] = p
		}
	}
	return nil
}

func (r *ProductRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.products, id)
	return nil
}

func (r *ProductRepo) DeleteByBusiness(_ context.Context, businessID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, p := range r.s.products {
		if p.BusinessID == businessID {
			delete(r.s.products, id)
		}
	}
	return nil
}
