package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/menuqr-api/internal/domain"
	"github.com/jhoicas/menuqr-api/internal/domain/entity"
	"github.com/jhoicas/menuqr-api/internal/domain/repository"
)

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// BusinessRepo implementación en memoria de repository.BusinessRepository.
type BusinessRepo struct {
	s *Store
}

// Create inserta el negocio rechazando slug o email repetidos (equivalente a los índices UNIQUE).
func (r *BusinessRepo) Create(_ context.Context, b *entity.Business) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.businesses {
		if existing.Slug == b.Slug {
			return &domain.ConflictError{Field: "slug", Value: b.Slug}
		}
		if b.Email != "" && strings.EqualFold(existing.Email, b.Email) {
			return &domain.ConflictError{Field: "email", Value: b.Email}
		}
	}
	if _, ok := r.s.businesses[b.ID]; ok {
		return &domain.ConflictError{Field: "id", Value: b.ID}
	}
	r.s.businesses[b.ID] = *b
	return nil
}

func (r *BusinessRepo) GetByID(_ context.Context, id string) (*entity.Business, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	b, ok := r.s.businesses[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *BusinessRepo) GetBySlug(_ context.Context, slug string) (*entity.Business, error) {
	return r.first(func(b *entity.Business) bool { return b.Slug == slug }), nil
}

func (r *BusinessRepo) GetByEmail(_ context.Context, email string) (*entity.Business, error) {
	return r.first(func(b *entity.Business) bool { return strings.EqualFold(b.Email, email) }), nil
}

func (r *BusinessRepo) MatchSlugFold(_ context.Context, value string) (*entity.Business, error) {
	return r.first(func(b *entity.Business) bool { return strings.EqualFold(b.Slug, value) }), nil
}

func (r *BusinessRepo) MatchNameFold(_ context.Context, value string) (*entity.Business, error) {
	return r.first(func(b *entity.Business) bool { return strings.EqualFold(b.Name, value) }), nil
}

// first devuelve la coincidencia más antigua, igual que ORDER BY created_at LIMIT 1.
func (r *BusinessRepo) first(match func(*entity.Business) bool) *entity.Business {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var found []*entity.Business
	for _, b := range r.s.businesses {
		b := b
		if match(&b) {
			found = append(found, &b)
		}
	}
	if len(found) == 0 {
		return nil
	}
	sort.Slice(found, func(i, j int) bool {
		if !found[i].CreatedAt.Equal(found[j].CreatedAt) {
			return found[i].CreatedAt.Before(found[j].CreatedAt)
		}
		return found[i].ID < found[j].ID
	})
	return found[0]
}

// Update reemplaza los campos editables. Slug, QR y contadores se conservan.
func (r *BusinessRepo) Update(_ context.Context, b *entity.Business) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.businesses[b.ID]
	if !ok {
		return domain.ErrNotFound
	}
	for id, existing := range r.s.businesses {
		if id != b.ID && b.Email != "" && strings.EqualFold(existing.Email, b.Email) {
			return &domain.ConflictError{Field: "email", Value: b.Email}
		}
	}
	current.Name = b.Name
	current.CategoryID = b.CategoryID
	current.Email = b.Email
	current.Phone = b.Phone
	current.WhatsApp = b.WhatsApp
	current.Address = b.Address
	current.Description = b.Description
	current.LogoURL = b.LogoURL
	current.PasswordHash = b.PasswordHash
	current.Status = b.Status
	current.UpdatedAt = b.UpdatedAt
	r.s.businesses[b.ID] = current
	return nil
}

func (r *BusinessRepo) UpdateQRCode(_ context.Context, id, qrURL string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.businesses[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.QRCodeURL = qrURL
	b.UpdatedAt = time.Now()
	r.s.businesses[id] = b
	return nil
}

func (r *BusinessRepo) IncrementViews(_ context.Context, id string) (int64, error) {
	return r.increment(id, func(b *entity.Business) *int64 { return &b.Views })
}

func (r *BusinessRepo) IncrementShares(_ context.Context, id string) (int64, error) {
	return r.increment(id, func(b *entity.Business) *int64 { return &b.Shares })
}

func (r *BusinessRepo) increment(id string, field func(*entity.Business) *int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.businesses[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	counter := field(&b)
	*counter++
	r.s.businesses[id] = b
	return *counter, nil
}

func (r *BusinessRepo) List(_ context.Context, limit, offset int) ([]*entity.Business, error) {
	r.s.mu.RLock()
	list := make([]*entity.Business, 0, len(r.s.businesses))
	for _, b := range r.s.businesses {
		b := b
		list = append(list, &b)
	}
	r.s.mu.RUnlock()
	sortBusinesses(list)
	return page(list, limit, offset), nil
}

func (r *BusinessRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.businesses), nil
}

func (r *BusinessRepo) CountByCategory(_ context.Context, categoryID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, b := range r.s.businesses {
		if b.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (r *BusinessRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.businesses, id)
	return nil
}
