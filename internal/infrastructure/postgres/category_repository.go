package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/menuqr-api/internal/domain/entity"
	"github.com/jhoicas/menuqr-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo secciones del menú sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO categories (id, business_id, name, position, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.BusinessID, c.Name, c.Position, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if cerr := conflictFrom(err, func(string) string { return c.Name }); cerr != nil {
			return cerr
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	if !isUUID(id) {
		return nil, nil
	}
	var c entity.Category
	err := r.q.QueryRow(ctx,
		`SELECT id, business_id, name, position, created_at, updated_at FROM categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.BusinessID, &c.Name, &c.Position, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepo) ListByBusiness(ctx context.Context, businessID string) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, business_id, name, position, created_at, updated_at
		FROM categories WHERE business_id = $1 ORDER BY position, name`, businessID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.BusinessID, &c.Name, &c.Position, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) DeleteByBusiness(ctx context.Context, businessID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM categories WHERE business_id = $1`, businessID); err != nil {
		return fmt.Errorf("delete categories by business: %w", err)
	}
	return nil
}
