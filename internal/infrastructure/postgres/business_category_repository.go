package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/menuqr-api/internal/domain"
	"github.com/jhoicas/menuqr-api/internal/domain/entity"
	"github.com/jhoicas/menuqr-api/internal/domain/repository"
)

var _ repository.BusinessCategoryRepository = (*BusinessCategoryRepo)(nil)

// BusinessCategoryRepo rubros sobre PostgreSQL.
type BusinessCategoryRepo struct {
	q Querier
}

// NewBusinessCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBusinessCategoryRepository(q Querier) *BusinessCategoryRepo {
	return &BusinessCategoryRepo{q: q}
}

func (r *BusinessCategoryRepo) Create(ctx context.Context, c *entity.BusinessCategory) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO business_categories (id, name, status, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Name, c.Status, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if cerr := conflictFrom(err, func(string) string { return c.Name }); cerr != nil {
			return cerr
		}
		return fmt.Errorf("insert business category: %w", err)
	}
	return nil
}

func (r *BusinessCategoryRepo) GetByID(ctx context.Context, id string) (*entity.BusinessCategory, error) {
	if !isUUID(id) {
		return nil, nil
	}
	var c entity.BusinessCategory
	err := r.q.QueryRow(ctx,
		`SELECT id, name, status, created_at, updated_at FROM business_categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business category: %w", err)
	}
	return &c, nil
}

func (r *BusinessCategoryRepo) Update(ctx context.Context, c *entity.BusinessCategory) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE business_categories SET name = $2, status = $3, updated_at = $4 WHERE id = $1`,
		c.ID, c.Name, c.Status, c.UpdatedAt,
	)
	if err != nil {
		if cerr := conflictFrom(err, func(string) string { return c.Name }); cerr != nil {
			return cerr
		}
		return fmt.Errorf("update business category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BusinessCategoryRepo) List(ctx context.Context) ([]*entity.BusinessCategory, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, status, created_at, updated_at FROM business_categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list business categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.BusinessCategory
	for rows.Next() {
		var c entity.BusinessCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan business category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete falla con ConflictError si un negocio todavía referencia el rubro (ON DELETE RESTRICT).
func (r *BusinessCategoryRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM business_categories WHERE id = $1`, id); err != nil {
		if isForeignKeyViolation(err) {
			return &domain.ConflictError{Field: "category_id", Value: id}
		}
		return fmt.Errorf("delete business category: %w", err)
	}
	return nil
}
