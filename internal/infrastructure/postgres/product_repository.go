package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/menuqr-api/internal/domain"
	"github.com/jhoicas/menuqr-api/internal/domain/entity"
	"github.com/jhoicas/menuqr-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, business_id, COALESCE(category_id::text, ''), name, description, price, image_url, available, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. category_id vacío se guarda como NULL.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (id, business_id, category_id, name, description, price, image_url, available, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.BusinessID, p.CategoryID, p.Name, p.Description, p.Price, p.ImageURL, p.Available, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewValidationError("category_id", "no existe")
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if !isUUID(id) {
		return nil, nil
	}
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET category_id = NULLIF($2, '')::uuid, name = $3, description = $4, price = $5,
			image_url = $6, available = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.CategoryID, p.Name, p.Description, p.Price, p.ImageURL, p.Available, p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewValidationError("category_id", "no existe")
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByBusiness lista productos del negocio con paginación (limit 0 = todos).
func (r *ProductRepo) ListByBusiness(ctx context.Context, businessID string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE business_id = $1 ORDER BY name, id LIMIT NULLIF($2::int, 0) OFFSET $3`
	rows, err := r.q.Query(ctx, query, businessID, limitArg(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProductRepo) ClearCategory(ctx context.Context, categoryID string) error {
	if _, err := r.q.Exec(ctx, `UPDATE products SET category_id = NULL, updated_at = now() WHERE category_id = $1`, categoryID); err != nil {
		return fmt.Errorf("clear product category: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) DeleteByBusiness(ctx context.Context, businessID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM products WHERE business_id = $1`, businessID); err != nil {
		return fmt.Errorf("delete products by business: %w", err)
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.BusinessID, &p.CategoryID, &p.Name, &p.Description, &p.Price,
		&p.ImageURL, &p.Available, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
