package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/menuqr-api/internal/domain"
	"github.com/jhoicas/menuqr-api/internal/domain/entity"
	"github.com/jhoicas/menuqr-api/internal/domain/repository"
)

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

const businessColumns = `id, name, slug, category_id, email, phone, whatsapp, address, description,
	logo_url, qr_code_url, password_hash, status, views, shares, created_at, updated_at`

// BusinessRepo implementación del puerto BusinessRepository sobre PostgreSQL (usable con pool o tx).
type BusinessRepo struct {
	q Querier
}

// NewBusinessRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBusinessRepository(q Querier) *BusinessRepo {
	return &BusinessRepo{q: q}
}

// Create inserta el negocio. Los índices únicos de slug y lower(email) resuelven las carreras.
func (r *BusinessRepo) Create(ctx context.Context, b *entity.Business) error {
	query := `
		INSERT INTO businesses (` + businessColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		b.ID, b.Name, b.Slug, b.CategoryID, b.Email, b.Phone, b.WhatsApp, b.Address, b.Description,
		b.LogoURL, b.QRCodeURL, b.PasswordHash, b.Status, b.Views, b.Shares, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if cerr := conflictFrom(err, businessValue(b)); cerr != nil {
			return cerr
		}
		if isForeignKeyViolation(err) {
			return domain.NewValidationError("category_id", "no existe")
		}
		return fmt.Errorf("insert business: %w", err)
	}
	return nil
}

func (r *BusinessRepo) GetByID(ctx context.Context, id string) (*entity.Business, error) {
	if !isUUID(id) {
		return nil, nil
	}
	return r.one(ctx, `SELECT `+businessColumns+` FROM businesses WHERE id = $1`, id)
}

func (r *BusinessRepo) GetBySlug(ctx context.Context, slug string) (*entity.Business, error) {
	return r.one(ctx, `SELECT `+businessColumns+` FROM businesses WHERE slug = $1`, slug)
}

func (r *BusinessRepo) GetByEmail(ctx context.Context, email string) (*entity.Business, error) {
	return r.one(ctx, `SELECT `+businessColumns+` FROM businesses WHERE lower(email) = lower($1)`, email)
}

func (r *BusinessRepo) MatchSlugFold(ctx context.Context, value string) (*entity.Business, error) {
	return r.one(ctx, `SELECT `+businessColumns+` FROM businesses WHERE slug ~* $1 ORDER BY created_at, id LIMIT 1`, foldPattern(value))
}

func (r *BusinessRepo) MatchNameFold(ctx context.Context, value string) (*entity.Business, error) {
	return r.one(ctx, `SELECT `+businessColumns+` FROM businesses WHERE name ~* $1 ORDER BY created_at, id LIMIT 1`, foldPattern(value))
}

// Update modifica los campos editables. Slug, QR y contadores no se tocan.
func (r *BusinessRepo) Update(ctx context.Context, b *entity.Business) error {
	query := `
		UPDATE businesses SET name = $2, category_id = $3, email = $4, phone = $5, whatsapp = $6, address = $7,
			description = $8, logo_url = $9, password_hash = $10, status = $11, updated_at = $12
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		b.ID, b.Name, b.CategoryID, b.Email, b.Phone, b.WhatsApp, b.Address,
		b.Description, b.LogoURL, b.PasswordHash, b.Status, b.UpdatedAt,
	)
	if err != nil {
		if cerr := conflictFrom(err, businessValue(b)); cerr != nil {
			return cerr
		}
		if isForeignKeyViolation(err) {
			return domain.NewValidationError("category_id", "no existe")
		}
		return fmt.Errorf("update business: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BusinessRepo) UpdateQRCode(ctx context.Context, id, qrURL string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE businesses SET qr_code_url = $2, updated_at = now() WHERE id = $1`, id, qrURL)
	if err != nil {
		return fmt.Errorf("update business qr: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// IncrementViews suma una visita en el almacén y devuelve el total.
func (r *BusinessRepo) IncrementViews(ctx context.Context, id string) (int64, error) {
	return r.increment(ctx, `UPDATE businesses SET views = views + 1 WHERE id = $1 RETURNING views`, id)
}

// IncrementShares suma un compartido en el almacén y devuelve el total.
func (r *BusinessRepo) IncrementShares(ctx context.Context, id string) (int64, error) {
	return r.increment(ctx, `UPDATE businesses SET shares = shares + 1 WHERE id = $1 RETURNING shares`, id)
}

func (r *BusinessRepo) increment(ctx context.Context, query, id string) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, query, id).Scan(&n); err != nil {
		if isNoRows(err) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("increment counter: %w", err)
	}
	return n, nil
}

// List lista negocios, más recientes primero.
func (r *BusinessRepo) List(ctx context.Context, limit, offset int) ([]*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses ORDER BY created_at DESC, id LIMIT NULLIF($1::int, 0) OFFSET $2`
	rows, err := r.q.Query(ctx, query, limitArg(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Business
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("scan business: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r *BusinessRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM businesses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count businesses: %w", err)
	}
	return n, nil
}

func (r *BusinessRepo) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	if !isUUID(categoryID) {
		return 0, nil
	}
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM businesses WHERE category_id = $1`, categoryID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count businesses by category: %w", err)
	}
	return n, nil
}

// Delete elimina el negocio; categories y products caen por ON DELETE CASCADE.
func (r *BusinessRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM businesses WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete business: %w", err)
	}
	return nil
}

func (r *BusinessRepo) one(ctx context.Context, query string, args ...any) (*entity.Business, error) {
	b, err := scanBusiness(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business: %w", err)
	}
	return b, nil
}

func scanBusiness(row pgx.Row) (*entity.Business, error) {
	var b entity.Business
	err := row.Scan(
		&b.ID, &b.Name, &b.Slug, &b.CategoryID, &b.Email, &b.Phone, &b.WhatsApp, &b.Address, &b.Description,
		&b.LogoURL, &b.QRCodeURL, &b.PasswordHash, &b.Status, &b.Views, &b.Shares, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func businessValue(b *entity.Business) func(string) string {
	return func(field string) string {
		switch field {
		case "slug":
			return b.Slug
		case "email":
			return b.Email
		case "id":
			return b.ID
		}
		return ""
	}
}
