package postgres

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/menuqr-api/internal/domain"
)

// constraintFields traduce índices únicos del esquema al campo expuesto en el error.
var constraintFields = map[string]string{
	"businesses_slug_key":          "slug",
	"businesses_email_lower_idx":   "email",
	"business_categories_name_idx": "name",
	"categories_business_name_idx": "name",
	"businesses_pkey":              "id",
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isForeignKeyViolation 23503.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

// conflictFrom convierte una violación de unicidad en *domain.ConflictError. nil si err no lo es.
func conflictFrom(err error, value func(field string) string) error {
	if err == nil || !isUniqueViolation(err) {
		return nil
	}
	field := "value"
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if f, ok := constraintFields[pgErr.ConstraintName]; ok {
			field = f
		}
	}
	return &domain.ConflictError{Field: field, Value: value(field)}
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// foldPattern regex anclada y escapada para comparar el valor completo con ~*.
func foldPattern(v string) string {
	return "^" + regexp.QuoteMeta(v) + "$"
}

// limitArg 0 equivale a sin límite (LIMIT NULL).
func limitArg(limit int) int {
	if limit < 0 {
		return 0
	}
	return limit
}

// isUUID las columnas id son UUID: un valor mal formado no puede existir y se trata como ausente.
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
