// Package tenant resuelve el segmento de ruta público (/b/{slug}) al negocio correspondiente.
//
// La lectura tolera mayúsculas y guiones inconsistentes en los datos guardados; la escritura
// es estricta (slug canónico vía domain/slug). Orden de estrategias, primera coincidencia gana:
//
//  1. match exacto de slug: lower, decoded, hyphenated
//  2. clave primaria, solo si decoded es un UUID válido
//  3. match insensible a mayúsculas: slug ~ lower, slug ~ decoded, name ~ decoded
package tenant

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/menuqr-api/internal/domain/entity"
	"github.com/jhoicas/menuqr-api/internal/domain/repository"
	"github.com/jhoicas/menuqr-api/internal/domain/slug"
	"github.com/jhoicas/menuqr-api/internal/infrastructure/metrics"
)

// Outcome resultado de una resolución.
type Outcome int

const (
	NotFound Outcome = iota
	Found
	Inactive
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case Inactive:
		return "inactive"
	default:
		return "not_found"
	}
}

// Resolution resultado etiquetado. Business es nil si Outcome es NotFound.
// Query es la entrada decodificada, para mensajes de diagnóstico.
type Resolution struct {
	Outcome  Outcome
	Business *entity.Business
	Query    string
}

// Resolver aplica el protocolo de búsqueda sobre el repositorio de negocios.
type Resolver struct {
	repo repository.BusinessRepository
}

// NewResolver construye el resolver.
func NewResolver(repo repository.BusinessRepository) *Resolver {
	return &Resolver{repo: repo}
}

// Resolve nunca devuelve error por "no encontrado": solo por fallos del almacén.
// El negocio devuelto no incluye PasswordHash.
func (r *Resolver) Resolve(ctx context.Context, raw string) (Resolution, error) {
	decoded := decode(raw)
	res := Resolution{Outcome: NotFound, Query: decoded}
	if decoded == "" {
		metrics.TenantResolutionsTotal.WithLabelValues(res.Outcome.String()).Inc()
		return res, nil
	}

	b, err := r.find(ctx, decoded)
	if err != nil {
		return res, err
	}
	if b != nil {
		public := *b
		public.PasswordHash = ""
		res.Business = &public
		res.Outcome = Found
		if !b.Status {
			res.Outcome = Inactive
		}
	}
	metrics.TenantResolutionsTotal.WithLabelValues(res.Outcome.String()).Inc()
	return res, nil
}

func (r *Resolver) find(ctx context.Context, decoded string) (*entity.Business, error) {
	hyphenated := slug.Hyphenate(decoded)
	lower := slug.Lower(hyphenated)

	for _, candidate := range uniq(lower, decoded, hyphenated) {
		b, err := r.repo.GetBySlug(ctx, candidate)
		if err != nil {
			return nil, fmt.Errorf("resolver slug exacto: %w", err)
		}
		if b != nil {
			return b, nil
		}
	}

	if isPrimaryKey(decoded) {
		b, err := r.repo.GetByID(ctx, decoded)
		if err != nil {
			return nil, fmt.Errorf("resolver por id: %w", err)
		}
		if b != nil {
			return b, nil
		}
	}

	for _, candidate := range uniq(lower, decoded) {
		b, err := r.repo.MatchSlugFold(ctx, candidate)
		if err != nil {
			return nil, fmt.Errorf("resolver slug insensible: %w", err)
		}
		if b != nil {
			return b, nil
		}
	}

	b, err := r.repo.MatchNameFold(ctx, decoded)
	if err != nil {
		return nil, fmt.Errorf("resolver por nombre: %w", err)
	}
	return b, nil
}

// decode aplica URL-decoding tolerante: si el escape es inválido se usa la entrada tal cual.
func decode(raw string) string {
	if d, err := url.PathUnescape(raw); err == nil {
		raw = d
	}
	return strings.TrimSpace(raw)
}

// isPrimaryKey prevalida la forma canónica de 36 caracteres antes de consultar por id.
func isPrimaryKey(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// uniq conserva el orden y omite candidatos repetidos (evita consultas redundantes).
func uniq(values ...string) []string {
	out := values[:0:0]
	for _, v := range values {
		dup := false
		for _, o := range out {
			if o == v {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, v)
		}
	}
	return out
}
