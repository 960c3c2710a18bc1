package usecase

import (
	"context"

	"github.com/jhoicas/menuqr-api/internal/domain/entity"
	"github.com/jhoicas/menuqr-api/internal/domain/repository"
)

// CatalogTxRunner ejecuta una función dentro de una transacción, pasando repositorios atados a esa tx.
// Si fn devuelve error no queda ningún cambio aplicado.
type CatalogTxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		businessRepo repository.BusinessRepository,
		categoryRepo repository.CategoryRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// QRIssuer emite el artefacto QR para una URL de menú y devuelve su URL durable.
type QRIssuer interface {
	Issue(ctx context.Context, targetURL, businessID string) (string, error)
}

// QRCardGenerator genera la tarjeta imprimible (PDF) con el QR del negocio.
type QRCardGenerator interface {
	GenerateQRCard(ctx context.Context, business *entity.Business, menuURL string) ([]byte, error)
}

// BusinessExporter exporta el listado de negocios (XLSX).
type BusinessExporter interface {
	ExportBusinesses(ctx context.Context, rows []ExportRow) ([]byte, error)
}

// ExportRow fila del reporte de negocios.
type ExportRow struct {
	Business *entity.Business
	Category string
	MenuURL  string
}
