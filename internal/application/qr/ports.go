package qr

import (
	"context"

	"github.com/jhoicas/menuqr-api/internal/domain/entity"
)

// Encoder convierte un payload en una imagen raster (PNG) escaneable.
type Encoder interface {
	Encode(content string) ([]byte, error)
}

// Uploader sube un archivo al hosting de imágenes y devuelve una URL pública estable.
// La llamada es bloqueante; el caller aplica el timeout vía ctx.
type Uploader interface {
	Upload(ctx context.Context, in UploadInput) (string, error)
}

// UploadInput archivo a subir. Folder + PublicID forman la ruta (se sobrescribe si ya existe).
type UploadInput struct {
	Data        []byte
	Folder      string
	PublicID    string
	ContentType string
}

// BusinessStore subconjunto del repositorio que necesita la regeneración masiva.
type BusinessStore interface {
	List(ctx context.Context, limit, offset int) ([]*entity.Business, error)
	UpdateQRCode(ctx context.Context, id, qrURL string) error
}
