// Package qr emite y regenera los códigos QR que apuntan al menú público de cada negocio.
package qr

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/menuqr-api/internal/domain"
	"github.com/jhoicas/menuqr-api/internal/infrastructure/metrics"
)

// Folder carpeta del hosting donde viven los artefactos QR.
const Folder = "qr"

// DefaultUploadTimeout se aplica si el Service se construye sin timeout.
const DefaultUploadTimeout = 15 * time.Second

// regeneratePageSize tamaño de página al recorrer todos los negocios.
const regeneratePageSize = 100

// Service codifica la URL del menú y persiste la imagen en el hosting.
type Service struct {
	encoder       Encoder
	uploader      Uploader
	uploadTimeout time.Duration
	log           zerolog.Logger
}

// NewService construye el servicio de emisión QR.
func NewService(encoder Encoder, uploader Uploader, uploadTimeout time.Duration, log zerolog.Logger) *Service {
	if uploadTimeout <= 0 {
		uploadTimeout = DefaultUploadTimeout
	}
	return &Service{encoder: encoder, uploader: uploader, uploadTimeout: uploadTimeout, log: log}
}

// PublicID ruta estable del artefacto de un negocio dentro de Folder.
func PublicID(businessID string) string {
	return "business-" + businessID
}

// Issue codifica targetURL y lo sube bajo una ruta atada al negocio. Cualquier fallo
// (codificación, subida o timeout) se devuelve como *domain.UpstreamError.
func (s *Service) Issue(ctx context.Context, targetURL, businessID string) (string, error) {
	png, err := s.encoder.Encode(targetURL)
	if err != nil {
		metrics.QRIssueFailuresTotal.Inc()
		return "", domain.NewUpstreamError("qr", err)
	}

	uploadCtx, cancel := context.WithTimeout(ctx, s.uploadTimeout)
	defer cancel()

	ref, err := s.uploader.Upload(uploadCtx, UploadInput{
		Data:        png,
		Folder:      Folder,
		PublicID:    PublicID(businessID),
		ContentType: "image/png",
	})
	if err == nil && ref == "" {
		err = errors.New("el hosting no devolvió URL")
	}
	if err != nil {
		metrics.QRIssueFailuresTotal.Inc()
		return "", domain.NewUpstreamError("storage", err)
	}

	metrics.QRIssuedTotal.Inc()
	return ref, nil
}

// RegenerateReport resultado de una regeneración masiva.
type RegenerateReport struct {
	BaseURL   string
	Total     int
	Succeeded int
	Failed    []RegenerateFailure
}

// RegenerateFailure negocio que no pudo regenerarse.
type RegenerateFailure struct {
	BusinessID string
	Slug       string
	Err        error
}

// RegenerateAll reemite el QR de todos los negocios contra baseURL, uno por uno.
// Los fallos por negocio se registran y no detienen el proceso; solo un error al listar
// (p. ej. la base de datos cayó) se devuelve como error.
func (s *Service) RegenerateAll(ctx context.Context, store BusinessStore, baseURL string) (RegenerateReport, error) {
	report := RegenerateReport{BaseURL: baseURL}

	for offset := 0; ; offset += regeneratePageSize {
		page, err := store.List(ctx, regeneratePageSize, offset)
		if err != nil {
			return report, err
		}
		for _, b := range page {
			report.Total++
			log := s.log.With().Str("business_id", b.ID).Str("slug", b.Slug).Logger()

			target := MenuURL(baseURL, b.Slug)
			ref, err := s.Issue(ctx, target, b.ID)
			if err == nil {
				err = store.UpdateQRCode(ctx, b.ID, ref)
			}
			if err != nil {
				log.Error().Err(err).Msg("regeneración QR fallida")
				report.Failed = append(report.Failed, RegenerateFailure{BusinessID: b.ID, Slug: b.Slug, Err: err})
				continue
			}
			report.Succeeded++
			log.Info().Str("target", target).Str("qr_url", ref).Msg("QR regenerado")
		}
		if len(page) < regeneratePageSize {
			return report, nil
		}
	}
}
