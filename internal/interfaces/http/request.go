package http

import (
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/menuqr-api/internal/application/dto"
	"github.com/jhoicas/menuqr-api/internal/application/qr"
	"github.com/jhoicas/menuqr-api/internal/domain"
	"github.com/jhoicas/menuqr-api/pkg/config"
)

// MaxLogoBytes tamaño máximo aceptado para el logo.
const MaxLogoBytes = 5 << 20

// requestBaseURL origen público para construir URLs de menú desde este request.
func requestBaseURL(c *fiber.Ctx, cfg config.PublicConfig) string {
	return qr.BaseURL(cfg.BaseURL, qr.RequestOrigin{
		ForwardedHost:  c.Get(fiber.HeaderXForwardedHost),
		ForwardedProto: c.Get(fiber.HeaderXForwardedProto),
		Host:           string(c.Request().Host()),
		Proto:          c.Protocol(),
	}, cfg.FallbackURL)
}

// formFile lee el archivo field de un multipart. nil si el request no es multipart o no lo trae.
func formFile(c *fiber.Ctx, field string) (*dto.FileUpload, error) {
	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return nil, nil
	}
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	if fh.Size > MaxLogoBytes {
		return nil, domain.NewValidationError(field, fmt.Sprintf("no debe superar %d MB", MaxLogoBytes>>20))
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", field, err)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, MaxLogoBytes+1))
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", field, err)
	}
	contentType := fh.Header.Get(fiber.HeaderContentType)
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = sniffImage(data)
	}
	return &dto.FileUpload{Data: data, ContentType: contentType}, nil
}

// sniffImage usa la firma del archivo cuando el cliente no manda Content-Type.
func sniffImage(data []byte) string {
	switch {
	case len(data) >= 8 && string(data[:8]) == "\x89PNG\r\n\x1a\n":
		return "image/png"
	case len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return "image/jpeg"
	case len(data) >= 12 && string(data[:4]) == "RIFF" && string(data[8:12]) == "WEBP":
		return "image/webp"
	}
	return "application/octet-stream"
}

func pageFromQuery(c *fiber.Ctx) dto.PageRequest {
	p := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	p.DefaultPage()
	return p
}
