// Package storage implementa el hosting de imágenes (logos y QR) sobre Cloudinary o S3.
package storage

import (
	"fmt"

	appqr "github.com/jhoicas/menuqr-api/internal/application/qr"
	"github.com/jhoicas/menuqr-api/pkg/config"
)

// New construye el uploader según STORAGE_PROVIDER.
func New(cfg config.StorageConfig) (appqr.Uploader, error) {
	switch cfg.Provider {
	case "", "cloudinary":
		return NewCloudinaryUploader(
			cfg.CloudinaryBaseURL, cfg.CloudinaryCloudName,
			cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.UploadTimeout,
		), nil
	case "s3":
		return NewS3Uploader(S3Options{
			Bucket:     cfg.S3Bucket,
			Region:     cfg.S3Region,
			Endpoint:   cfg.S3Endpoint,
			AccessKey:  cfg.S3AccessKey,
			SecretKey:  cfg.S3SecretKey,
			PublicBase: cfg.S3PublicBase,
		})
	default:
		return nil, fmt.Errorf("storage: proveedor desconocido %q", cfg.Provider)
	}
}
