package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appqr "github.com/jhoicas/menuqr-api/internal/application/qr"
)

var _ appqr.Uploader = (*S3Uploader)(nil)

// objectPutter subconjunto del cliente S3 que usa el uploader.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Uploader sube imágenes a un bucket S3 compatible (AWS, MinIO, R2).
type S3Uploader struct {
	client     objectPutter
	bucket     string
	publicBase string
}

// S3Options parámetros de conexión.
type S3Options struct {
	Bucket     string
	Region     string
	Endpoint   string // vacío = AWS
	AccessKey  string
	SecretKey  string
	PublicBase string // p. ej. https://cdn.example.com; vacío = URL virtual-host de AWS
}

// NewS3Uploader construye el cliente con credenciales estáticas.
func NewS3Uploader(opts S3Options) (*S3Uploader, error) {
	if opts.Bucket == "" {
		return nil, errors.New("s3: bucket requerido")
	}
	s3opts := s3.Options{
		Region:      opts.Region,
		Credentials: aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")),
	}
	if opts.Endpoint != "" {
		s3opts.BaseEndpoint = aws.String(opts.Endpoint)
		s3opts.UsePathStyle = true
	}
	publicBase := strings.TrimRight(opts.PublicBase, "/")
	if publicBase == "" {
		publicBase = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", opts.Bucket, opts.Region)
	}
	return &S3Uploader{client: s3.New(s3opts), bucket: opts.Bucket, publicBase: publicBase}, nil
}

// Upload escribe el objeto <folder>/<public_id><ext> (sobrescribe) y devuelve su URL pública.
func (u *S3Uploader) Upload(ctx context.Context, in appqr.UploadInput) (string, error) {
	key := ObjectKey(in)
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(u.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(in.Data),
		ContentType:  aws.String(in.ContentType),
		CacheControl: aws.String("public, max-age=300"),
	})
	if err != nil {
		return "", fmt.Errorf("s3: put %s: %w", key, err)
	}
	return u.publicBase + "/" + key, nil
}

// ObjectKey ruta del objeto dentro del bucket.
func ObjectKey(in appqr.UploadInput) string {
	key := in.PublicID + extension(in.ContentType)
	if in.Folder != "" {
		key = strings.Trim(in.Folder, "/") + "/" + key
	}
	return key
}
