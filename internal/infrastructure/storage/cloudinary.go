package storage

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	appqr "github.com/jhoicas/menuqr-api/internal/application/qr"
)

var _ appqr.Uploader = (*CloudinaryUploader)(nil)

// CloudinaryUploader sube imágenes con la API de upload firmada de Cloudinary.
type CloudinaryUploader struct {
	http      *resty.Client
	cloudName string
	apiKey    string
	apiSecret string
	now       func() time.Time
}

type cloudinaryResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

type cloudinaryError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewCloudinaryUploader construye el cliente. baseURL normalmente es https://api.cloudinary.com.
// El timeout de cada subida lo pone el caller vía ctx; el del cliente es solo un tope.
func NewCloudinaryUploader(baseURL, cloudName, apiKey, apiSecret string, timeout time.Duration) *CloudinaryUploader {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &CloudinaryUploader{
		http:      client,
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		now:       time.Now,
	}
}

// Upload sube in.Data a <folder>/<public_id> sobrescribiendo el anterior y devuelve secure_url.
func (u *CloudinaryUploader) Upload(ctx context.Context, in appqr.UploadInput) (string, error) {
	if u.cloudName == "" || u.apiKey == "" || u.apiSecret == "" {
		return "", errors.New("cloudinary: credenciales no configuradas")
	}
	params := map[string]string{
		"folder":     in.Folder,
		"public_id":  in.PublicID,
		"overwrite":  "true",
		"invalidate": "true",
		"timestamp":  strconv.FormatInt(u.now().Unix(), 10),
	}
	form := make(map[string]string, len(params)+2)
	for k, v := range params {
		form[k] = v
	}
	form["api_key"] = u.apiKey
	form["signature"] = Sign(params, u.apiSecret)

	var (
		out    cloudinaryResponse
		errOut cloudinaryError
	)
	resp, err := u.http.R().
		SetContext(ctx).
		SetFileReader("file", in.PublicID+extension(in.ContentType), bytes.NewReader(in.Data)).
		SetFormData(form).
		SetResult(&out).
		SetError(&errOut).
		Post("/v1_1/" + u.cloudName + "/image/upload")
	if err != nil {
		return "", fmt.Errorf("cloudinary: upload: %w", err)
	}
	if resp.IsError() {
		msg := errOut.Error.Message
		if msg == "" {
			msg = resp.Status()
		}
		return "", fmt.Errorf("cloudinary: upload rechazado (%d): %s", resp.StatusCode(), msg)
	}
	if out.SecureURL == "" {
		return "", errors.New("cloudinary: respuesta sin secure_url")
	}
	return out.SecureURL, nil
}

// Sign calcula la firma de Cloudinary: SHA-1 de los parámetros ordenados "k=v&k=v" + secret.
func Sign(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}

func extension(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	default:
		return ""
	}
}
