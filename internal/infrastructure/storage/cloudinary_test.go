package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appqr "github.com/jhoicas/menuqr-api/internal/application/qr"
)

func TestSign_VectorConocido(t *testing.T) {
	// ejemplo de la documentación de Cloudinary
	params := map[string]string{"eager": "w_400,h_300,c_pad|w_260,h_200,c_crop", "public_id": "sample_image", "timestamp": "1315060510"}
	assert.Equal(t, "bfd09f95f331f558cbd1320e67aa8d488770583e", Sign(params, "abcd"))
}

func TestCloudinaryUpload_Exito(t *testing.T) {
	fixed := time.Unix(1700000000, 0)
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo/image/upload", r.URL.Path)
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		got = map[string]string{}
		for k, v := range r.MultipartForm.Value {
			got[k] = v[0]
		}
		if f, _, err := r.FormFile("file"); assert.NoError(t, err) {
			body, _ := io.ReadAll(f)
			assert.Equal(t, []byte("png-bytes"), body)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"secure_url":"https://res.cloudinary.com/demo/image/upload/qr/business-1.png","public_id":"qr/business-1"}`))
	}))
	defer srv.Close()

	u := NewCloudinaryUploader(srv.URL, "demo", "key", "secret", 5*time.Second)
	u.now = func() time.Time { return fixed }

	ref, err := u.Upload(context.Background(), appqr.UploadInput{
		Data: []byte("png-bytes"), Folder: "qr", PublicID: "business-1", ContentType: "image/png",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/qr/business-1.png", ref)

	assert.Equal(t, "key", got["api_key"])
	assert.Equal(t, "qr", got["folder"])
	assert.Equal(t, "true", got["overwrite"])
	assert.Equal(t, "1700000000", got["timestamp"])
	assert.Equal(t, Sign(map[string]string{
		"folder": "qr", "public_id": "business-1", "overwrite": "true", "invalidate": "true", "timestamp": "1700000000",
	}, "secret"), got["signature"])
}

func TestCloudinaryUpload_Rechazado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid Signature"}}`))
	}))
	defer srv.Close()

	u := NewCloudinaryUploader(srv.URL, "demo", "key", "secret", 5*time.Second)
	_, err := u.Upload(context.Background(), appqr.UploadInput{Data: []byte("x"), Folder: "qr", PublicID: "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid Signature")
}

func TestCloudinaryUpload_TimeoutDelContexto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	u := NewCloudinaryUploader(srv.URL, "demo", "key", "secret", 10*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := u.Upload(ctx, appqr.UploadInput{Data: []byte("x"), Folder: "qr", PublicID: "b"})
	assert.Error(t, err, "un timeout cuenta como fallo de subida")
}

func TestCloudinaryUpload_SinCredenciales(t *testing.T) {
	u := NewCloudinaryUploader("http://127.0.0.1:1", "", "", "", time.Second)
	_, err := u.Upload(context.Background(), appqr.UploadInput{Data: []byte("x")})
	assert.Error(t, err)
}
