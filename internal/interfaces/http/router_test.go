package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/menuqr-api/internal/application/auth"
	"github.com/jhoicas/menuqr-api/internal/application/qr"
	"github.com/jhoicas/menuqr-api/internal/application/tenant"
	"github.com/jhoicas/menuqr-api/internal/application/usecase"
	"github.com/jhoicas/menuqr-api/internal/infrastructure/export"
	"github.com/jhoicas/menuqr-api/internal/infrastructure/memory"
	"github.com/jhoicas/menuqr-api/internal/infrastructure/pdf"
	"github.com/jhoicas/menuqr-api/internal/infrastructure/qrcode"
	apphttp "github.com/jhoicas/menuqr-api/internal/interfaces/http"
	"github.com/jhoicas/menuqr-api/pkg/config"
	"github.com/jhoicas/menuqr-api/pkg/password"
	"github.com/jhoicas/menuqr-api/pkg/validation"
)

const (
	adminEmail    = "admin@menu.test"
	adminPassword = "admin-secreto"
)

var pngLogo = []byte("\x89PNG\r\n\x1a\n0000")

type memUploader struct {
	mu   sync.Mutex
	urls []string
}

func (u *memUploader) Upload(_ context.Context, in qr.UploadInput) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	url := "https://cdn.test/" + in.Folder + "/" + in.PublicID
	u.urls = append(u.urls, url)
	return url, nil
}

// newAPI monta el router completo sobre el almacén en memoria.
func newAPI(t *testing.T) *fiber.App {
	t.Helper()
	hash, err := password.Hash(adminPassword)
	require.NoError(t, err)

	store := memory.NewStore()
	v := validation.New()
	uploader := &memUploader{}
	log := zerolog.Nop()
	businesses := store.Businesses()

	businessUC := usecase.NewBusinessUseCase(usecase.BusinessDeps{
		Businesses: businesses,
		Categories: store.BusinessCategories(),
		Tx:         store,
		Uploader:   uploader,
		QR:         qr.NewService(qrcode.NewEncoder(), uploader, 0, log),
		Card:       pdf.NewQRCardGenerator(),
		Exporter:   export.NewXLSXExporter(),
		Validator:  v,
		Log:        log,
	})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(businesses,
			auth.AdminCredentials{Email: adminEmail, PasswordHash: hash},
			auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer}),
		BusinessUC:         businessUC,
		BusinessCategoryUC: usecase.NewBusinessCategoryUseCase(store.BusinessCategories(), businesses, v),
		CatalogUC:          usecase.NewCatalogUseCase(store.Categories(), store.Products(), store, v),
		PublicUC: usecase.NewPublicUseCase(tenant.NewResolver(businesses), businesses,
			store.BusinessCategories(), store.Categories(), store.Products(), log),
		Businesses: businesses,
		Validator:  v,
		Public:     config.PublicConfig{BaseURL: "https://menu.test"},
		JWTSecret:  testJWTSecret,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func login(t *testing.T, app *fiber.App, path, email, pass string) string {
	t.Helper()
	resp, body := call(t, app, http.MethodPost, path, "", map[string]string{"email": email, "password": pass})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	return out.Token
}

func createBusiness(t *testing.T, app *fiber.App, token string, fields map[string]string) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	part, err := w.CreateFormFile("logo", "logo.png")
	require.NoError(t, err)
	_, err = part.Write(pngLogo)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/business", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

// seed crea un rubro y un negocio activo. Devuelve el token admin y el negocio.
func seed(t *testing.T, app *fiber.App) (string, map[string]any) {
	t.Helper()
	admin := login(t, app, "/api/auth/admin/login", adminEmail, adminPassword)

	resp, body := call(t, app, http.MethodPost, "/api/business-categories", admin, map[string]any{"name": "Cafeterías"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var cat map[string]any
	require.NoError(t, json.Unmarshal(body, &cat))

	biz := createBusiness(t, app, admin, map[string]string{
		"name":        "Mi Cafe",
		"category_id": cat["id"].(string),
		"email":       "Cafe@Menu.test",
		"password":    "secreto123",
	})
	return admin, biz
}

func TestRouter_AltaDeNegocioYMenuPublico(t *testing.T) {
	app := newAPI(t)
	_, biz := seed(t, app)

	assert.Equal(t, "mi-cafe", biz["slug"])
	assert.Equal(t, "https://menu.test/b/mi-cafe", biz["menu_url"])
	assert.True(t, strings.HasPrefix(biz["qr_code_url"].(string), "https://cdn.test/"))

	for _, slug := range []string{"mi-cafe", "Mi%20Cafe", "%20mi%20cafe%20", "MI-CAFE"} {
		resp, body := call(t, app, http.MethodGet, "/api/public/business/"+slug, "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode, slug)
		assert.Contains(t, string(body), `"slug":"mi-cafe"`)
	}

	resp, body := call(t, app, http.MethodPost, "/api/public/business/mi-cafe/share", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"shares":1}`, string(body))
}

func TestRouter_MenuPublicoNoEncontradoEInactivo(t *testing.T) {
	app := newAPI(t)
	admin, biz := seed(t, app)

	resp, body := call(t, app, http.MethodGet, "/api/public/business/no-existe", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), `"query":"no-existe"`)

	resp, _ = call(t, app, http.MethodPut, "/api/business/"+biz["id"].(string), admin, map[string]any{"status": false})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = call(t, app, http.MethodGet, "/api/public/business/mi-cafe", "", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, string(body), `"code":"INACTIVE"`)
	assert.Contains(t, string(body), `"query":"mi-cafe"`)
}

func TestRouter_NegocioGestionaSuMenu(t *testing.T) {
	app := newAPI(t)
	_, _ = seed(t, app)
	owner := login(t, app, "/api/auth/business/login", "cafe@menu.test", "secreto123")

	resp, body := call(t, app, http.MethodPost, "/api/categories", owner, map[string]any{"name": "Bebidas", "position": 1})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var sec map[string]any
	require.NoError(t, json.Unmarshal(body, &sec))

	resp, body = call(t, app, http.MethodPost, "/api/products", owner, map[string]any{
		"name": "Latte", "category_id": sec["id"], "price": "7500",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, body = call(t, app, http.MethodPost, "/api/products", owner, map[string]any{"name": "Gratis", "price": "-1"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), `"field":"price"`)

	resp, body = call(t, app, http.MethodGet, "/api/public/business/mi-cafe", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"name":"Bebidas"`)
	assert.Contains(t, string(body), `"name":"Latte"`)

	resp, body = call(t, app, http.MethodGet, "/api/me", owner, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"slug":"mi-cafe"`)

	// un negocio no puede desactivarse a sí mismo
	resp, body = call(t, app, http.MethodPut, "/api/me", owner, map[string]any{"status": false, "phone": "3001234567"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"status":true`)
	assert.Contains(t, string(body), `"phone":"3001234567"`)
}

func TestRouter_SeparacionDeRoles(t *testing.T) {
	app := newAPI(t)
	admin, biz := seed(t, app)
	owner := login(t, app, "/api/auth/business/login", "cafe@menu.test", "secreto123")

	resp, _ := call(t, app, http.MethodGet, "/api/business", owner, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp, _ = call(t, app, http.MethodGet, "/api/business-categories", owner, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp, _ = call(t, app, http.MethodGet, "/api/products", admin, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp, _ = call(t, app, http.MethodGet, "/api/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// al desactivar el negocio su token deja de servir y no puede volver a entrar
	resp, _ = call(t, app, http.MethodPut, "/api/business/"+biz["id"].(string), admin, map[string]any{"status": false})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, body := call(t, app, http.MethodGet, "/api/products", owner, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, string(body), "INACTIVE")
	resp, _ = call(t, app, http.MethodPost, "/api/auth/business/login", "", map[string]string{"email": "cafe@menu.test", "password": "secreto123"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRouter_AdminLoginErrores(t *testing.T) {
	app := newAPI(t)

	resp, _ := call(t, app, http.MethodPost, "/api/auth/admin/login", "", map[string]string{"email": adminEmail, "password": "mal"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp, body := call(t, app, http.MethodPost, "/api/auth/admin/login", "", map[string]string{"email": "no-es-email"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "VALIDATION")
}

func TestRouter_DescargasAdmin(t *testing.T) {
	app := newAPI(t)
	admin, biz := seed(t, app)

	req := httptest.NewRequest(http.MethodGet, "/api/business/"+biz["id"].(string)+"/qr-card", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	raw, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))

	req = httptest.NewRequest(http.MethodGet, "/api/business/export", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	resp2, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	assert.Contains(t, resp2.Header.Get("Content-Disposition"), "negocios.xlsx")

	resp3, body := call(t, app, http.MethodPost, "/api/business/"+biz["id"].(string)+"/qr", admin, nil)
	require.Equal(t, http.StatusOK, resp3.StatusCode, string(body))
	assert.Contains(t, string(body), `"menu_url":"https://menu.test/b/mi-cafe"`)

	resp4, _ := call(t, app, http.MethodDelete, "/api/business/"+biz["id"].(string), admin, nil)
	assert.Equal(t, http.StatusNoContent, resp4.StatusCode)
	resp5, _ := call(t, app, http.MethodGet, "/api/public/business/mi-cafe", "", nil)
	assert.Equal(t, http.StatusNotFound, resp5.StatusCode)
}
