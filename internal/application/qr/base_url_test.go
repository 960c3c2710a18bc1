package qr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/menuqr-api/internal/application/qr"
)

func TestBaseURL_Prioridad(t *testing.T) {
	origin := qr.RequestOrigin{
		ForwardedHost: "menu.example.com", ForwardedProto: "https",
		Host: "10.0.0.5:8080", Proto: "http",
	}
	const fallback = "http://localhost:3000"

	assert.Equal(t, "https://qr.brand.co", qr.BaseURL("https://qr.brand.co/", origin, fallback),
		"la URL configurada gana siempre")
	assert.Equal(t, "https://menu.example.com", qr.BaseURL("", origin, fallback),
		"detrás de proxy se usa el dominio externo, no el interno")
	assert.Equal(t, fallback, qr.BaseURL("", qr.RequestOrigin{Host: "10.0.0.5:8080", Proto: "http"}, fallback))
}

func TestBaseURL_HeadersEncadenados(t *testing.T) {
	origin := qr.RequestOrigin{ForwardedHost: "menu.example.com, edge.internal", ForwardedProto: "https, http"}
	assert.Equal(t, "https://menu.example.com", qr.BaseURL("", origin, ""))

	origin = qr.RequestOrigin{ForwardedHost: "menu.example.com", Proto: "http"}
	assert.Equal(t, "http://menu.example.com", qr.BaseURL("", origin, ""),
		"sin X-Forwarded-Proto se completa con el protocolo del request")
}

func TestMenuURL(t *testing.T) {
	assert.Equal(t, "https://menu.example.com/b/italian-bistro", qr.MenuURL("https://menu.example.com/", "italian-bistro"))
	assert.Equal(t, "https://m.co/b/caf%C3%A9-noir", qr.MenuURL("https://m.co", "café-noir"))
}

func TestNormalizeDomain(t *testing.T) {
	assert.Equal(t, "https://menu.example.com", qr.NormalizeDomain("menu.example.com"))
	assert.Equal(t, "http://localhost:3000", qr.NormalizeDomain(" http://localhost:3000/ "))
	assert.Equal(t, "", qr.NormalizeDomain("  "))
}
