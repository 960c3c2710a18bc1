package qr

import (
	"net/url"
	"strings"
)

// MenuPathPrefix ruta pública del menú de un negocio.
const MenuPathPrefix = "/b/"

// RequestOrigin datos del request entrante relevantes para reconstruir el dominio externo.
type RequestOrigin struct {
	ForwardedHost  string // X-Forwarded-Host
	ForwardedProto string // X-Forwarded-Proto
	Host           string
	Proto          string
}

// BaseURL resuelve el origen público en orden de prioridad: URL configurada, headers
// X-Forwarded-* del proxy, y por último fallback. Nunca termina en "/".
// Host y Proto del request solo completan lo que falte a X-Forwarded-Host.
func BaseURL(configured string, origin RequestOrigin, fallback string) string {
	if base := strings.TrimSpace(configured); base != "" {
		return strings.TrimRight(base, "/")
	}
	if host := firstValue(origin.ForwardedHost); host != "" {
		proto := firstValue(origin.ForwardedProto)
		if proto == "" {
			proto = firstValue(origin.Proto)
		}
		if proto == "" {
			proto = "https"
		}
		return proto + "://" + host
	}
	return strings.TrimRight(strings.TrimSpace(fallback), "/")
}

// MenuURL construye <base>/b/<slug> escapando el slug como segmento de ruta.
func MenuURL(base, slug string) string {
	return strings.TrimRight(base, "/") + MenuPathPrefix + url.PathEscape(slug)
}

// NormalizeDomain acepta "menu.example.com" o "https://menu.example.com/" y devuelve un origen con esquema.
func NormalizeDomain(domain string) string {
	d := strings.TrimRight(strings.TrimSpace(domain), "/")
	if d == "" {
		return ""
	}
	if !strings.Contains(d, "://") {
		d = "https://" + d
	}
	return d
}

// Los proxies encadenados envían "a, b": el primero es el del cliente.
func firstValue(h string) string {
	if i := strings.IndexByte(h, ','); i >= 0 {
		h = h[:i]
	}
	return strings.TrimSpace(h)
}
