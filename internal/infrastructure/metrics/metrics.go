// Package metrics contiene los instrumentos Prometheus de la API. Todos se registran en el
// registry global, así que basta con exponer /metrics en el router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Peticiones HTTP atendidas por método, ruta y status.",
		}, []string{"method", "route", "status"})

	QRIssuedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "qr_issued_total",
			Help: "Artefactos QR emitidos y subidos con éxito.",
		})

	QRIssueFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "qr_issue_failures_total",
			Help: "Fallos de codificación o subida de artefactos QR.",
		})

	TenantResolutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tenant_resolutions_total",
			Help: "Resoluciones de slug público por resultado (found, inactive, not_found).",
		}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		QRIssuedTotal,
		QRIssueFailuresTotal,
		TenantResolutionsTotal,
	)
}
