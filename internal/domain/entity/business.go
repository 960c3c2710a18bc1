package entity

import "time"

// Business representa un negocio/tenant con menú digital propio (multi-tenant).
// Slug se calcula una sola vez al crear y no cambia al renombrar: es la URL que va impresa en el QR.
type Business struct {
	ID           string
	Name         string
	Slug         string // único; ver domain/slug
	CategoryID   string // BusinessCategory
	Email        string // único; login del negocio
	Phone        string
	WhatsApp     string
	Address      string
	Description  string
	LogoURL      string
	QRCodeURL    string // artefacto QR que codifica <base>/b/<slug>
	PasswordHash string // bcrypt; nunca sale en respuestas públicas
	Status       bool   // false = oculto en el menú público
	Views        int64
	Shares       int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
