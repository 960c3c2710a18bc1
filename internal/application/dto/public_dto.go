package dto

import "github.com/shopspring/decimal"

// PublicBusiness proyección pública del negocio: sin email de login ni hash de password.
type PublicBusiness struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Phone       string `json:"phone,omitempty"`
	WhatsApp    string `json:"whatsapp,omitempty"`
	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`
	LogoURL     string `json:"logo_url"`
	QRCodeURL   string `json:"qr_code_url"`
	Views       int64  `json:"views"`
}

// PublicSection sección del menú con sus productos disponibles.
type PublicSection struct {
	ID       string          `json:"id,omitempty"`
	Name     string          `json:"name"`
	Products []PublicProduct `json:"products"`
}

// PublicProduct producto visible en el menú.
type PublicProduct struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url,omitempty"`
}

// PublicMenuResponse respuesta de GET /api/public/business/{slug}.
type PublicMenuResponse struct {
	Business PublicBusiness  `json:"business"`
	Category string          `json:"category,omitempty"` // rubro
	Sections []PublicSection `json:"sections"`
}

// ShareResponse contador tras registrar un share.
type ShareResponse struct {
	Shares int64 `json:"shares"`
}
