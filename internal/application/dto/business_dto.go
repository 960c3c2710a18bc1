package dto

import "time"

// CreateBusinessRequest campos del formulario multipart de alta de negocio (el logo va aparte como archivo).
type CreateBusinessRequest struct {
	Name        string `json:"name" form:"name" validate:"required,max=200"`
	CategoryID  string `json:"category_id" form:"category_id" validate:"required"`
	Email       string `json:"email" form:"email" validate:"required,email,max=254"`
	Password    string `json:"password" form:"password" validate:"required,min=6,max=72"`
	Phone       string `json:"phone" form:"phone" validate:"omitempty,max=30"`
	WhatsApp    string `json:"whatsapp" form:"whatsapp" validate:"omitempty,max=30"`
	Address     string `json:"address" form:"address" validate:"omitempty,max=300"`
	Description string `json:"description" form:"description" validate:"omitempty,max=1000"`
}

// UpdateBusinessRequest entrada para actualizar un negocio (campos opcionales).
// Slug y QR no son editables: cambiar el nombre no cambia la URL pública.
type UpdateBusinessRequest struct {
	Name        *string `json:"name" form:"name" validate:"omitempty,min=1,max=200"`
	CategoryID  *string `json:"category_id" form:"category_id" validate:"omitempty,min=1"`
	Email       *string `json:"email" form:"email" validate:"omitempty,email,max=254"`
	Password    *string `json:"password" form:"password" validate:"omitempty,min=6,max=72"`
	Phone       *string `json:"phone" form:"phone" validate:"omitempty,max=30"`
	WhatsApp    *string `json:"whatsapp" form:"whatsapp" validate:"omitempty,max=30"`
	Address     *string `json:"address" form:"address" validate:"omitempty,max=300"`
	Description *string `json:"description" form:"description" validate:"omitempty,max=1000"`
	Status      *bool   `json:"status" form:"status"`
}

// FileUpload archivo recibido en un multipart.
type FileUpload struct {
	Data        []byte
	ContentType string
}

// BusinessResponse registro completo del negocio (sin hash de password).
type BusinessResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	CategoryID  string    `json:"category_id"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	WhatsApp    string    `json:"whatsapp"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	LogoURL     string    `json:"logo_url"`
	QRCodeURL   string    `json:"qr_code_url"`
	MenuURL     string    `json:"menu_url,omitempty"`
	Status      bool      `json:"status"`
	Views       int64     `json:"views"`
	Shares      int64     `json:"shares"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BusinessListResponse lista paginada de negocios.
type BusinessListResponse struct {
	Items []BusinessResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// RegenerateQRResponse resultado de reemitir el QR de un negocio.
type RegenerateQRResponse struct {
	ID        string `json:"id"`
	MenuURL   string `json:"menu_url"`
	QRCodeURL string `json:"qr_code_url"`
}
