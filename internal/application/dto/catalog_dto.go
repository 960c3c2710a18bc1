package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCategoryRequest alta de una sección del menú.
type CreateCategoryRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Position int    `json:"position" validate:"min=0"`
}

// CategoryResponse sección del menú.
type CategoryResponse struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	Name       string    `json:"name"`
	Position   int       `json:"position"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateProductRequest alta de un producto.
type CreateProductRequest struct {
	CategoryID  string          `json:"category_id"`
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description" validate:"omitempty,max=1000"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url" validate:"omitempty,url"`
	Available   *bool           `json:"available"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	CategoryID  *string          `json:"category_id"`
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=1000"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"image_url" validate:"omitempty,url"`
	Available   *bool            `json:"available"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	BusinessID  string          `json:"business_id"`
	CategoryID  string          `json:"category_id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url,omitempty"`
	Available   bool            `json:"available"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
