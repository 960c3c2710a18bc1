package dto

import "time"

// BusinessCategoryRequest alta/edición de un rubro.
type BusinessCategoryRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	Status *bool  `json:"status"`
}

// BusinessCategoryResponse salida de un rubro.
type BusinessCategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    bool      `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
