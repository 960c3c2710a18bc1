package entity

import "time"

// Category sección del menú de un negocio (Entradas, Bebidas, ...).
type Category struct {
	ID         string
	BusinessID string
	Name       string // único por negocio
	Position   int    // orden de aparición en el menú
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
