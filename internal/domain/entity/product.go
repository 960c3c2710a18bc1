package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product ítem del menú de un negocio.
type Product struct {
	ID          string
	BusinessID  string
	CategoryID  string // vacío = sin sección
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	Available   bool // false = no se muestra en el menú público
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
