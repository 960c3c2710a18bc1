package entity

import "time"

// BusinessCategory rubro administrado por el super-admin (restaurantes, perfumerías, ...).
type BusinessCategory struct {
	ID        string
	Name      string // único
	Status    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
