package entity

// Roles del token de acceso.
const (
	RoleAdmin    = "admin"
	RoleBusiness = "business"
)
