package dto

// LoginRequest credenciales de acceso (admin o negocio).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token emitido.
type LoginResponse struct {
	Token      string `json:"token"`
	Role       string `json:"role"`
	BusinessID string `json:"business_id,omitempty"`
}
