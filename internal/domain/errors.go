package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrConflict       = errors.New("conflicto con el estado actual")
	ErrInactiveTenant = errors.New("el negocio está inactivo")
	ErrUpstream       = errors.New("servicio externo no disponible")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
)

// ValidationError campo obligatorio ausente o mal formado. errors.Is(err, ErrInvalidInput) es true.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError atajo para construir un ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ConflictError valor duplicado en un campo único (slug, email, nombre de categoría).
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s ya existe", e.Field)
	}
	return fmt.Sprintf("%s %q ya existe", e.Field, e.Value)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// UpstreamError fallo de hosting de imágenes o de codificación QR.
// Aborta la operación que lo contiene; nunca se persiste un resultado parcial.
type UpstreamError struct {
	Service string // "storage", "qr"
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() []error { return []error{ErrUpstream, e.Err} }

// NewUpstreamError envuelve err como fallo del servicio indicado.
func NewUpstreamError(service string, err error) *UpstreamError {
	return &UpstreamError{Service: service, Err: err}
}
