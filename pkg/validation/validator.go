// Package validation valida DTOs de entrada con go-playground/validator y devuelve errores de dominio.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jhoicas/menuqr-api/internal/domain"
)

// Validator envuelve validator.Validate usando los nombres de los tags json en los mensajes.
type Validator struct {
	v *validator.Validate
}

// New construye el validador.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return &Validator{v: v}
}

// Validate valida s y devuelve un *domain.ValidationError con el primer campo inválido.
func (v *Validator) Validate(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.NewValidationError("body", err.Error())
	}
	fe := verrs[0]
	return domain.NewValidationError(fe.Field(), friendlyMessage(fe))
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "es requerido"
	case "email":
		return "debe ser un email válido"
	case "min":
		return fmt.Sprintf("debe tener al menos %s caracteres", e.Param())
	case "max":
		return fmt.Sprintf("no debe superar %s caracteres", e.Param())
	case "uuid", "uuid4":
		return "debe ser un UUID válido"
	case "url":
		return "debe ser una URL válida"
	case "oneof":
		return "debe ser uno de: " + e.Param()
	default:
		return "es inválido"
	}
}
