// Package slug convierte el nombre de un negocio en su identificador público canónico.
//
//	"  Café   Noir  " -> "café-noir"
//
// Reglas: trim, minúsculas (Unicode, sin transliteración) y cada secuencia de espacios
// en blanco se reemplaza por un solo "-". Normalize es idempotente.
package slug

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jhoicas/menuqr-api/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxLength longitud máxima (en runas) de un slug.
const MaxLength = 200

// Normalize devuelve la forma canónica de s. Puede devolver "" (el caller debe rechazarlo).
func Normalize(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	return Hyphenate(Lower(trimmed))
}

// Lower pasa s a minúsculas con las reglas Unicode neutrales de idioma.
func Lower(s string) string {
	// cases.Caser no es seguro entre goroutines: uno por llamada.
	return cases.Lower(language.Und).String(s)
}

// Hyphenate reemplaza cada secuencia de espacios por un solo "-" sin cambiar mayúsculas.
// Los guiones pegados a esa secuencia se absorben ("a - b" -> "a-b"); los guiones
// sin espacios alrededor se conservan tal cual.
func Hyphenate(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	runes := []rune(s)
	for i := 0; i < len(runes); {
		if !isSeparator(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}
		j, hasSpace := i, false
		for j < len(runes) && isSeparator(runes[j]) {
			if unicode.IsSpace(runes[j]) {
				hasSpace = true
			}
			j++
		}
		if hasSpace {
			b.WriteByte('-')
		} else {
			b.WriteString(string(runes[i:j]))
		}
		i = j
	}
	return b.String()
}

func isSeparator(r rune) bool {
	return r == '-' || unicode.IsSpace(r)
}

// Validate rechaza slugs vacíos o demasiado largos. field es el campo de origen para el mensaje.
func Validate(field, slug string) error {
	if slug == "" {
		return domain.NewValidationError(field, "es requerido")
	}
	if utf8.RuneCountInString(slug) > MaxLength {
		return domain.NewValidationError(field, "genera un identificador demasiado largo")
	}
	return nil
}
