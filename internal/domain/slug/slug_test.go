package slug_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/menuqr-api/internal/domain"
	"github.com/jhoicas/menuqr-api/internal/domain/slug"
)

func TestNormalize_Ejemplos(t *testing.T) {
	cases := map[string]string{
		"Italian Bistro":            "italian-bistro",
		"  Café   Noir  ":           "café-noir",
		"Already-Slugged":           "already-slugged",
		"Scenzora Perfume Store ":   "scenzora-perfume-store",
		"Tabs\tand\nnewlines":       "tabs-and-newlines",
		"Pizza - Napoli":            "pizza-napoli",
		"double--dash":              "double--dash",
		"ÑANDÚ  Grill":              "ñandú-grill",
		"non\u00a0breaking":       "non-breaking",
		"   ":                       "",
		"":                          "",
	}
	for in, want := range cases {
		assert.Equal(t, want, slug.Normalize(in), "Normalize(%q)", in)
	}
}

func TestNormalize_Idempotente(t *testing.T) {
	inputs := []string{
		"Italian Bistro", "  Café   Noir  ", "Already-Slugged", "a - b - c",
		"ΟΔΟΣ ΣΟΦΙΑΣ", "x\t\t-\t y", "--lead", "trail--", "İstanbul Kebap", "",
	}
	for _, in := range inputs {
		once := slug.Normalize(in)
		assert.Equal(t, once, slug.Normalize(once), "normalize(normalize(%q))", in)
	}
}

func TestHyphenate_ConservaMayusculas(t *testing.T) {
	assert.Equal(t, "Perfume-Store", slug.Hyphenate("Perfume Store"))
	assert.Equal(t, "Perfume-Store", slug.Hyphenate("Perfume   Store"))
}

func TestValidate(t *testing.T) {
	require.NoError(t, slug.Validate("name", "ok"))

	err := slug.Validate("name", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	var verr *domain.ValidationError
	require.ErrorAs(t, slug.Validate("name", strings.Repeat("a", slug.MaxLength+1)), &verr)
	assert.Equal(t, "name", verr.Field)

	assert.NoError(t, slug.Validate("name", strings.Repeat("é", slug.MaxLength)))
}
