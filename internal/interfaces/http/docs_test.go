package http_test

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	_ "github.com/jhoicas/menuqr-api/docs"
)

var paramRe = regexp.MustCompile(`:(\w+)`)

func TestSwagger_DocumentaTodasLasRutas(t *testing.T) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)
	var doc struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	app := newAPI(t)
	for _, r := range app.GetRoutes(true) {
		switch r.Method {
		case "GET", "POST", "PUT", "DELETE":
		default:
			continue
		}
		path := paramRe.ReplaceAllString(strings.TrimSuffix(r.Path, "/"), "{$1}")
		ops, ok := doc.Paths[path]
		if assert.True(t, ok, "ruta sin documentar: %s", path) {
			assert.Contains(t, ops, strings.ToLower(r.Method), "método sin documentar: %s %s", r.Method, path)
		}
	}
}
