package main

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var defaultCategories = []string{
	"Restaurantes",
	"Cafeterías",
	"Bares",
	"Panaderías",
	"Heladerías",
	"Comidas rápidas",
}

// parseCategories lee un rubro por línea. Si el contenido no es UTF-8 válido se decodifica como ISO-8859-1.
// Líneas vacías, comentarios y repetidos (sin distinguir mayúsculas) se descartan.
func parseCategories(r io.Reader) ([]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var src io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		src = transform.NewReader(src, charmap.ISO8859_1.NewDecoder())
	}

	var names []string
	seen := make(map[string]bool)
	sc := bufio.NewScanner(src)
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "\uFEFF"))
		key := strings.ToLower(line)
		if line == "" || seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, line)
	}
	return names, sc.Err()
}
