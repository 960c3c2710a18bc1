// Package qrcode genera la imagen PNG del QR con parámetros fijos: corrección de errores H
// (≈30% de daño tolerado, el QR se compone en tarjetas con logos y bordes), quiet zone fija,
// tamaño cuadrado fijo y negro puro sobre blanco.
package qrcode

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/boombuler/barcode/qr"
	"golang.org/x/image/draw"

	appqr "github.com/jhoicas/menuqr-api/internal/application/qr"
)

const (
	// DefaultSize lado de la imagen en píxeles.
	DefaultSize = 1024
	// DefaultQuietZone margen blanco en módulos (el estándar pide al menos 4).
	DefaultQuietZone = 4
)

var _ appqr.Encoder = (*Encoder)(nil)

var palette = color.Palette{color.White, color.Black}

// Encoder codificador QR de parámetros fijos.
type Encoder struct {
	size      int
	quietZone int
}

// NewEncoder construye el codificador con los parámetros por defecto.
func NewEncoder() *Encoder {
	return &Encoder{size: DefaultSize, quietZone: DefaultQuietZone}
}

// Encode devuelve el PNG de content. Falla si content está vacío o excede la capacidad del QR.
func (e *Encoder) Encode(content string) ([]byte, error) {
	if content == "" {
		return nil, errors.New("qrcode: contenido vacío")
	}
	code, err := qr.Encode(content, qr.H, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("qrcode: codificar: %w", err)
	}

	modules := code.Bounds().Dx()
	scale := e.size / (modules + 2*e.quietZone)
	if scale < 1 {
		return nil, fmt.Errorf("qrcode: %d módulos no caben en %dpx", modules, e.size)
	}
	offset := (e.size - modules*scale) / 2

	img := image.NewPaletted(image.Rect(0, 0, e.size, e.size), palette)
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	origin := code.Bounds().Min
	for y := 0; y < modules; y++ {
		for x := 0; x < modules; x++ {
			if !isDark(code.At(origin.X+x, origin.Y+y)) {
				continue
			}
			px, py := offset+x*scale, offset+y*scale
			draw.Draw(img, image.Rect(px, py, px+scale, py+scale), image.Black, image.Point{}, draw.Src)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("qrcode: png: %w", err)
	}
	return buf.Bytes(), nil
}

func isDark(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r+g+b < 3*0x8000
}
