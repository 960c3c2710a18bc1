package qrcode_test

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/makiuchi-d/gozxing"
	zxqr "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/menuqr-api/internal/infrastructure/qrcode"
)

func decode(t *testing.T, data []byte) (image.Image, string) {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	require.NoError(t, err)
	result, err := zxqr.NewQRCodeReader().Decode(bmp, nil)
	require.NoError(t, err, "el PNG generado debe poder leerse como QR")
	return img, result.GetText()
}

func TestEncode_PayloadDecodificable(t *testing.T) {
	const target = "https://menu.example.com/b/perfume-store"
	enc := qrcode.NewEncoder()

	first, err := enc.Encode(target)
	require.NoError(t, err)
	second, err := enc.Encode(target)
	require.NoError(t, err)

	_, text1 := decode(t, first)
	_, text2 := decode(t, second)
	assert.Equal(t, target, text1)
	assert.Equal(t, text1, text2, "mismo target, mismo payload")
	assert.Equal(t, first, second, "parámetros fijos producen la misma imagen")
}

func TestEncode_DimensionesYColores(t *testing.T) {
	data, err := qrcode.NewEncoder().Encode("https://menu.example.com/b/caf%C3%A9-noir")
	require.NoError(t, err)

	img, text := decode(t, data)
	assert.Equal(t, "https://menu.example.com/b/caf%C3%A9-noir", text)
	assert.Equal(t, qrcode.DefaultSize, img.Bounds().Dx())
	assert.Equal(t, qrcode.DefaultSize, img.Bounds().Dy())

	// la esquina pertenece a la quiet zone: blanco puro
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b})

	for y := 0; y < img.Bounds().Dy(); y += 7 {
		for x := 0; x < img.Bounds().Dx(); x += 7 {
			r, g, b, _ := img.At(x, y).RGBA()
			black := r == 0 && g == 0 && b == 0
			white := r == 0xffff && g == 0xffff && b == 0xffff
			require.True(t, black || white, "solo negro o blanco en (%d,%d)", x, y)
		}
	}
}

func TestEncode_EntradaInvalida(t *testing.T) {
	_, err := qrcode.NewEncoder().Encode("")
	assert.Error(t, err)

	_, err = qrcode.NewEncoder().Encode("https://x.co/b/" + strings.Repeat("a", 4000))
	assert.Error(t, err, "un payload que excede la capacidad del QR H debe fallar")
}
