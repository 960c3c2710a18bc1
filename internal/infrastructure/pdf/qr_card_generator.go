// Package pdf genera la tarjeta imprimible con el QR del menú de un negocio.
//
// Layout de la página A5:
//
//	┌───────────────────────────────┐
//	│      NOMBRE DEL NEGOCIO       │
//	│   Escanea para ver el menú    │
//	│  ───────────────────────────  │
//	│                               │
//	│            [ QR ]             │
//	│                               │
//	│        URL del menú           │
//	│  ───────────────────────────  │
//	│   Tel / WhatsApp / Dirección  │
//	└───────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/menuqr-api/internal/application/usecase"
	"github.com/jhoicas/menuqr-api/internal/domain/entity"
)

var _ usecase.QRCardGenerator = (*QRCardGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// QRCardGenerator implementa usecase.QRCardGenerator usando Maroto v2.
type QRCardGenerator struct{}

// NewQRCardGenerator construye el generador.
func NewQRCardGenerator() *QRCardGenerator { return &QRCardGenerator{} }

// GenerateQRCard genera el PDF y devuelve sus bytes. El QR codifica menuURL.
func (g *QRCardGenerator) GenerateQRCard(_ context.Context, b *entity.Business, menuURL string) ([]byte, error) {
	if menuURL == "" {
		return nil, fmt.Errorf("pdf: url del menú vacía")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(14).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Menú "+b.Name, true).
		WithAuthor(b.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(b))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(row.New(4))
	m.AddRows(qrRow(menuURL))
	m.AddRows(urlRow(menuURL))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	if r := contactRow(b); r != nil {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(b *entity.Business) core.Row {
	return row.New(22).Add(
		col.New(12).Add(
			text.New(b.Name, props.Text{
				Style: fontstyle.Bold, Size: 18, Align: align.Center, Color: colorPrimary, Top: 1,
			}),
			text.New("Escanea el código para ver nuestro menú", props.Text{
				Size: 10, Align: align.Center, Color: colorGray, Top: 12,
			}),
		),
	)
}

func qrRow(menuURL string) core.Row {
	return row.New(110).Add(
		col.New(12).Add(code.NewQr(menuURL, props.Rect{
			Percent: 90,
			Center:  true,
		})),
	)
}

func urlRow(menuURL string) core.Row {
	return row.New(12).Add(
		col.New(12).Add(text.New(menuURL, props.Text{
			Size: 9, Align: align.Center, Color: colorGray, Top: 3,
		})),
	)
}

// contactRow nil si el negocio no cargó datos de contacto.
func contactRow(b *entity.Business) core.Row {
	var parts []string
	if b.Phone != "" {
		parts = append(parts, "Tel: "+b.Phone)
	}
	if b.WhatsApp != "" {
		parts = append(parts, "WhatsApp: "+b.WhatsApp)
	}
	if b.Address != "" {
		parts = append(parts, b.Address)
	}
	if len(parts) == 0 {
		return nil
	}
	return row.New(10).Add(
		col.New(12).Add(text.New(strings.Join(parts, "   |   "), props.Text{
			Size: 8, Align: align.Center, Color: colorGray, Top: 3,
		})),
	)
}
