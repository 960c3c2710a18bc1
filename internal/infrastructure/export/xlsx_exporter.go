// Package export genera el reporte XLSX de negocios para el administrador.
package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/menuqr-api/internal/application/usecase"
)

var _ usecase.BusinessExporter = (*XLSXExporter)(nil)

// SheetName hoja única del reporte.
const SheetName = "Negocios"

// Header columnas del reporte, en orden.
var Header = []string{
	"ID", "Nombre", "Slug", "Rubro", "Email", "Teléfono", "WhatsApp", "Dirección",
	"Activo", "Visitas", "Compartidos", "URL menú", "URL QR", "Creado",
}

var columnWidths = []float64{38, 28, 28, 18, 28, 14, 14, 30, 8, 10, 12, 40, 50, 18}

// XLSXExporter implementa usecase.BusinessExporter con excelize.
type XLSXExporter struct{}

// NewXLSXExporter construye el exportador.
func NewXLSXExporter() *XLSXExporter { return &XLSXExporter{} }

// ExportBusinesses escribe una fila por negocio debajo del encabezado.
func (e *XLSXExporter) ExportBusinesses(_ context.Context, rows []usecase.ExportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return nil, fmt.Errorf("xlsx: crear hoja: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("xlsx: borrar hoja por defecto: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#00467F"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo de encabezado: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &Header); err != nil {
		return nil, fmt.Errorf("xlsx: encabezado: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(Header), 1)
	if err := f.SetCellStyle(SheetName, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("xlsx: aplicar estilo: %w", err)
	}
	for i, w := range columnWidths {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(SheetName, colName, colName, w); err != nil {
			return nil, fmt.Errorf("xlsx: ancho de columna: %w", err)
		}
	}

	for i, r := range rows {
		b := r.Business
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []any{
			b.ID, b.Name, b.Slug, r.Category, b.Email, b.Phone, b.WhatsApp, b.Address,
			yesNo(b.Status), b.Views, b.Shares, r.MenuURL, b.QRCodeURL, b.CreatedAt.Format("2006-01-02 15:04"),
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
	}
	if err := f.SetPanes(SheetName, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return nil, fmt.Errorf("xlsx: fijar encabezado: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func yesNo(v bool) string {
	if v {
		return "Sí"
	}
	return "No"
}
