package report

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/jhoicas/inventario-store/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLow     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// PDFReporter genera el reporte de inventario en PDF con Maroto v2.
type PDFReporter struct {
	title string
}

// NewPDFReporter construye el generador; title aparece en la cabecera y metadatos.
func NewPDFReporter(title string) *PDFReporter {
	return &PDFReporter{title: title}
}

// Generate devuelve los bytes del PDF. Los ítems con cantidad <= lowThreshold se resaltan.
func (g *PDFReporter) Generate(_ context.Context, items []entity.StockItem, lowThreshold int, at time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(g.title, at, len(items)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(items) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New(emptyLine, props.Text{Size: 10, Top: 3, Color: colorGray}),
		)))
	} else {
		m.AddRows(tableHeaderRow())
		for _, r := range itemRows(items, lowThreshold) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(title string, at time.Time, count int) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1}),
		),
		col.New(4).Add(
			text.New("Fecha: "+at.Format("02/01/2006 15:04"), props.Text{Size: 8, Align: align.Right, Top: 2, Color: colorGray}),
			text.New("Ítems: "+strconv.Itoa(count), props.Text{Size: 8, Align: align.Right, Top: 8, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	return row.New(8).Add(
		col.New(9).Add(text.New("Ítem", props.Text{Style: fontstyle.Bold, Size: 9, Top: 2, Left: 1})),
		col.New(3).Add(text.New("Cantidad", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Right: 1})),
	)
}

// itemRows: una fila por ítem, en el orden recibido.
func itemRows(items []entity.StockItem, lowThreshold int) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		p := props.Text{Size: 9, Top: 1}
		if it.Quantity <= lowThreshold {
			p.Color = colorLow
			p.Style = fontstyle.Bold
		}
		name, qty := p, p
		name.Left = 1
		qty.Align = align.Right
		qty.Right = 1
		result = append(result, row.New(7).Add(
			col.New(9).Add(text.New(it.Name, name)),
			col.New(3).Add(text.New(strconv.Itoa(it.Quantity), qty)),
		))
	}
	return result
}
