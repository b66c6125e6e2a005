// Package report genera listados legibles del inventario (texto y PDF).
package report

import (
	"io"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/inventario-store/internal/domain/entity"
)

const (
	textHeader = "--- Inventory Report ---"
	textFooter = "------------------------"
	emptyLine  = "No items in stock."
)

// TextReporter escribe el listado; las cantidades se imprimen como enteros sin separadores.
type TextReporter struct {
	p *message.Printer
}

// NewTextReporter construye el reporter; tag por defecto language.English.
func NewTextReporter(tag language.Tag) *TextReporter {
	return &TextReporter{p: message.NewPrinter(tag)}
}

// Write escribe una línea por ítem en el orden dado, o emptyLine si no hay ítems.
func (r *TextReporter) Write(w io.Writer, items []entity.StockItem) error {
	if _, err := r.p.Fprintf(w, "\n%s\n", textHeader); err != nil {
		return err
	}
	if len(items) == 0 {
		if _, err := r.p.Fprintf(w, "%s\n", emptyLine); err != nil {
			return err
		}
	}
	for _, it := range items {
		if _, err := r.p.Fprintf(w, "  %s: %s\n", it.Name, strconv.Itoa(it.Quantity)); err != nil {
			return err
		}
	}
	_, err := r.p.Fprintf(w, "%s\n\n", textFooter)
	return err
}
