// Package pdf implementa la generación del reporte PDF de historial de
// movimientos de un ítem de stock.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del ítem  │  Fecha de generación            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Categoría / Cantidad actual / Valor total         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Cambio | Quedó | Retirado por | User │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
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

	"github.com/jhoicas/estoque-api/internal/application/stock"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 0, Green: 128, Blue: 64}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
)

var _ stock.HistoryPDFGenerator = (*MarotoHistoryGenerator)(nil)

// MarotoHistoryGenerator implementa stock.HistoryPDFGenerator usando Maroto v2.
type MarotoHistoryGenerator struct{}

// NewMarotoHistoryGenerator construye el generador.
func NewMarotoHistoryGenerator() *MarotoHistoryGenerator { return &MarotoHistoryGenerator{} }

// GenerateHistoryPDF genera el PDF del historial y devuelve sus bytes.
// Los movimientos llegan ya ordenados del más reciente al más antiguo.
func (g *MarotoHistoryGenerator) GenerateHistoryPDF(
	_ context.Context,
	item *entity.StockItem,
	movements []*entity.StockMovement,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Historial de Movimientos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(item))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(item))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(movements) == 0 {
		m.AddRows(emptyRow())
	}
	for _, mv := range movements {
		m.AddRows(movementRow(mv))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del ítem (izq) y fecha de generación (der).
func headerRow(item *entity.StockItem) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("HISTORIAL DE MOVIMIENTOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(item.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Top: 6,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
		),
	)
}

// summaryRow: categoría, cantidad actual y valor total del ítem.
func summaryRow(item *entity.StockItem) core.Row {
	total := item.TotalValue()
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Categoría: %s   |   Cantidad actual: %d   |   Valor total: $%s",
				item.Category, item.Quantity, total.StringFixed(2),
			), props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 3, align.Left),
		h("Tipo", 2, align.Center),
		h("Cambio", 1, align.Right),
		h("Quedó", 1, align.Right),
		h("Retirado por", 3, align.Left),
		h("Registró", 2, align.Left),
	)
}

// movementRow: una fila por movimiento, con el cambio coloreado según el tipo.
func movementRow(mv *entity.StockMovement) core.Row {
	changeColor := colorGreen
	changeText := fmt.Sprintf("+%d", mv.QuantityChange)
	if mv.QuantityChange < 0 {
		changeColor = colorRed
		changeText = fmt.Sprintf("%d", mv.QuantityChange)
	}

	return row.New(7).Add(
		col.New(3).Add(text.New(
			mv.Timestamp.Format("02/01/2006 15:04"),
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			mv.Type,
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(1).Add(text.New(
			changeText,
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: changeColor},
		)),
		col.New(1).Add(text.New(
			fmt.Sprintf("%d", mv.QuantityAfter),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(3).Add(text.New(
			mv.TakenBy,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			mv.UserName,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1, Color: colorGray},
		)),
	)
}

// emptyRow: placeholder cuando el ítem no tiene movimientos registrados.
func emptyRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Sin movimientos registrados.", props.Text{
			Size: 9, Align: align.Center, Top: 2, Color: colorGray,
		}),
	))
}
