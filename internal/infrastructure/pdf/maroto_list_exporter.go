// Package pdf genera la exportación en PDF del listado filtrado de productos.
//
// Layout de la página A4 apaisada:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│  HEADER: Catálogo de productos + fecha de generación         │
//	│  ──────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Nombre | Marca | Categoría | Estado | Activo    │
//	│  ──────────────────────────────────────────────────────────  │
//	│  PIE: total de productos exportados                          │
//	└──────────────────────────────────────────────────────────────┘
package pdf

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
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/catalogo-admin/internal/application/usecase"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Verificar en tiempo de compilación que MarotoListExporter implementa el puerto.
var _ usecase.ListExporter = (*MarotoListExporter)(nil)

// MarotoListExporter implementa usecase.ListExporter usando Maroto v2.
type MarotoListExporter struct{}

// NewMarotoListExporter construye el exportador.
func NewMarotoListExporter() *MarotoListExporter { return &MarotoListExporter{} }

// ExportProducts genera el PDF del listado y devuelve sus bytes.
func (g *MarotoListExporter) ExportProducts(_ context.Context, products []entity.Product, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Catálogo de productos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for i := range products {
		m.AddRows(productRow(&products[i]))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(products)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(generatedAt time.Time) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("Catálogo de productos", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Top: 3, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}))
	}
	return row.New(6).Add(
		header("SKU", 2),
		header("Nombre", 3),
		header("Marca", 2),
		header("Categoría", 2),
		header("Estado", 1),
		header("Stock mín.", 1),
		header("Activo", 1),
	)
}

func productRow(p *entity.Product) core.Row {
	active := "Sí"
	if !p.IsActive {
		active = "No"
	}
	minStock := "—"
	if p.MinimumStock != nil {
		minStock = strconv.Itoa(*p.MinimumStock)
	}
	cell := func(value string, size int) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8}))
	}
	return row.New(5).Add(
		cell(p.SKU, 2),
		cell(p.Name, 3),
		cell(p.Brand.Label, 2),
		cell(p.Category.Label, 2),
		cell(p.Status, 1),
		cell(minStock, 1),
		cell(active, 1),
	)
}

func footerRow(total int) core.Row {
	return row.New(6).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total: %d productos", total), props.Text{
				Size: 8, Color: colorGray, Top: 1,
			}),
		),
	)
}
