// Package pdf implementa la generación del reporte de saldos de un almacén.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del almacén │ Proyecto + Estado             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Artículo | Cantidad | Última actualización           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DE ARTÍCULOS CON SALDO                                │
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
	"github.com/shopspring/decimal"

	appreport "github.com/erp-suite/erp-backend/internal/application/report"
	"github.com/erp-suite/erp-backend/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appreport.StoreReportPDFGenerator = (*MarotoStoreReportGenerator)(nil)

// MarotoStoreReportGenerator implementa report.StoreReportPDFGenerator usando Maroto v2.
type MarotoStoreReportGenerator struct{}

// NewMarotoStoreReportGenerator construye el generador.
func NewMarotoStoreReportGenerator() *MarotoStoreReportGenerator {
	return &MarotoStoreReportGenerator{}
}

// GenerateStoreReport genera el PDF y devuelve sus bytes.
func (g *MarotoStoreReportGenerator) GenerateStoreReport(
	_ context.Context,
	store *entity.Store,
	balances []*entity.StockBalance,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de almacén", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(store))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(balanceTableHeader())
	for _, b := range balances {
		m.AddRows(balanceRow(b))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalsRow(balances))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF de almacén: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(store *entity.Store) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(store.Name, props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
			text.New(store.Address, props.Text{Top: 7, Size: 8, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("Proyecto: %d", store.ProjectCode), props.Text{
				Size: 10, Align: align.Right,
			}),
			text.New("Estado: "+store.Status, props.Text{
				Top: 5, Size: 9, Align: align.Right, Color: colorGray,
			}),
			text.New("Generado: "+time.Now().Format("2006-01-02 15:04"), props.Text{
				Top: 10, Size: 7, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func balanceTableHeader() core.Row {
	return row.New(7).Add(
		text.NewCol(6, "Artículo", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(3, "Cantidad", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(3, "Actualizado", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)
}

func balanceRow(b *entity.StockBalance) core.Row {
	return row.New(5).Add(
		text.NewCol(6, b.ItemID, props.Text{Size: 8}),
		text.NewCol(3, b.Quantity.String(), props.Text{Size: 8, Align: align.Right}),
		text.NewCol(3, b.UpdatedAt.Format("2006-01-02"), props.Text{Size: 8, Align: align.Right, Color: colorGray}),
	)
}

func totalsRow(balances []*entity.StockBalance) core.Row {
	withBalance := 0
	total := decimal.Zero
	for _, b := range balances {
		if b.Quantity.GreaterThan(decimal.Zero) {
			withBalance++
		}
		total = total.Add(b.Quantity)
	}
	return row.New(8).Add(
		text.NewCol(8, fmt.Sprintf("Artículos con saldo: %d", withBalance), props.Text{
			Top: 2, Size: 9, Style: fontstyle.Bold,
		}),
		text.NewCol(4, "Saldo total: "+total.String(), props.Text{
			Top: 2, Size: 9, Style: fontstyle.Bold, Align: align.Right, Color: colorPrimary,
		}),
	)
}
