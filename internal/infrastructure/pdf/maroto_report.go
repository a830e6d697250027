// Package pdf gera o relatório de clientes em PDF com Maroto v2.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  CABEÇALHO: título + data/hora de geração                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Nome | Documento | Email | Cidade/UF | Situação     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RODAPÉ: total de clientes listados                          │
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

	"github.com/seu-usuario/crm-clientes/internal/application/reports"
	"github.com/seu-usuario/crm-clientes/internal/domain/entity"
)

var _ reports.PDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// MarotoReportGenerator implementa reports.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// CustomerReport gera o relatório de clientes e devolve os bytes do PDF.
func (g *MarotoReportGenerator) CustomerReport(
	_ context.Context,
	customers []*entity.Customer,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Clientes", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, c := range customers {
		m.AddRows(customerRow(c))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(customers)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: título (esq) e data de geração (dir).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("RELATÓRIO DE CLIENTES", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Nome", 4, align.Left),
		h("Documento", 3, align.Left),
		h("Email", 3, align.Left),
		h("Cidade/UF", 1, align.Left),
		h("Situação", 1, align.Center),
	)
}

// customerRow: uma linha por cliente.
func customerRow(c *entity.Customer) core.Row {
	statusColor := colorPrimary
	status := "Ativo"
	if !c.Active {
		statusColor = colorRed
		status = "Inativo"
	}
	return row.New(7).Add(
		col.New(4).Add(text.New(c.Name, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(3).Add(text.New(documentOf(c), props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(3).Add(text.New(c.Email.String(), props.Text{
			Size: 7.5, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(1).Add(text.New(c.Address.City+"/"+c.Address.State, props.Text{
			Size: 7, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(1).Add(text.New(status, props.Text{
			Style: fontstyle.Bold, Size: 7.5, Align: align.Center,
			Color: statusColor, Top: 1,
		})),
	)
}

// footerRow: total de clientes.
func footerRow(total int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Total de clientes: %d", total), props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorGray, Top: 2,
		}),
	))
}

// documentOf devolve o CPF ou CNPJ formatado conforme o tipo de pessoa.
func documentOf(c *entity.Customer) string {
	if c.PersonType == entity.NaturalPerson {
		return "CPF " + c.CPF.Formatted()
	}
	return "CNPJ " + c.CNPJ.Formatted()
}
