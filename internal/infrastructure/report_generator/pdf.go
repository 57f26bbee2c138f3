package report_generator

import (
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/payment_ingestor/internal/domain"
)

const (
	titleHeight = 12
	rowHeight   = 6
	fontSize    = 6
)

var (
	headerProps = props.Text{Size: fontSize, Style: fontstyle.Bold, Align: align.Left}
	cellProps   = props.Text{Size: fontSize, Align: align.Left}
)

type column struct {
	title string
	size  int
	value func(p *domain.Payment) string
}

var columns = []column{
	{"ID", 1, func(p *domain.Payment) string { return strconv.FormatInt(p.ID, 10) }},
	{"Record", 2, func(p *domain.Payment) string { return p.RecordNumber }},
	{"Payment ID", 3, func(p *domain.Payment) string { return p.PaymentID }},
	{"Company", 2, func(p *domain.Payment) string { return p.CompanyName }},
	{"Payer tax ID", 2, func(p *domain.Payment) string { return p.PayerTaxID }},
	{"Amount", 1, func(p *domain.Payment) string { return p.Amount.String() }},
	{"Status", 1, func(p *domain.Payment) string { return p.Status.String() }},
}

type PDF struct{}

func New() *PDF {
	return &PDF{}
}

func (g *PDF) GenerateReport(sourceFile string, payments []*domain.Payment) ([]byte, error) {
	m := maroto.New()

	m.AddRows(text.NewRow(titleHeight, "Report "+sourceFile, props.Text{
		Size:  10,
		Style: fontstyle.Bold,
		Align: align.Center,
	}))

	m.AddRow(rowHeight, headerCols()...)

	for _, p := range payments {
		m.AddRow(rowHeight, paymentCols(p)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate pdf: %w", err)
	}

	return doc.GetBytes(), nil
}

func headerCols() []core.Col {
	cols := make([]core.Col, 0, len(columns))
	for _, c := range columns {
		cols = append(cols, text.NewCol(c.size, c.title, headerProps))
	}
	return cols
}

func paymentCols(p *domain.Payment) []core.Col {
	cols := make([]core.Col, 0, len(columns))
	for _, c := range columns {
		cols = append(cols, text.NewCol(c.size, c.value(p), cellProps))
	}
	return cols
}
