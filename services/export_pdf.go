package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	mutedColor   = &props.Color{Red: 100, Green: 100, Blue: 100}
	headerBg     = &props.Color{Red: 33, Green: 37, Blue: 41}
	stripeBg     = &props.Color{Red: 245, Green: 245, Blue: 245}
	summaryBg    = &props.Color{Red: 240, Green: 240, Blue: 240}
	whiteColor   = &props.Color{Red: 255, Green: 255, Blue: 255}
	salesColumns = []int{2, 3, 2, 1, 2, 2}
)

// RenderPDF lays out a report document with maroto/v2 and returns the PDF bytes.
func RenderPDF(doc Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	for _, b := range doc.Blocks {
		switch blk := b.(type) {
		case TitleBlock:
			addTitle(m, blk)
		case MetaBlock:
			addMetaLine(m, blk)
		case HeadingBlock:
			addHeading(m, blk)
		case SummaryBlock:
			addSummaryLine(m, blk)
		case TableBlock:
			addSalesTable(m, blk)
		case ParagraphBlock:
			addParagraph(m, blk)
		case FooterBlock:
			addFooter(m, blk)
		default:
			return nil, fmt.Errorf("render pdf: unsupported block %T", b)
		}
	}

	pdf, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdf.GetBytes(), nil
}

// addTitle adds the organization name and report title.
func addTitle(m core.Maroto, b TitleBlock) {
	if b.Organization != "" {
		m.AddRows(
			row.New(10).Add(
				col.New(12).Add(
					text.New(b.Organization, props.Text{
						Size:  16,
						Style: fontstyle.Bold,
						Align: align.Center,
					}),
				),
			),
		)
	}
	m.AddRows(
		row.New(9).Add(
			col.New(12).Add(
				text.New(b.Title, props.Text{
					Size:  13,
					Align: align.Center,
					Color: mutedColor,
				}),
			),
		),
	)
	m.AddRows(row.New(4))
}

func addMetaLine(m core.Maroto, b MetaBlock) {
	m.AddRows(
		row.New(7).Add(
			col.New(3).Add(
				text.New(b.Label+":", props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(9).Add(
				text.New(b.Value, props.Text{
					Size:  10,
					Align: align.Left,
				}),
			),
		),
	)
}

func addHeading(m core.Maroto, b HeadingBlock) {
	m.AddRows(row.New(4))
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(b.Text, props.Text{
					Size:  12,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)
}

func addSummaryLine(m core.Maroto, b SummaryBlock) {
	summaryCell := &props.Cell{BackgroundColor: summaryBg}
	style := props.Text{
		Size:  10,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	m.AddRows(
		row.New(7).Add(
			col.New(8).Add(text.New(b.Label, style)).WithStyle(summaryCell),
			col.New(4).Add(text.New(b.Value, style)).WithStyle(summaryCell),
		),
	)
}

// addSalesTable adds the breakdown header, one row per entered sales line and
// the closing total.
func addSalesTable(m core.Maroto, b TableBlock) {
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: whiteColor,
	}
	headerCell := props.Cell{BackgroundColor: headerBg}

	header := row.New(8)
	for i, name := range b.Columns {
		header.Add(col.New(salesColumns[i%len(salesColumns)]).Add(text.New(name, headerText)).WithStyle(&headerCell))
	}
	m.AddRows(header)

	if len(b.Rows) == 0 {
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(text.New("No sales recorded", props.Text{
					Size:  8,
					Style: fontstyle.Italic,
					Align: align.Center,
					Color: mutedColor,
				})),
			),
		)
	}

	for i, r := range b.Rows {
		addSalesRow(m, r, i%2 == 1)
	}

	totalCell := &props.Cell{BackgroundColor: summaryBg}
	totalText := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	m.AddRows(
		row.New(8).Add(
			col.New(10).Add(text.New(b.TotalLabel, totalText)).WithStyle(totalCell),
			col.New(2).Add(text.New(b.TotalValue, totalText)).WithStyle(totalCell),
		),
	)
}

func addSalesRow(m core.Maroto, r TableRow, striped bool) {
	base := props.Text{Size: 8, Align: align.Left}
	right := base
	right.Align = align.Right

	cols := []core.Col{
		col.New(salesColumns[0]).Add(text.New(r.Category, base)),
		col.New(salesColumns[1]).Add(text.New(r.Product, base)),
		col.New(salesColumns[2]).Add(text.New(r.PackSize, base)),
		col.New(salesColumns[3]).Add(text.New(r.Quantity, right)),
		col.New(salesColumns[4]).Add(text.New(r.UnitPrice, right)),
		col.New(salesColumns[5]).Add(text.New(r.Total, right)),
	}

	if striped {
		cell := &props.Cell{BackgroundColor: stripeBg}
		for i, c := range cols {
			cols[i] = c.WithStyle(cell)
		}
	}

	m.AddRows(row.New(7).Add(cols...))
}

func addParagraph(m core.Maroto, b ParagraphBlock) {
	m.AddAutoRow(
		col.New(12).Add(
			text.New(b.Text, props.Text{
				Size:  9,
				Align: align.Left,
			}),
		),
	)
}

// addFooter adds the static contact lines at the bottom.
func addFooter(m core.Maroto, b FooterBlock) {
	m.AddRows(row.New(8))
	for _, line := range b.Lines {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(
					text.New(line, props.Text{
						Size:  7,
						Align: align.Center,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					}),
				),
			),
		)
	}
}
