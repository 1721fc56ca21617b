package services

import "github.com/shopspring/decimal"

// Block is one element of a report document. Renderers switch on the concrete type.
type Block interface {
	isBlock()
}

// TitleBlock is the document heading: organization and report title.
type TitleBlock struct {
	Organization string
	Title        string
}

// MetaBlock is a label/value header line such as the date or author.
type MetaBlock struct {
	Label string
	Value string
}

// HeadingBlock starts a document section.
type HeadingBlock struct {
	Text string
}

// SummaryBlock is a highlighted label/value figure such as total sales.
type SummaryBlock struct {
	Label string
	Value string
}

// TableRow is one sales line of the breakdown table, already formatted.
type TableRow struct {
	Category  string
	Product   string
	PackSize  string
	Quantity  string
	UnitPrice string
	Total     string
}

// TableBlock is the sales breakdown with its closing total line.
type TableBlock struct {
	Columns    []string
	Rows       []TableRow
	TotalLabel string
	TotalValue string
}

// ParagraphBlock is free text reproduced verbatim.
type ParagraphBlock struct {
	Text string
}

// FooterBlock carries static contact lines.
type FooterBlock struct {
	Lines []string
}

func (TitleBlock) isBlock()     {}
func (MetaBlock) isBlock()      {}
func (HeadingBlock) isBlock()   {}
func (SummaryBlock) isBlock()   {}
func (TableBlock) isBlock()     {}
func (ParagraphBlock) isBlock() {}
func (FooterBlock) isBlock()    {}

// Document is the renderer-independent report tree.
type Document struct {
	Title  string
	Blocks []Block
}

// Branding holds the static text printed on every report and the currency
// symbol its amounts are shown in.
type Branding struct {
	Organization string
	ReportTitle  string
	FooterLines  []string
	Currency     string
}

// Money formats an amount in the branding's currency.
func (b Branding) Money(amount decimal.Decimal) string {
	return FormatMoney(amount, b.Currency)
}

// SalesTableColumns are the headers of the breakdown table.
var SalesTableColumns = []string{"Category", "Product", "Pack Size", "Qty", "Unit Price", "Total"}

// BuildDocument turns a snapshot into a document tree. The output depends only
// on the snapshot and branding, so building twice yields equal documents.
func BuildDocument(s *ReportSnapshot, b Branding) Document {
	doc := Document{Title: b.ReportTitle}

	doc.Blocks = append(doc.Blocks,
		TitleBlock{Organization: b.Organization, Title: b.ReportTitle},
		MetaBlock{Label: "Date", Value: s.DisplayDate()},
		MetaBlock{Label: "Report Author", Value: s.Author()},
	)

	doc.Blocks = append(doc.Blocks, HeadingBlock{Text: "Sales Summary"})
	achievement := s.Achievement()
	if achievement.Defined {
		doc.Blocks = append(doc.Blocks, SummaryBlock{Label: "Daily Target", Value: b.Money(achievement.Target)})
	}
	doc.Blocks = append(doc.Blocks,
		SummaryBlock{Label: "Total Sales", Value: b.Money(s.TotalSales())},
		SummaryBlock{Label: "Target Achieved", Value: achievement.Label()},
	)

	doc.Blocks = append(doc.Blocks, HeadingBlock{Text: "Detailed Sales per Product"})
	doc.Blocks = append(doc.Blocks, buildSalesTable(s, b))

	sections := []struct {
		heading string
		text    string
	}{
		{"Marketing Activities", s.MarketingActivities()},
		{"Competitive Analysis", s.CompetitiveAnalysis()},
		{"Issues and Challenges", s.Issues()},
		{"Upcoming Actions", s.UpcomingActions()},
	}
	for _, sec := range sections {
		doc.Blocks = append(doc.Blocks, HeadingBlock{Text: sec.heading}, ParagraphBlock{Text: sec.text})
	}

	if len(b.FooterLines) > 0 {
		lines := make([]string, len(b.FooterLines))
		copy(lines, b.FooterLines)
		doc.Blocks = append(doc.Blocks, FooterBlock{Lines: lines})
	}

	return doc
}

func buildSalesTable(s *ReportSnapshot, b Branding) TableBlock {
	cols := make([]string, len(SalesTableColumns))
	copy(cols, SalesTableColumns)

	table := TableBlock{
		Columns:    cols,
		TotalLabel: "Total Sales",
		TotalValue: b.Money(s.TotalSales()),
	}

	for _, e := range s.Entries() {
		if !e.HasQuantity() {
			continue
		}
		table.Rows = append(table.Rows, TableRow{
			Category:  e.Category,
			Product:   Product{Name: e.Product}.Label(),
			PackSize:  e.PackSize.Display(e.Unit),
			Quantity:  formatQty(e.Quantity),
			UnitPrice: b.Money(ParseAmount(e.UnitPrice)),
			Total:     b.Money(e.Total()),
		})
	}
	return table
}
