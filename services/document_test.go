package services

import (
	"reflect"
	"testing"
)

var testBranding = Branding{
	Organization: "Growmate",
	ReportTitle:  "Daily Sales Report",
	FooterLines:  []string{"Growmate Field Sales", "support@growmate.example"},
	Currency:     "KSh",
}

func TestBuildDocument_Layout(t *testing.T) {
	doc := BuildDocument(sampleForm(t).Freeze(), testBranding)

	var kinds []string
	for _, b := range doc.Blocks {
		kinds = append(kinds, reflect.TypeOf(b).Name())
	}
	want := []string{
		"TitleBlock", "MetaBlock", "MetaBlock",
		"HeadingBlock", "SummaryBlock", "SummaryBlock", "SummaryBlock",
		"HeadingBlock", "TableBlock",
		"HeadingBlock", "ParagraphBlock",
		"HeadingBlock", "ParagraphBlock",
		"HeadingBlock", "ParagraphBlock",
		"HeadingBlock", "ParagraphBlock",
		"FooterBlock",
	}
	if !reflect.DeepEqual(kinds, want) {
		t.Fatalf("blocks =\n%v\nwant\n%v", kinds, want)
	}

	if doc.Blocks[1] != (MetaBlock{Label: "Date", Value: "19-10-2026"}) {
		t.Errorf("date line = %+v", doc.Blocks[1])
	}
	if doc.Blocks[2] != (MetaBlock{Label: "Report Author", Value: "Wanjiru Kamau"}) {
		t.Errorf("author line = %+v", doc.Blocks[2])
	}
	summary := []SummaryBlock{
		{Label: "Daily Target", Value: "KSh 2,000.00"},
		{Label: "Total Sales", Value: "KSh 500.00"},
		{Label: "Target Achieved", Value: "25.00%"},
	}
	for i, s := range summary {
		if doc.Blocks[4+i] != s {
			t.Errorf("summary %d = %+v, want %+v", i, doc.Blocks[4+i], s)
		}
	}
	if p := doc.Blocks[14].(ParagraphBlock); p.Text != "Late delivery" {
		t.Errorf("issues paragraph = %q", p.Text)
	}
}

func TestBuildDocument_TableRows(t *testing.T) {
	doc := BuildDocument(sampleForm(t).Freeze(), testBranding)
	table := findTable(t, doc)

	want := []TableRow{
		{Category: "Seeds", Product: "Tomato Seeds", PackSize: "10 g", Quantity: "10", UnitPrice: "KSh 50.00", Total: "KSh 500.00"},
		{Category: "Fertilizers", Product: "NPK Mix", PackSize: "5kg", Quantity: "5", UnitPrice: "KSh 0.00", Total: "KSh 0.00"},
	}
	if !reflect.DeepEqual(table.Rows, want) {
		t.Errorf("rows =\n%+v\nwant\n%+v", table.Rows, want)
	}
	if table.TotalValue != "KSh 500.00" {
		t.Errorf("table total = %q", table.TotalValue)
	}
}

func TestBuildDocument_NoTarget(t *testing.T) {
	f := sampleForm(t)
	if err := f.Set(FieldDailyTarget, ""); err != nil {
		t.Fatal(err)
	}
	doc := BuildDocument(f.Freeze(), Branding{ReportTitle: "Daily Sales Report"})

	for _, b := range doc.Blocks {
		switch blk := b.(type) {
		case SummaryBlock:
			if blk.Label == "Daily Target" {
				t.Error("no Daily Target line expected without a target")
			}
			if blk.Label == "Target Achieved" && blk.Value != "N/A" {
				t.Errorf("achievement = %q, want N/A", blk.Value)
			}
		case FooterBlock:
			t.Error("no footer expected without footer lines")
		}
	}
}

func TestBuildDocument_Idempotent(t *testing.T) {
	snap := sampleForm(t).Freeze()

	first := BuildDocument(snap, testBranding)
	second := BuildDocument(snap, testBranding)
	if !reflect.DeepEqual(first, second) {
		t.Error("building the same snapshot twice should give equal documents")
	}
}

func findTable(t *testing.T, doc Document) TableBlock {
	t.Helper()

	for _, b := range doc.Blocks {
		if tb, ok := b.(TableBlock); ok {
			return tb
		}
	}
	t.Fatal("document has no sales table")
	return TableBlock{}
}
