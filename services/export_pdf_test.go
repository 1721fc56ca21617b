package services

import (
	"bytes"
	"testing"
)

func TestRenderPDF_Report(t *testing.T) {
	doc := BuildDocument(sampleForm(t).Freeze(), testBranding)

	result, err := RenderPDF(doc)
	if err != nil {
		t.Fatalf("RenderPDF() error = %v", err)
	}
	if !bytes.HasPrefix(result, []byte("%PDF-")) {
		t.Errorf("result does not start with PDF header")
	}
}

func TestRenderPDF_NoSales(t *testing.T) {
	f := NewReportForm(mustSchema(t, smallCatalog(t)))
	if err := f.Set(FieldAuthor, "Asha"); err != nil {
		t.Fatal(err)
	}
	doc := BuildDocument(f.Freeze(), Branding{ReportTitle: "Daily Sales Report"})

	if rows := findTable(t, doc).Rows; len(rows) != 0 {
		t.Fatalf("expected no table rows, got %d", len(rows))
	}
	result, err := RenderPDF(doc)
	if err != nil {
		t.Fatalf("RenderPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("RenderPDF() returned empty bytes")
	}
}

func TestRenderPDF_LongNarrative(t *testing.T) {
	f := sampleForm(t)
	long := bytes.Repeat([]byte("Visited dealers in the district and collected feedback. "), 80)
	if err := f.Set(FieldMarketingActivities, string(long)); err != nil {
		t.Fatal(err)
	}

	result, err := RenderPDF(BuildDocument(f.Freeze(), testBranding))
	if err != nil {
		t.Fatalf("RenderPDF() error = %v", err)
	}
	if !bytes.HasPrefix(result, []byte("%PDF-")) {
		t.Errorf("result does not start with PDF header")
	}
}

type unknownBlock struct{}

func (unknownBlock) isBlock() {}

func TestRenderPDF_UnknownBlock(t *testing.T) {
	if _, err := RenderPDF(Document{Blocks: []Block{unknownBlock{}}}); err == nil {
		t.Error("expected error for an unsupported block")
	}
}
