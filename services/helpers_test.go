package services

import (
	"bytes"
	"testing"
)

// bytesReader wraps a byte slice in a bytes.Reader for use with excelize.OpenReader.
func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

// smallCatalog has three products and five pack sizes.
func smallCatalog(t *testing.T) Catalog {
	t.Helper()

	c, err := NewCatalog([]Category{
		{Name: "Seeds", Products: []Product{
			{Name: "Tomato_Seeds", Unit: "g", PackSizes: []PackSize{"10", "50"}},
		}},
		{Name: "Fertilizers", Products: []Product{
			{Name: "NPK_Mix", Unit: "kg", PackSizes: []PackSize{"1kg", "5kg"}},
			{Name: "Bio_Booster", Unit: "ml", PackSizes: []PackSize{"250"}},
		}},
	})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return c
}

func mustSchema(t *testing.T, c Catalog) *Schema {
	t.Helper()

	s, err := GenerateSchema(c)
	if err != nil {
		t.Fatalf("GenerateSchema: %v", err)
	}
	return s
}

func qtyKey(category, product, size string) string {
	return FieldKey{Category: category, Product: product, PackSize: PackSize(size), Role: RoleQuantity}.String()
}

func priceKey(category, product, size string) string {
	return FieldKey{Category: category, Product: product, PackSize: PackSize(size), Role: RolePrice}.String()
}

// sampleForm fills every required field and two sales lines:
// 10 x 50 tomato seeds and 5 NPK bags with no price.
func sampleForm(t *testing.T) *ReportForm {
	t.Helper()

	f := NewReportForm(mustSchema(t, smallCatalog(t)))
	set := func(name, value string) {
		if err := f.Set(name, value); err != nil {
			t.Fatalf("Set(%q): %v", name, err)
		}
	}
	set(FieldDate, "2026-10-19")
	set(FieldAuthor, "Wanjiru Kamau")
	set(FieldDailyTarget, "2000")
	set(FieldMarketingActivities, "Farmer meeting")
	set(FieldCompetitiveAnalysis, "Price war on fungicides")
	set(FieldIssues, "Late delivery")
	set(FieldUpcomingActions, "Demo plots")
	set(qtyKey("Seeds", "Tomato_Seeds", "10"), "10")
	set(priceKey("Seeds", "Tomato_Seeds", "10"), "50")
	set(qtyKey("Fertilizers", "NPK_Mix", "5kg"), "5")
	return f
}
