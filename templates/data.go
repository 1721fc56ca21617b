// Package templates renders the report pages and HTMX fragments as templ
// components. Edit the .templ sources and run templ generate.
package templates

import "strconv"

// FieldView is a single form input with its current value and error.
type FieldView struct {
	Name      string
	ID        string
	Label     string
	Value     string
	Error     string
	InputType string // "text", "number", "date" or "textarea"
	Required  bool
}

// ProductOption is one selectable catalog product.
type ProductOption struct {
	Ref      string // "Category/Product"
	Category string
	Label    string
}

// ProductGroup is one <optgroup> of the product select.
type ProductGroup struct {
	Category string
	Products []ProductOption
}

// groupByCategory splits catalog-ordered products into runs of the same
// category.
func groupByCategory(products []ProductOption) []ProductGroup {
	var groups []ProductGroup
	for _, p := range products {
		if n := len(groups); n > 0 && groups[n-1].Category == p.Category {
			groups[n-1].Products = append(groups[n-1].Products, p)
			continue
		}
		groups = append(groups, ProductGroup{Category: p.Category, Products: []ProductOption{p}})
	}
	return groups
}

// PackSizeRow holds the quantity and unit price inputs of one pack size.
type PackSizeRow struct {
	Size     string
	Quantity FieldView
	Price    FieldView
	Total    string
}

// ProductSection groups the pack size rows of one product. Every section is
// rendered; only the active one is visible.
type ProductSection struct {
	ProductOption
	Active  bool
	Entered int
	Rows    []PackSizeRow
}

// TotalData is the live sales summary.
type TotalData struct {
	Total       string
	Target      string
	HasTarget   bool
	Achievement string
}

// ExportData describes the download and share controls shown after a submit.
type ExportData struct {
	Available bool
	Filename  string
	Author    string
}

// ReportPageData is everything the report form needs.
type ReportPageData struct {
	Organization  string
	Title         string
	Currency      string
	Date          FieldView
	Author        FieldView
	DailyTarget   FieldView
	Narratives    []FieldView
	Products      []ProductOption
	Sections      []ProductSection
	ActiveProduct string
	Total         TotalData
	Export        ExportData
	ErrorCount    int
}

func errorSummary(count int) string {
	if count == 1 {
		return "Please fix 1 error before submitting."
	}
	return "Please fix " + strconv.Itoa(count) + " errors before submitting."
}
