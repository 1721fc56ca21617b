package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase/core"

	"growmatereport/services"
	"growmatereport/templates"
)

// maxFormMemory bounds multipart form parsing; the report form has no files.
const maxFormMemory = 1 << 20

// postedValues parses url-encoded and multipart bodies alike.
func postedValues(r *http.Request) (url.Values, error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, err
	}
	return r.PostForm, nil
}

// renderReport writes the form: the content fragment for HTMX requests,
// the full page otherwise.
func renderReport(e *core.RequestEvent, data templates.ReportPageData) error {
	var component templ.Component
	if e.Request.Header.Get("HX-Request") == "true" {
		component = templates.ReportContent(data)
	} else {
		component = templates.ReportPage(data)
	}
	return component.Render(e.Request.Context(), e.Response)
}

// buildPageData maps the form state onto the report page view.
func buildPageData(d *Deps, form *services.ReportForm, errs map[string]string, active string, sess *services.Session) templates.ReportPageData {
	schema := d.Schema
	ids := make(map[string]string)
	for i, name := range schema.Fields() {
		ids[name] = "field-" + strconv.Itoa(i)
	}

	view := func(name, inputType string) templates.FieldView {
		rule, _ := schema.Rule(name)
		return templates.FieldView{
			Name:      name,
			ID:        ids[name],
			Label:     rule.Label,
			Value:     form.Get(name),
			Error:     errs[name],
			InputType: inputType,
			Required:  rule.Required,
		}
	}

	data := templates.ReportPageData{
		Organization: d.Branding.Organization,
		Currency:     d.Branding.Currency,
		Title:        d.Branding.ReportTitle,
		Date:         view(services.FieldDate, "date"),
		Author:       view(services.FieldAuthor, "text"),
		DailyTarget:  view(services.FieldDailyTarget, "number"),
		Total:        totalData(form, d.Branding),
		ErrorCount:   len(errs),
	}
	for _, name := range []string{
		services.FieldMarketingActivities,
		services.FieldCompetitiveAnalysis,
		services.FieldIssues,
		services.FieldUpcomingActions,
	} {
		data.Narratives = append(data.Narratives, view(name, "textarea"))
	}

	catalog := schema.Catalog()
	for _, ref := range catalog.ProductRefs() {
		data.Products = append(data.Products, productOption(catalog, ref))
	}

	var firstWithError string
	for _, e := range catalog.Entries() {
		ref := services.ProductRef{Category: e.Category, Product: e.Product}.String()
		n := len(data.Sections)
		if n == 0 || data.Sections[n-1].Ref != ref {
			data.Sections = append(data.Sections, templates.ProductSection{
				ProductOption: productOption(catalog, services.ProductRef{Category: e.Category, Product: e.Product}),
			})
			n++
		}
		section := &data.Sections[n-1]

		qtyName, priceName := e.QuantityKey().String(), e.PriceKey().String()
		qty := view(qtyName, "number")
		price := view(priceName, "number")

		row := templates.PackSizeRow{Size: e.PackSize.Display(e.Unit), Quantity: qty, Price: price}
		entry := services.SalesEntry{Quantity: qty.Value, UnitPrice: price.Value}
		if entry.HasQuantity() {
			row.Total = d.Branding.Money(entry.Total())
			section.Entered++
		}
		if firstWithError == "" && (qty.Error != "" || price.Error != "") {
			firstWithError = ref
		}
		section.Rows = append(section.Rows, row)
	}

	data.ActiveProduct = activeProduct(catalog, active, firstWithError)
	for i := range data.Sections {
		data.Sections[i].Active = data.Sections[i].Ref == data.ActiveProduct
	}

	if sess != nil {
		if snap, _ := sess.Report(); snap != nil {
			data.Export = templates.ExportData{
				Available: true,
				Filename:  services.DownloadFilename(snap, ".pdf"),
				Author:    snap.Author(),
			}
		}
	}
	return data
}

func productOption(c services.Catalog, ref services.ProductRef) templates.ProductOption {
	p, _ := c.Product(ref)
	return templates.ProductOption{Ref: ref.String(), Category: ref.Category, Label: p.Label()}
}

// activeProduct picks the visible product: the requested one if it exists,
// else the first product with an invalid field, else the first product.
func activeProduct(c services.Catalog, requested, firstWithError string) string {
	if ref, ok := services.ParseProductRef(requested); ok {
		if _, found := c.Product(ref); found && firstWithError == "" {
			return ref.String()
		}
	}
	if firstWithError != "" {
		return firstWithError
	}
	if refs := c.ProductRefs(); len(refs) > 0 {
		return refs[0].String()
	}
	return ""
}

func totalData(form *services.ReportForm, b services.Branding) templates.TotalData {
	a := form.Achievement()
	td := templates.TotalData{
		Total:       b.Money(form.Total()),
		HasTarget:   a.Defined,
		Achievement: a.Label(),
	}
	if a.Defined {
		td.Target = b.Money(a.Target)
	}
	return td
}
