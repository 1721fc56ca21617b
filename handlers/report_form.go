package handlers

import (
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"growmatereport/services"
	"growmatereport/templates"
)

// HandleReportForm renders an empty report form. The optional "product" query
// parameter ("Category/Product") selects the visible product.
func HandleReportForm(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess := currentSession(e, d)
		form := services.NewReportForm(d.Schema)
		data := buildPageData(d, form, nil, e.Request.URL.Query().Get("product"), sess)
		return renderReport(e, data)
	}
}

// HandleReportTotal recomputes the total sales and target achievement from
// the posted form.
func HandleReportTotal(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		values, err := postedValues(e.Request)
		if err != nil {
			d.Logger.Warn("report_total: could not parse form", "error", err)
			return ErrorToast(e, http.StatusBadRequest, "Could not read the form. Please try again.")
		}

		form := services.NewReportForm(d.Schema)
		form.Bind(values)
		return templates.TotalFragment(totalData(form, d.Branding)).Render(e.Request.Context(), e.Response)
	}
}

// HandleFieldValidate validates the single field named by the HX-Trigger-Name
// header (or the "field" parameter) and renders its error message.
func HandleFieldValidate(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		values, err := postedValues(e.Request)
		if err != nil {
			d.Logger.Warn("field_validate: could not parse form", "error", err)
			return ErrorToast(e, http.StatusBadRequest, "Could not read the form. Please try again.")
		}

		name := e.Request.Header.Get("HX-Trigger-Name")
		if name == "" {
			name = values.Get("field")
		}
		if !d.Schema.Has(name) {
			return e.String(http.StatusBadRequest, "Unknown field")
		}

		message := ""
		if err := d.Schema.ValidateField(name, values.Get(name)); err != nil {
			message = err.Error()
		}
		return templates.FieldError(message).Render(e.Request.Context(), e.Response)
	}
}

// HandleProductSearch lists the catalog products matching the "q" parameter.
func HandleProductSearch(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		query := strings.TrimSpace(e.Request.URL.Query().Get("q"))
		if query == "" {
			return e.HTML(http.StatusOK, "")
		}

		catalog := d.Schema.Catalog()
		var results []templates.ProductOption
		for _, ref := range catalog.SearchProducts(query) {
			results = append(results, productOption(catalog, ref))
		}
		return templates.ProductResults(query, results).Render(e.Request.Context(), e.Response)
	}
}
