package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"growmatereport/services"
)

const busyMessage = "A report export is already in progress. Please wait."

// HandleReportSubmit validates the posted form. Invalid forms are rendered
// again with their messages; a valid one is frozen into the session's report
// and its PDF rendered for download and share.
func HandleReportSubmit(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess := currentSession(e, d)
		if !sess.TryBegin() {
			return ErrorToast(e, http.StatusConflict, busyMessage)
		}
		defer sess.End()

		values, err := postedValues(e.Request)
		if err != nil {
			d.Logger.Warn("report_submit: could not parse form", "error", err)
			return ErrorToast(e, http.StatusBadRequest, "Could not read the form. Please try again.")
		}

		form := services.NewReportForm(d.Schema)
		form.Bind(values)
		active := values.Get("active_product")

		if errs := d.Schema.Validate(form); len(errs) > 0 {
			d.Logger.Debug("report_submit: validation failed", "session", sess.ID, "errors", len(errs))
			SetToast(e, "error", "Please correct the highlighted fields.")
			return renderReport(e, buildPageData(d, form, errs, active, sess))
		}

		snap := form.Freeze()
		pdf, err := services.RenderPDF(services.BuildDocument(snap, d.Branding))
		if err != nil {
			d.Logger.Error("report_submit: failed to render PDF", "session", sess.ID, "error", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate the report. Please try again.")
		}
		sess.Publish(snap, pdf)

		d.Logger.Info("report_submit: report generated",
			"session", sess.ID,
			"author", snap.Author(),
			"date", snap.Date(),
			"total", snap.TotalSales().StringFixed(2),
		)
		SetToast(e, "success", "Report generated. You can download or share it now.")
		return renderReport(e, buildPageData(d, form, nil, active, sess))
	}
}
