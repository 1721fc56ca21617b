package handlers

import (
	"fmt"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"growmatereport/services"
)

const excelMimeType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// HandleReportDownloadPDF returns a handler that downloads the PDF rendered at
// the last submit.
func HandleReportDownloadPDF(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess := currentSession(e, d)
		if sess == nil {
			return ErrorToast(e, http.StatusNotFound, services.UserMessage(services.ErrNoReport))
		}
		if !sess.TryBegin() {
			return ErrorToast(e, http.StatusConflict, busyMessage)
		}
		defer sess.End()

		snap, pdf := sess.Report()
		if snap == nil {
			d.Logger.Debug("export_pdf: no report in session", "session", sess.ID)
			return ErrorToast(e, http.StatusNotFound, services.UserMessage(services.ErrNoReport))
		}

		writeAttachment(e, services.PDFMimeType, services.DownloadFilename(snap, ".pdf"), pdf)
		return nil
	}
}

// HandleReportDownloadExcel returns a handler that builds a spreadsheet of the
// submitted report and downloads it.
func HandleReportDownloadExcel(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess := currentSession(e, d)
		if sess == nil {
			return ErrorToast(e, http.StatusNotFound, services.UserMessage(services.ErrNoReport))
		}
		if !sess.TryBegin() {
			return ErrorToast(e, http.StatusConflict, busyMessage)
		}
		defer sess.End()

		snap, _ := sess.Report()
		if snap == nil {
			d.Logger.Debug("export_excel: no report in session", "session", sess.ID)
			return ErrorToast(e, http.StatusNotFound, services.UserMessage(services.ErrNoReport))
		}

		xlsxBytes, err := services.RenderExcel(services.BuildDocument(snap, d.Branding))
		if err != nil {
			d.Logger.Error("export_excel: failed to generate", "session", sess.ID, "error", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate Excel file")
		}

		writeAttachment(e, excelMimeType, services.DownloadFilename(snap, ".xlsx"), xlsxBytes)
		return nil
	}
}

func writeAttachment(e *core.RequestEvent, contentType, filename string, body []byte) {
	e.Response.Header().Set("Content-Type", contentType)
	e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	e.Response.Write(body)
}
