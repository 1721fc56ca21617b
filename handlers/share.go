package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"growmatereport/services"
)

// ShareCapableHeader is sent by the browser when navigator.canShare accepts files.
const ShareCapableHeader = "X-Share-Capable"

// browserShareTarget hands the report to the browser, which passes it on to
// navigator.share. The share metadata travels in URL-escaped headers.
type browserShareTarget struct {
	w       http.ResponseWriter
	capable bool
	// committed is set once the status line has been sent.
	committed bool
}

func newBrowserShareTarget(e *core.RequestEvent) *browserShareTarget {
	capable, _ := strconv.ParseBool(e.Request.Header.Get(ShareCapableHeader))
	return &browserShareTarget{w: e.Response, capable: capable}
}

func (t *browserShareTarget) CanShare() bool {
	return t.capable
}

func (t *browserShareTarget) Share(ctx context.Context, req services.ShareRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	h := t.w.Header()
	h.Set("Content-Type", req.MimeType)
	h.Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, req.Filename))
	h.Set("X-Share-Filename", url.PathEscape(req.Filename))
	h.Set("X-Share-Title", url.PathEscape(req.Title))
	h.Set("X-Share-Message", url.PathEscape(req.Message))
	t.w.WriteHeader(http.StatusOK)
	t.committed = true
	_, err := t.w.Write(req.File)
	return err
}

// HandleReportShare hands the submitted PDF to the browser share sheet. The
// author is read from the posted form.
func HandleReportShare(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess := currentSession(e, d)
		if !sess.TryBegin() {
			return ErrorToast(e, http.StatusConflict, busyMessage)
		}
		defer sess.End()

		values, err := postedValues(e.Request)
		if err != nil {
			d.Logger.Warn("report_share: could not parse form", "error", err)
			return ErrorToast(e, http.StatusBadRequest, "Could not read the form. Please try again.")
		}

		_, pdf := sess.Report()
		author := strings.TrimSpace(values.Get(services.FieldAuthor))

		target := newBrowserShareTarget(e)
		req, err := services.ShareReport(e.Request.Context(), target, pdf, author, d.Now())
		if err != nil && target.committed {
			// The status is already out; nothing more can be sent.
			d.Logger.Error("report_share: response interrupted", "session", sess.ID, "error", err)
			return nil
		}
		if err != nil {
			status := shareStatus(err)
			if status == http.StatusInternalServerError {
				d.Logger.Error("report_share: share failed", "session", sess.ID, "error", err)
			} else {
				d.Logger.Debug("report_share: share refused", "session", sess.ID, "error", err)
			}
			return ErrorToast(e, status, services.UserMessage(err))
		}

		d.Logger.Info("report_share: report handed to browser", "session", sess.ID, "filename", req.Filename)
		return nil
	}
}

func shareStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrNoReport):
		return http.StatusNotFound
	case errors.Is(err, services.ErrAuthorRequired):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrShareUnavailable):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
