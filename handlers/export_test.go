package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketbase/pocketbase/core"
	"github.com/xuri/excelize/v2"
)

func TestHandleReportDownloadPDF_NoReport(t *testing.T) {
	app, d := newTestDeps(t)
	sess := d.Sessions.Create()

	req := withSession(httptest.NewRequest(http.MethodGet, "/report/download", nil), sess)
	rec := httptest.NewRecorder()
	if err := HandleReportDownloadPDF(d)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if rec.Header().Get("HX-Reswap") != "none" {
		t.Errorf("expected HX-Reswap none")
	}
}

func TestHandleReportDownloadPDF(t *testing.T) {
	app, d := newTestDeps(t)
	sess := d.Sessions.Create()
	publishReport(t, d, sess)

	req := withSession(httptest.NewRequest(http.MethodGet, "/report/download", nil), sess)
	rec := httptest.NewRecorder()
	if err := HandleReportDownloadPDF(d)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="DailyReport_19-10-2026.pdf"` {
		t.Errorf("Content-Disposition = %q", cd)
	}
	_, pdf := sess.Report()
	if !bytes.Equal(rec.Body.Bytes(), pdf) {
		t.Error("download should return the PDF rendered at submit")
	}
}

func TestHandleReportDownloadExcel(t *testing.T) {
	app, d := newTestDeps(t)
	sess := d.Sessions.Create()
	publishReport(t, d, sess)

	req := withSession(httptest.NewRequest(http.MethodGet, "/report/download/excel", nil), sess)
	rec := httptest.NewRecorder()
	if err := HandleReportDownloadExcel(d)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="DailyReport_19-10-2026.xlsx"` {
		t.Errorf("Content-Disposition = %q", cd)
	}

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()
	if got := f.GetSheetName(0); got != "Daily Report" {
		t.Errorf("sheet = %q, want Daily Report", got)
	}
}

func TestHandleReportDownload_NoSession(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		handler func(*Deps) func(*core.RequestEvent) error
	}{
		{"pdf", "/report/download", HandleReportDownloadPDF},
		{"excel", "/report/download/excel", HandleReportDownloadExcel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, d := newTestDeps(t)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			if err := tt.handler(d)(newTestRequestEvent(app, req, rec)); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusNotFound {
				t.Errorf("status = %d, want 404", rec.Code)
			}
			if got := rec.Header().Get("Set-Cookie"); got != "" {
				t.Errorf("download must not start a session, got cookie %q", got)
			}
			if d.Sessions.Len() != 0 {
				t.Errorf("sessions = %d, want 0", d.Sessions.Len())
			}
		})
	}
}

func TestHandleReportDownload_Busy(t *testing.T) {
	app, d := newTestDeps(t)
	sess := d.Sessions.Create()
	publishReport(t, d, sess)
	sess.TryBegin()
	defer sess.End()

	req := withSession(httptest.NewRequest(http.MethodGet, "/report/download", nil), sess)
	rec := httptest.NewRecorder()
	if err := HandleReportDownloadPDF(d)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}
