package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/pocketbase/pocketbase/core"
)

func newToastEvent() (*core.RequestEvent, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec
	return e, rec
}

// parseToast decodes the showToast payload of the HX-Trigger header.
func parseToast(t *testing.T, header string) (map[string]json.RawMessage, map[string]string) {
	t.Helper()

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(header), &parsed); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}
	raw, ok := parsed["showToast"]
	if !ok {
		t.Fatal("expected showToast key in HX-Trigger JSON")
	}
	var toast map[string]string
	if err := json.Unmarshal(raw, &toast); err != nil {
		t.Fatalf("showToast value is not valid JSON: %v", err)
	}
	return parsed, toast
}

func TestSetToast(t *testing.T) {
	tests := []struct {
		name      string
		toastType string
		message   string
	}{
		{"success", "success", "Report generated. You can download or share it now."},
		{"error", "error", "Please correct the highlighted fields."},
		{"quotes", "info", `Shared "DailyReport" with the team`},
		{"markup", "warning", `<script>alert("x")</script>`},
		{"currency", "success", "Total KSh 123,456.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, rec := newToastEvent()
			SetToast(e, tt.toastType, tt.message)

			_, toast := parseToast(t, rec.Header().Get("HX-Trigger"))
			if toast["type"] != tt.toastType || toast["message"] != tt.message {
				t.Errorf("toast = %v, want %s %q", toast, tt.toastType, tt.message)
			}
		})
	}
}

func TestSetToast_MergesWithExisting(t *testing.T) {
	e, rec := newToastEvent()
	rec.Header().Set("HX-Trigger", `{"reportReady":{"filename":"DailyReport_19-10-2026.pdf"}}`)

	SetToast(e, "success", "Report generated")

	parsed, toast := parseToast(t, rec.Header().Get("HX-Trigger"))
	if _, ok := parsed["reportReady"]; !ok {
		t.Error("expected reportReady event to be preserved after merge")
	}
	if toast["message"] != "Report generated" {
		t.Errorf("message = %q", toast["message"])
	}
}

func TestSetToast_OverwritesInvalidExisting(t *testing.T) {
	e, rec := newToastEvent()
	rec.Header().Set("HX-Trigger", "notValidJSON")

	SetToast(e, "error", "Overwritten")

	if _, toast := parseToast(t, rec.Header().Get("HX-Trigger")); toast["message"] != "Overwritten" {
		t.Errorf("message = %q", toast["message"])
	}
}

func TestSetToast_FlashCookie(t *testing.T) {
	e, rec := newToastEvent()
	SetToast(e, "success", "Report generated")

	var flash *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == flashToastCookie {
			flash = c
		}
	}
	if flash == nil {
		t.Fatal("expected flash_toast cookie")
	}
	raw, err := url.QueryUnescape(flash.Value)
	if err != nil {
		t.Fatalf("cookie is not query-escaped: %v", err)
	}
	var toast map[string]string
	if err := json.Unmarshal([]byte(raw), &toast); err != nil {
		t.Fatalf("cookie is not JSON: %v", err)
	}
	if toast["message"] != "Report generated" || toast["type"] != "success" {
		t.Errorf("cookie toast = %v", toast)
	}
}

func TestErrorToast(t *testing.T) {
	tests := []struct {
		name string
		code int
		msg  string
	}{
		{"no report", http.StatusNotFound, "Please submit the report before downloading or sharing it."},
		{"missing author", http.StatusBadRequest, "Please provide your name before sharing the report."},
		{"busy", http.StatusConflict, busyMessage},
		{"render failure", http.StatusInternalServerError, "Failed to generate the report. Please try again."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, rec := newToastEvent()
			if err := ErrorToast(e, tt.code, tt.msg); err != nil {
				t.Fatalf("ErrorToast returned error: %v", err)
			}

			if rec.Code != tt.code {
				t.Errorf("status = %d, want %d", rec.Code, tt.code)
			}
			if rec.Header().Get("HX-Reswap") != "none" {
				t.Error("expected HX-Reswap: none")
			}
			if rec.Body.String() != tt.msg {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.msg)
			}
			if _, toast := parseToast(t, rec.Header().Get("HX-Trigger")); toast["type"] != "error" || toast["message"] != tt.msg {
				t.Errorf("toast = %v", toast)
			}
		})
	}
}
