package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/pocketbase/pocketbase/core"
)

const flashToastCookie = "flash_toast"

// SetToast queues a toast for the client. HTMX requests pick it up from the
// showToast event in HX-Trigger (merged into any trigger already set); full
// page loads read the short-lived flash_toast cookie.
func SetToast(e *core.RequestEvent, toastType string, message string) {
	payload := map[string]string{"message": message, "type": toastType}

	trigger := map[string]any{}
	if existing := e.Response.Header().Get("HX-Trigger"); existing != "" {
		if err := json.Unmarshal([]byte(existing), &trigger); err != nil {
			toastLogger(e).Warn("toast: replacing HX-Trigger that is not JSON", "value", existing, "error", err)
			trigger = map[string]any{}
		}
	}
	trigger["showToast"] = payload

	data, err := json.Marshal(trigger)
	if err != nil {
		toastLogger(e).Warn("toast: could not encode HX-Trigger", "error", err)
		return
	}
	e.Response.Header().Set("HX-Trigger", string(data))

	cookieVal, err := json.Marshal(payload)
	if err != nil {
		return
	}
	http.SetCookie(e.Response, &http.Cookie{
		Name:     flashToastCookie,
		Value:    url.QueryEscape(string(cookieVal)),
		Path:     "/",
		MaxAge:   10,
		SameSite: http.SameSiteLaxMode,
	})
}

// ErrorToast answers with an error toast. HX-Reswap: none keeps the form on
// screen so nothing the user typed is lost.
func ErrorToast(e *core.RequestEvent, statusCode int, message string) error {
	SetToast(e, "error", message)
	e.Response.Header().Set("HX-Reswap", "none")
	return e.String(statusCode, message)
}

func toastLogger(e *core.RequestEvent) *slog.Logger {
	if e.App != nil {
		return e.App.Logger()
	}
	return slog.Default()
}
