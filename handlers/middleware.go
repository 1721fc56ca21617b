package handlers

import (
	"context"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"growmatereport/services"
)

type contextKey string

const SessionKey contextKey = "reportSession"

// SessionCookie holds the id of the browser's report session.
const SessionCookie = "report_session"

// GetSession extracts the report session from the request context.
func GetSession(r *http.Request) *services.Session {
	if val, ok := r.Context().Value(SessionKey).(*services.Session); ok {
		return val
	}
	return nil
}

// SessionMiddleware reads the "report_session" cookie and stores the live
// session in the request context. A POST without one starts a new session;
// other requests never create one, so crawlers hitting the form leave no
// state behind.
func SessionMiddleware(d *Deps) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if sess := resolveSession(e, d); sess != nil {
			e.Request = e.Request.WithContext(context.WithValue(e.Request.Context(), SessionKey, sess))
		}
		return e.Next()
	}
}

// currentSession returns the session stored by SessionMiddleware, resolving
// it from the cookie when the middleware did not run. It is nil for a
// read-only request from a browser without a live session.
func currentSession(e *core.RequestEvent, d *Deps) *services.Session {
	if sess := GetSession(e.Request); sess != nil {
		return sess
	}
	sess := resolveSession(e, d)
	if sess != nil {
		e.Request = e.Request.WithContext(context.WithValue(e.Request.Context(), SessionKey, sess))
	}
	return sess
}

// startsSession reports whether a request may create a session.
func startsSession(r *http.Request) bool {
	return r.Method == http.MethodPost
}

func resolveSession(e *core.RequestEvent, d *Deps) *services.Session {
	cookie, err := e.Request.Cookie(SessionCookie)
	if err == nil && cookie.Value != "" {
		if sess, ok := d.Sessions.Get(cookie.Value); ok {
			return sess
		}
		d.Logger.Debug("middleware: report session not found", "session", cookie.Value)
	}

	if !startsSession(e.Request) {
		return nil
	}

	sess := d.Sessions.Create()
	http.SetCookie(e.Response, &http.Cookie{
		Name:     SessionCookie,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}
