package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCurrentSession_NewCookie(t *testing.T) {
	app, d := newTestDeps(t)

	req := httptest.NewRequest(http.MethodPost, "/report/total", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	sess := currentSession(e, d)
	if sess == nil {
		t.Fatal("expected a session")
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != SessionCookie || cookies[0].Value != sess.ID {
		t.Fatalf("expected %s cookie with session id, got %+v", SessionCookie, cookies)
	}
	if !cookies[0].HttpOnly {
		t.Error("session cookie should be HttpOnly")
	}

	if again := currentSession(e, d); again != sess {
		t.Error("expected the session stored in the request context to be reused")
	}
}

func TestCurrentSession_ReadOnlyRequests(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodHead} {
		t.Run(method, func(t *testing.T) {
			app, d := newTestDeps(t)

			req := httptest.NewRequest(method, "/", nil)
			rec := httptest.NewRecorder()

			if sess := currentSession(newTestRequestEvent(app, req, rec), d); sess != nil {
				t.Errorf("expected no session, got %s", sess.ID)
			}
			if cookies := rec.Result().Cookies(); len(cookies) != 0 {
				t.Errorf("expected no cookie, got %+v", cookies)
			}
			if d.Sessions.Len() != 0 {
				t.Errorf("sessions = %d, want 0", d.Sessions.Len())
			}
		})
	}
}

func TestCurrentSession_ExistingCookie(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		t.Run(method, func(t *testing.T) {
			app, d := newTestDeps(t)
			existing := d.Sessions.Create()

			req := withSession(httptest.NewRequest(method, "/", nil), existing)
			rec := httptest.NewRecorder()

			if sess := currentSession(newTestRequestEvent(app, req, rec), d); sess != existing {
				t.Errorf("expected existing session %s, got %v", existing.ID, sess)
			}
			if len(rec.Result().Cookies()) != 0 {
				t.Error("no cookie should be set for a known session")
			}
		})
	}
}

func TestCurrentSession_ExpiredCookie(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		wantFresh bool
	}{
		{"post replaces", http.MethodPost, true},
		{"get drops", http.MethodGet, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, d := newTestDeps(t)
			now := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
			d.Sessions.SetClock(func() time.Time { return now })
			old := d.Sessions.Create()

			now = now.Add(2 * time.Hour)

			req := withSession(httptest.NewRequest(tt.method, "/", nil), old)
			rec := httptest.NewRecorder()

			sess := currentSession(newTestRequestEvent(app, req, rec), d)
			cookies := rec.Result().Cookies()

			if !tt.wantFresh {
				if sess != nil {
					t.Errorf("expected no session, got %s", sess.ID)
				}
				if len(cookies) != 0 {
					t.Errorf("expected no cookie, got %+v", cookies)
				}
				return
			}
			if sess == nil || sess == old {
				t.Fatal("expired session should be replaced")
			}
			if len(cookies) != 1 || cookies[0].Value != sess.ID {
				t.Errorf("expected new session cookie, got %+v", cookies)
			}
		})
	}
}

func TestSessionMiddleware_StoresSession(t *testing.T) {
	tests := []struct {
		name   string
		method string
		want   bool
	}{
		{"post", http.MethodPost, true},
		{"get", http.MethodGet, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, d := newTestDeps(t)

			req := httptest.NewRequest(tt.method, "/", nil)
			rec := httptest.NewRecorder()
			e := newTestRequestEvent(app, req, rec)

			if err := SessionMiddleware(d)(e); err != nil {
				t.Fatalf("middleware error: %v", err)
			}
			if got := GetSession(e.Request) != nil; got != tt.want {
				t.Errorf("session in context = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSweepSessions(t *testing.T) {
	_, d := newTestDeps(t)
	now := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	d.Sessions.SetClock(func() time.Time { return now })

	d.Sessions.Create()
	d.Sessions.Create()
	now = now.Add(2 * time.Hour)
	live := d.Sessions.Create()

	d.SweepSessions()

	if d.Sessions.Len() != 1 {
		t.Fatalf("sessions = %d, want 1", d.Sessions.Len())
	}
	if _, ok := d.Sessions.Get(live.ID); !ok {
		t.Error("live session should survive the sweep")
	}
}
