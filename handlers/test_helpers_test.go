package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"growmatereport/collections"
	"growmatereport/config"
	"growmatereport/services"
	"growmatereport/testhelpers"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

var testNow = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

// newTestDeps seeds the small test catalog into a fresh app, loads it back and
// wires handler dependencies around it.
func newTestDeps(t *testing.T) (*pocketbase.PocketBase, *Deps) {
	t.Helper()

	app := testhelpers.NewTestApp(t)
	testhelpers.SeedTestCatalog(t, app, testhelpers.SmallCatalog(t))

	catalog, err := collections.LoadCatalog(app)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	schema, err := services.GenerateSchema(catalog)
	if err != nil {
		t.Fatalf("GenerateSchema: %v", err)
	}

	d := NewDeps(app.Logger(), schema, config.Config{
		Report: config.ReportConfig{
			Organization: "Growmate",
			Title:        "Daily Sales Report",
			FooterLines:  []string{"Growmate Field Sales"},
			Currency:     "KSh",
		},
		Session: config.SessionConfig{TTL: time.Hour},
	})
	d.Now = func() time.Time { return testNow }
	return app, d
}

func salesKey(category, product, size string, role services.FieldRole) string {
	return services.FieldKey{Category: category, Product: product, PackSize: services.PackSize(size), Role: role}.String()
}

// validReport is a complete submission: 10 x KSh 50 of tomato seeds against a
// KSh 2,000 target.
func validReport() url.Values {
	v := url.Values{}
	v.Set(services.FieldDate, "2026-10-19")
	v.Set(services.FieldAuthor, "Wanjiru Kamau")
	v.Set(services.FieldDailyTarget, "2000")
	v.Set(services.FieldMarketingActivities, "Farmer meeting at Nakuru")
	v.Set(services.FieldCompetitiveAnalysis, "Competitor discounting fungicides")
	v.Set(services.FieldIssues, "Late stock delivery")
	v.Set(services.FieldUpcomingActions, "Demo plot visit")
	v.Set(salesKey("Seeds", "Tomato_Seeds", "10", services.RoleQuantity), "10")
	v.Set(salesKey("Seeds", "Tomato_Seeds", "10", services.RolePrice), "50")
	return v
}

func newFormRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func withSession(req *http.Request, sess *services.Session) *http.Request {
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: sess.ID})
	return req
}

// publishReport stores a rendered report in the session as a submit would.
func publishReport(t *testing.T, d *Deps, sess *services.Session) {
	t.Helper()

	form := services.NewReportForm(d.Schema)
	form.Bind(validReport())
	snap := form.Freeze()
	pdf, err := services.RenderPDF(services.BuildDocument(snap, d.Branding))
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	sess.Publish(snap, pdf)
}
