// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"

	"growmatereport/collections"
	"growmatereport/services"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	if err := collections.Setup(app); err != nil {
		t.Fatalf("failed to set up collections: %v", err)
	}

	return app
}

// SmallCatalog returns a three-product catalog with five pack sizes:
//
//	Seeds/Tomato_Seeds        g    10, 50
//	Fertilizers/NPK_Mix       kg   1kg, 5kg
//	Fertilizers/Bio_Booster   ml   250
func SmallCatalog(t *testing.T) services.Catalog {
	t.Helper()

	c, err := services.NewCatalog([]services.Category{
		{Name: "Seeds", Products: []services.Product{
			{Name: "Tomato_Seeds", Unit: "g", PackSizes: []services.PackSize{"10", "50"}},
		}},
		{Name: "Fertilizers", Products: []services.Product{
			{Name: "NPK_Mix", Unit: "kg", PackSizes: []services.PackSize{"1kg", "5kg"}},
			{Name: "Bio_Booster", Unit: "ml", PackSizes: []services.PackSize{"250"}},
		}},
	})
	if err != nil {
		t.Fatalf("failed to build test catalog: %v", err)
	}
	return c
}

// SmallSchema generates the form schema for SmallCatalog.
func SmallSchema(t *testing.T) *services.Schema {
	t.Helper()

	s, err := services.GenerateSchema(SmallCatalog(t))
	if err != nil {
		t.Fatalf("failed to generate test schema: %v", err)
	}
	return s
}

// SeedTestCatalog stores a catalog in the app and fails the test on error.
func SeedTestCatalog(t *testing.T, app *pocketbase.PocketBase, c services.Catalog) {
	t.Helper()

	if err := collections.SeedCatalog(app, c); err != nil {
		t.Fatalf("failed to seed test catalog: %v", err)
	}
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHTMLNotContains checks that body contains none of the specified fragments.
func AssertHTMLNotContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if strings.Contains(body, frag) {
			t.Errorf("expected HTML not to contain %q\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
