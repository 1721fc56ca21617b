package collections_test

import (
	"testing"

	"growmatereport/collections"
	"growmatereport/testhelpers"
)

func TestSetup_CatalogCollectionExists(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	col, err := app.FindCollectionByNameOrId(collections.CatalogCollection)
	if err != nil {
		t.Fatalf("collection %q not found after Setup(): %v", collections.CatalogCollection, err)
	}
	if col.Name != collections.CatalogCollection {
		t.Errorf("expected collection name %q, got %q", collections.CatalogCollection, col.Name)
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	col, _ := app.FindCollectionByNameOrId(collections.CatalogCollection)
	firstID := col.Id

	if err := collections.Setup(app); err != nil {
		t.Fatalf("second Setup() failed: %v", err)
	}

	col, err := app.FindCollectionByNameOrId(collections.CatalogCollection)
	if err != nil {
		t.Fatalf("collection missing after second Setup(): %v", err)
	}
	if col.Id != firstID {
		t.Errorf("collection id changed after second Setup(): %s -> %s", firstID, col.Id)
	}
}

func TestSetup_CatalogFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId(collections.CatalogCollection)

	for _, f := range []string{"category", "product", "unit", "pack_sizes", "sort_order"} {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("%s: missing field %q", collections.CatalogCollection, f)
		}
	}
}
