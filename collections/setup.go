package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// CatalogCollection stores the product catalog, one record per product.
const CatalogCollection = "catalog_products"

// Setup creates the catalog_products collection unless it already exists.
func Setup(app *pocketbase.PocketBase) error {
	_, err := ensureCollection(app, CatalogCollection, func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "category", Required: true})
		c.Fields.Add(&core.TextField{Name: "product", Required: true})
		c.Fields.Add(&core.TextField{Name: "unit", Required: true})
		// Ordered list of pack size labels, e.g. ["50","100","1ltr"].
		c.Fields.Add(&core.JSONField{Name: "pack_sizes", Required: true})
		c.Fields.Add(&core.NumberField{Name: "sort_order"})
		// A product may belong to a single category only.
		c.AddIndex("idx_catalog_products_product", true, "product", "")
	})
	return err
}

// ensureCollection returns the named collection, creating it with the fields
// added by define when it is missing.
func ensureCollection(app *pocketbase.PocketBase, name string, define func(*core.Collection)) (*core.Collection, error) {
	if existing, err := app.FindCollectionByNameOrId(name); err == nil {
		app.Logger().Debug("collections: already present", "collection", name)
		return existing, nil
	}

	collection := core.NewBaseCollection(name)
	define(collection)

	if err := app.Save(collection); err != nil {
		return nil, fmt.Errorf("create collection %q: %w", name, err)
	}

	app.Logger().Info("collections: created", "collection", name, "id", collection.Id)
	return collection, nil
}
