package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"growmatereport/services"
)

// SeedCatalog stores the given catalog in catalog_products, one record per
// product. It is safe to call on every startup because it returns early if
// any catalog records already exist.
func SeedCatalog(app *pocketbase.PocketBase, catalog services.Catalog) error {
	col, err := app.FindCollectionByNameOrId(CatalogCollection)
	if err != nil {
		return fmt.Errorf("seed: could not find %s collection: %w", CatalogCollection, err)
	}
	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("seed: could not query %s: %w", CatalogCollection, err)
	}
	if len(existing) > 0 {
		app.Logger().Debug("seed: catalog already present, skipping", "products", len(existing))
		return nil
	}

	if err := catalog.Validate(); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	order := 0
	for _, cat := range catalog.Categories() {
		for _, p := range cat.Products {
			sizes := make([]string, len(p.PackSizes))
			for i, s := range p.PackSizes {
				sizes[i] = string(s)
			}

			r := core.NewRecord(col)
			r.Set("category", cat.Name)
			r.Set("product", p.Name)
			r.Set("unit", p.Unit)
			r.Set("pack_sizes", sizes)
			r.Set("sort_order", order)
			if err := app.Save(r); err != nil {
				return fmt.Errorf("seed: save product %s/%s: %w", cat.Name, p.Name, err)
			}
			order++
		}
	}

	app.Logger().Info("seed: catalog inserted", "categories", len(catalog.Categories()), "products", order)
	return nil
}
