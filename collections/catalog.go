package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"

	"growmatereport/services"
)

// LoadCatalog reads catalog_products in sort order and builds the immutable
// catalog used for the lifetime of the process. Categories appear in the order
// of their first product.
func LoadCatalog(app *pocketbase.PocketBase) (services.Catalog, error) {
	records, err := app.FindRecordsByFilter(CatalogCollection, "", "sort_order", 0, 0)
	if err != nil {
		return services.Catalog{}, fmt.Errorf("load catalog: could not query %s: %w", CatalogCollection, err)
	}

	var categories []services.Category
	index := make(map[string]int)
	for _, r := range records {
		var labels []string
		if err := r.UnmarshalJSONField("pack_sizes", &labels); err != nil {
			return services.Catalog{}, fmt.Errorf("load catalog: product %q pack sizes: %w", r.GetString("product"), err)
		}
		sizes := make([]services.PackSize, len(labels))
		for i, l := range labels {
			sizes[i] = services.PackSize(l)
		}

		name := r.GetString("category")
		i, ok := index[name]
		if !ok {
			i = len(categories)
			index[name] = i
			categories = append(categories, services.Category{Name: name})
		}
		categories[i].Products = append(categories[i].Products, services.Product{
			Name:      r.GetString("product"),
			Unit:      r.GetString("unit"),
			PackSizes: sizes,
		})
	}

	catalog, err := services.NewCatalog(categories)
	if err != nil {
		return services.Catalog{}, fmt.Errorf("load catalog: %w", err)
	}
	return catalog, nil
}
