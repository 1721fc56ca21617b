package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedCatalog is returned when a catalog definition cannot be used to
// build a report form. It is a startup fault, not something a session recovers from.
var ErrMalformedCatalog = errors.New("malformed catalog")

// PackSize labels one unit of sale for a product, e.g. "250" or "1ltr".
type PackSize string

// IsNumeric reports whether the label is a bare number that needs the product unit.
func (p PackSize) IsNumeric() bool {
	_, err := strconv.ParseFloat(string(p), 64)
	return err == nil
}

// Display renders the pack size for humans: numeric labels get the unit
// appended ("250 mls"), named labels are shown as-is ("1ltr").
func (p PackSize) Display(unit string) string {
	if p.IsNumeric() && unit != "" {
		return string(p) + " " + unit
	}
	return string(p)
}

// Product is a sellable item with its measuring unit and the pack sizes it ships in.
type Product struct {
	Name      string
	Unit      string
	PackSizes []PackSize
}

// Label returns the display name of the product.
func (p Product) Label() string {
	return strings.ReplaceAll(p.Name, "_", " ")
}

// Category groups products, e.g. "Insecticides".
type Category struct {
	Name     string
	Products []Product
}

// ProductRef identifies a product within the catalog.
type ProductRef struct {
	Category string
	Product  string
}

// String encodes the reference as "Category/Product".
func (r ProductRef) String() string {
	return r.Category + "/" + r.Product
}

// ParseProductRef decodes a "Category/Product" reference.
func ParseProductRef(s string) (ProductRef, bool) {
	category, product, ok := strings.Cut(s, "/")
	if !ok || category == "" || product == "" {
		return ProductRef{}, false
	}
	return ProductRef{Category: category, Product: product}, true
}

// CatalogEntry is one (category, product, pack size) triple of the catalog.
type CatalogEntry struct {
	Category string
	Product  string
	Unit     string
	PackSize PackSize
}

// Catalog is the immutable category -> product -> pack size definition that
// drives every generated form field. Build it with NewCatalog.
type Catalog struct {
	categories []Category
}

// NewCatalog validates the definition and returns an immutable catalog.
// The input slices are copied; later changes to them do not affect the catalog.
func NewCatalog(categories []Category) (Catalog, error) {
	c := Catalog{categories: copyCategories(categories)}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// MustCatalog is NewCatalog for static definitions; it panics on a malformed catalog.
func MustCatalog(categories []Category) Catalog {
	c, err := NewCatalog(categories)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks the structural invariants of the catalog: every product has a
// unit and at least one pack size, pack sizes are unique within a product and
// each product belongs to exactly one category.
func (c Catalog) Validate() error {
	if len(c.categories) == 0 {
		return fmt.Errorf("%w: no categories defined", ErrMalformedCatalog)
	}

	seenCategories := make(map[string]bool)
	owner := make(map[string]string)

	for _, cat := range c.categories {
		name := strings.TrimSpace(cat.Name)
		if name == "" {
			return fmt.Errorf("%w: category with empty name", ErrMalformedCatalog)
		}
		if seenCategories[name] {
			return fmt.Errorf("%w: duplicate category %q", ErrMalformedCatalog, name)
		}
		seenCategories[name] = true

		if len(cat.Products) == 0 {
			return fmt.Errorf("%w: category %q has no products", ErrMalformedCatalog, name)
		}

		for _, p := range cat.Products {
			if strings.TrimSpace(p.Name) == "" {
				return fmt.Errorf("%w: product with empty name in %q", ErrMalformedCatalog, name)
			}
			if prev, ok := owner[p.Name]; ok {
				return fmt.Errorf("%w: product %q listed in both %q and %q", ErrMalformedCatalog, p.Name, prev, name)
			}
			owner[p.Name] = name

			if strings.TrimSpace(p.Unit) == "" {
				return fmt.Errorf("%w: product %q in %q has no unit", ErrMalformedCatalog, p.Name, name)
			}
			if len(p.PackSizes) == 0 {
				return fmt.Errorf("%w: product %q in %q has no pack sizes", ErrMalformedCatalog, p.Name, name)
			}

			sizes := make(map[PackSize]bool, len(p.PackSizes))
			for _, s := range p.PackSizes {
				if strings.TrimSpace(string(s)) == "" {
					return fmt.Errorf("%w: product %q has an empty pack size", ErrMalformedCatalog, p.Name)
				}
				if sizes[s] {
					return fmt.Errorf("%w: product %q repeats pack size %q", ErrMalformedCatalog, p.Name, s)
				}
				sizes[s] = true
			}
		}
	}
	return nil
}

// Categories returns a copy of the catalog definition in catalog order.
func (c Catalog) Categories() []Category {
	return copyCategories(c.categories)
}

// Product looks up a product by reference.
func (c Catalog) Product(ref ProductRef) (Product, bool) {
	for _, cat := range c.categories {
		if cat.Name != ref.Category {
			continue
		}
		for _, p := range cat.Products {
			if p.Name == ref.Product {
				return copyProduct(p), true
			}
		}
	}
	return Product{}, false
}

// ProductRefs lists every product in catalog order.
func (c Catalog) ProductRefs() []ProductRef {
	var refs []ProductRef
	for _, cat := range c.categories {
		for _, p := range cat.Products {
			refs = append(refs, ProductRef{Category: cat.Name, Product: p.Name})
		}
	}
	return refs
}

// Entries walks the full category x product x pack size cross-product in catalog order.
func (c Catalog) Entries() []CatalogEntry {
	var entries []CatalogEntry
	for _, cat := range c.categories {
		for _, p := range cat.Products {
			for _, size := range p.PackSizes {
				entries = append(entries, CatalogEntry{
					Category: cat.Name,
					Product:  p.Name,
					Unit:     p.Unit,
					PackSize: size,
				})
			}
		}
	}
	return entries
}

// PackSizeCount returns the total number of pack sizes across all products.
func (c Catalog) PackSizeCount() int {
	n := 0
	for _, cat := range c.categories {
		for _, p := range cat.Products {
			n += len(p.PackSizes)
		}
	}
	return n
}

// SearchProducts returns the products whose name or category contains the
// query, case-insensitively, in catalog order. An empty query matches everything.
func (c Catalog) SearchProducts(query string) []ProductRef {
	q := strings.ToLower(strings.TrimSpace(query))
	q = strings.ReplaceAll(q, " ", "_")

	var matches []ProductRef
	for _, cat := range c.categories {
		catMatch := q != "" && strings.Contains(strings.ToLower(cat.Name), q)
		for _, p := range cat.Products {
			if q == "" || catMatch || strings.Contains(strings.ToLower(p.Name), q) {
				matches = append(matches, ProductRef{Category: cat.Name, Product: p.Name})
			}
		}
	}
	return matches
}

func copyCategories(in []Category) []Category {
	if in == nil {
		return nil
	}
	out := make([]Category, len(in))
	for i, cat := range in {
		out[i] = Category{Name: cat.Name, Products: make([]Product, len(cat.Products))}
		for j, p := range cat.Products {
			out[i].Products[j] = copyProduct(p)
		}
	}
	return out
}

func copyProduct(p Product) Product {
	sizes := make([]PackSize, len(p.PackSizes))
	copy(sizes, p.PackSizes)
	return Product{Name: p.Name, Unit: p.Unit, PackSizes: sizes}
}
