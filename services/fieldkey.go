package services

import (
	"fmt"
	"net/url"
	"strings"
)

// FieldRole distinguishes the two inputs recorded per pack size.
type FieldRole string

const (
	RoleQuantity FieldRole = "qty"
	RolePrice    FieldRole = "price"
)

const salesKeyPrefix = "sales"

// FieldKey identifies one generated sales input.
type FieldKey struct {
	Category string
	Product  string
	PackSize PackSize
	Role     FieldRole
}

// String encodes the key as a form field name. Each component is path-escaped
// so the "/" separator can never appear inside one, which keeps the encoding
// injective for arbitrary catalog names.
func (k FieldKey) String() string {
	return strings.Join([]string{
		salesKeyPrefix,
		url.PathEscape(k.Category),
		url.PathEscape(k.Product),
		url.PathEscape(string(k.PackSize)),
		string(k.Role),
	}, "/")
}

// ParseFieldKey is the inverse of FieldKey.String.
func ParseFieldKey(s string) (FieldKey, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 5 || parts[0] != salesKeyPrefix {
		return FieldKey{}, fmt.Errorf("not a sales field: %q", s)
	}

	role := FieldRole(parts[4])
	if role != RoleQuantity && role != RolePrice {
		return FieldKey{}, fmt.Errorf("unknown field role %q in %q", parts[4], s)
	}

	var decoded [3]string
	for i, p := range parts[1:4] {
		v, err := url.PathUnescape(p)
		if err != nil {
			return FieldKey{}, fmt.Errorf("decode %q: %w", s, err)
		}
		if v == "" {
			return FieldKey{}, fmt.Errorf("empty component in %q", s)
		}
		decoded[i] = v
	}

	return FieldKey{
		Category: decoded[0],
		Product:  decoded[1],
		PackSize: PackSize(decoded[2]),
		Role:     role,
	}, nil
}

// QuantityKey returns the quantity field key for a catalog entry.
func (e CatalogEntry) QuantityKey() FieldKey {
	return FieldKey{Category: e.Category, Product: e.Product, PackSize: e.PackSize, Role: RoleQuantity}
}

// PriceKey returns the unit price field key for a catalog entry.
func (e CatalogEntry) PriceKey() FieldKey {
	return FieldKey{Category: e.Category, Product: e.Product, PackSize: e.PackSize, Role: RolePrice}
}
