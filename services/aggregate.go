// Package services holds the report pipeline: catalog, form schema, sales
// aggregation, document building and export.
package services

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// amountPattern is the only accepted shape of a quantity, price or target:
// a plain unsigned decimal with at most 12 integer and 4 fractional digits.
// Signs and exponents are rejected, which bounds every product and sum.
var amountPattern = regexp.MustCompile(`^\d{1,12}(\.\d{1,4})?$`)

// ParseAmount reads a raw form value as a number. Empty input and anything
// outside amountPattern count as zero so partial entry never blocks the total.
func ParseAmount(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if !amountPattern.MatchString(raw) {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// LineTotal is quantity x unit price with both sides coerced.
func LineTotal(quantity, unitPrice string) decimal.Decimal {
	return ParseAmount(quantity).Mul(ParseAmount(unitPrice))
}

// TotalSales sums quantity x price over every pack size in the catalog,
// whether or not the field was ever touched.
func TotalSales(c Catalog, values map[string]string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range c.Entries() {
		qty := values[e.QuantityKey().String()]
		price := values[e.PriceKey().String()]
		total = total.Add(LineTotal(qty, price))
	}
	return total
}

// Achievement is the percentage of the daily target reached.
type Achievement struct {
	Target  decimal.Decimal
	Percent decimal.Decimal
	Defined bool
}

// String renders the percentage with two decimals, or "N/A" without a target.
func (a Achievement) String() string {
	if !a.Defined {
		return "N/A"
	}
	return a.Percent.StringFixed(2)
}

// Label is String with a percent sign when defined: "25.00%" or "N/A".
func (a Achievement) Label() string {
	if !a.Defined {
		return "N/A"
	}
	return a.String() + "%"
}

// ParseTarget reads the optional daily target. It reports false when no
// positive target was given.
func ParseTarget(raw string) (decimal.Decimal, bool) {
	t := ParseAmount(raw)
	if !t.IsPositive() {
		return decimal.Zero, false
	}
	return t, true
}

// PercentageAchieved computes total/target x 100 rounded to 2 places.
// It is undefined when the target is not positive.
func PercentageAchieved(total, target decimal.Decimal) Achievement {
	if !target.IsPositive() {
		return Achievement{}
	}
	return Achievement{
		Target:  target,
		Percent: total.Div(target).Mul(hundred).Round(2),
		Defined: true,
	}
}
