package services

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const displayDateLayout = "02-01-2006"

// DefaultCurrency is the symbol used when the configuration names none.
const DefaultCurrency = "KSh"

// FormatMoney renders an amount with two decimals, comma thousands separators
// and the currency symbol in front, e.g. "KSh 1,234,567.90". A symbol ending
// in a letter is separated from the digits by a space. Every currency value in
// the form, the PDF and the spreadsheet goes through this function.
func FormatMoney(amount decimal.Decimal, symbol string) string {
	negative := amount.IsNegative()
	if negative {
		amount = amount.Neg()
	}

	// StringFixed rounds half away from zero.
	raw := amount.StringFixed(2)
	intPart, decPart, _ := strings.Cut(raw, ".")

	var b strings.Builder
	b.Grow(len(symbol) + len(raw) + len(raw)/3 + 2)
	if negative && raw != "0.00" {
		b.WriteByte('-')
	}
	b.WriteString(symbol)
	if r, _ := utf8.DecodeLastRuneInString(symbol); unicode.IsLetter(r) {
		b.WriteByte(' ')
	}
	writeGrouped(&b, intPart)
	b.WriteByte('.')
	b.WriteString(decPart)
	return b.String()
}

// writeGrouped writes digits with a comma before every group of three,
// counted from the right.
func writeGrouped(b *strings.Builder, digits string) {
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
}

// formatQty renders a quantity: whole numbers without decimals, fractional
// values with 2 places. Input outside the accepted amount shape is shown as typed.
func formatQty(raw string) string {
	raw = strings.TrimSpace(raw)
	if !amountPattern.MatchString(raw) {
		return raw
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return raw
	}
	if d.IsInteger() {
		return d.StringFixed(0)
	}
	return d.StringFixed(2)
}
