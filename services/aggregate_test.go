package services

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"10", "10"},
		{" 2.5 ", "2.5"},
		{"", "0"},
		{"abc", "0"},
		{"1e3", "0"},
		{"1e2000000000", "0"},
		{"-5", "0"},
		{"+5", "0"},
		{"0x10", "0"},
		{"1,000", "0"},
		{"999999999999.9999", "999999999999.9999"},
		{"1000000000000", "0"},
		{"1.23456", "0"},
	}
	for _, tt := range tests {
		if got := ParseAmount(tt.raw); !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("ParseAmount(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

func TestTotalSales_HugeExponentsCountAsZero(t *testing.T) {
	c := smallCatalog(t)

	values := map[string]string{
		qtyKey("Seeds", "Tomato_Seeds", "10"):     "1e2000000000",
		priceKey("Seeds", "Tomato_Seeds", "10"):   "1e2000000000",
		qtyKey("Seeds", "Tomato_Seeds", "50"):     "1e200000",
		priceKey("Seeds", "Tomato_Seeds", "50"):   "2",
		qtyKey("Fertilizers", "NPK_Mix", "1kg"):   "3",
		priceKey("Fertilizers", "NPK_Mix", "1kg"): "100",
	}

	got := TotalSales(c, values)
	if !got.Equal(decimal.NewFromInt(300)) {
		t.Errorf("TotalSales = %s, want 300", got)
	}
}

func TestLineTotal(t *testing.T) {
	tests := []struct {
		qty, price string
		want       string
	}{
		{"10", "50", "500"},
		{"5", "", "0"},
		{"", "50", "0"},
		{"abc", "50", "0"},
		{"0.1", "0.2", "0.02"},
		{"3", "33.33", "99.99"},
	}
	for _, tt := range tests {
		if got := LineTotal(tt.qty, tt.price); !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("LineTotal(%q, %q) = %s, want %s", tt.qty, tt.price, got, tt.want)
		}
	}
}

func TestTotalSales(t *testing.T) {
	c := smallCatalog(t)

	values := map[string]string{
		qtyKey("Seeds", "Tomato_Seeds", "10"):         "10",
		priceKey("Seeds", "Tomato_Seeds", "10"):       "50",
		qtyKey("Fertilizers", "NPK_Mix", "5kg"):       "2",
		priceKey("Fertilizers", "NPK_Mix", "5kg"):     "1250.50",
		qtyKey("Fertilizers", "Bio_Booster", "250"):   "abc",
		priceKey("Fertilizers", "Bio_Booster", "250"): "99",
		"unrelated":                                   "1000",
	}
	if got := TotalSales(c, values); !got.Equal(decimal.RequireFromString("3001")) {
		t.Errorf("TotalSales = %s, want 3001", got)
	}

	if got := TotalSales(c, nil); !got.IsZero() {
		t.Errorf("TotalSales(nil) = %s, want 0", got)
	}
}

func TestTotalSales_Pure(t *testing.T) {
	c := smallCatalog(t)
	values := map[string]string{
		qtyKey("Seeds", "Tomato_Seeds", "50"):   "3",
		priceKey("Seeds", "Tomato_Seeds", "50"): "7.5",
	}
	first := TotalSales(c, values)
	second := TotalSales(c, values)
	if !first.Equal(second) {
		t.Errorf("TotalSales not deterministic: %s vs %s", first, second)
	}
}

func TestPercentageAchieved(t *testing.T) {
	tests := []struct {
		name   string
		total  string
		target string
		want   string
	}{
		{"quarter", "25000", "100000", "25.00"},
		{"exceeded", "150", "100", "150.00"},
		{"rounded", "1", "3", "33.33"},
		{"zero total", "0", "500", "0.00"},
		{"zero target", "500", "0", "N/A"},
		{"negative target", "500", "-10", "N/A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := PercentageAchieved(decimal.RequireFromString(tt.total), decimal.RequireFromString(tt.target))
			if got := a.String(); got != tt.want {
				t.Errorf("PercentageAchieved(%s, %s) = %s, want %s", tt.total, tt.target, got, tt.want)
			}
		})
	}
}

func TestAchievement_Label(t *testing.T) {
	if got := (Achievement{}).Label(); got != "N/A" {
		t.Errorf("undefined label = %q", got)
	}
	a := PercentageAchieved(decimal.NewFromInt(500), decimal.NewFromInt(2000))
	if got := a.Label(); got != "25.00%" {
		t.Errorf("label = %q, want 25.00%%", got)
	}
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		raw    string
		wantOK bool
	}{
		{"100000", true},
		{"0.5", true},
		{"", false},
		{"0", false},
		{"-5", false},
		{"lots", false},
	}
	for _, tt := range tests {
		if _, ok := ParseTarget(tt.raw); ok != tt.wantOK {
			t.Errorf("ParseTarget(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
		}
	}
}
