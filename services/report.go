package services

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SalesEntry holds the raw quantity and unit price entered for one pack size.
type SalesEntry struct {
	Category  string
	Product   string
	Unit      string
	PackSize  PackSize
	Quantity  string
	UnitPrice string
}

// HasQuantity reports whether a quantity was entered. Only such entries are
// listed in the report table.
func (e SalesEntry) HasQuantity() bool {
	return strings.TrimSpace(e.Quantity) != ""
}

// Total is quantity x unit price, with missing or invalid values as zero.
func (e SalesEntry) Total() decimal.Decimal {
	return LineTotal(e.Quantity, e.UnitPrice)
}

// ReportForm is the mutable state of one report session: the narrative fields
// plus every generated sales field.
type ReportForm struct {
	schema *Schema
	values map[string]string
}

// NewReportForm returns a form with every schema field empty.
func NewReportForm(s *Schema) *ReportForm {
	return &ReportForm{schema: s, values: s.InitialValues()}
}

// Set updates a single field.
func (f *ReportForm) Set(name, value string) error {
	if !f.schema.Has(name) {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	f.values[name] = value
	return nil
}

// Get returns the current raw value of a field.
func (f *ReportForm) Get(name string) string {
	return f.values[name]
}

// Bind copies posted values into the form. Names the schema does not know are ignored.
func (f *ReportForm) Bind(posted url.Values) {
	for name := range posted {
		if f.schema.Has(name) {
			f.values[name] = posted.Get(name)
		}
	}
}

// Values returns a copy of all field values.
func (f *ReportForm) Values() map[string]string {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// Total computes the current total sales of the form.
func (f *ReportForm) Total() decimal.Decimal {
	return TotalSales(f.schema.Catalog(), f.values)
}

// Achievement computes the percentage of the daily target reached so far.
func (f *ReportForm) Achievement() Achievement {
	target, ok := ParseTarget(f.values[FieldDailyTarget])
	if !ok {
		return Achievement{}
	}
	return PercentageAchieved(f.Total(), target)
}

// Freeze copies the form into an immutable snapshot with its derived totals.
func (f *ReportForm) Freeze() *ReportSnapshot {
	c := f.schema.Catalog()
	entries := make([]SalesEntry, 0, c.PackSizeCount())
	for _, e := range c.Entries() {
		entries = append(entries, SalesEntry{
			Category:  e.Category,
			Product:   e.Product,
			Unit:      e.Unit,
			PackSize:  e.PackSize,
			Quantity:  strings.TrimSpace(f.values[e.QuantityKey().String()]),
			UnitPrice: strings.TrimSpace(f.values[e.PriceKey().String()]),
		})
	}

	return &ReportSnapshot{
		date:                strings.TrimSpace(f.values[FieldDate]),
		author:              strings.TrimSpace(f.values[FieldAuthor]),
		dailyTarget:         strings.TrimSpace(f.values[FieldDailyTarget]),
		marketingActivities: f.values[FieldMarketingActivities],
		competitiveAnalysis: f.values[FieldCompetitiveAnalysis],
		issues:              f.values[FieldIssues],
		upcomingActions:     f.values[FieldUpcomingActions],
		entries:             entries,
		totalSales:          f.Total(),
		achievement:         f.Achievement(),
	}
}

// ReportSnapshot is a submitted report: a frozen copy of the form plus the
// derived total and target achievement. It is never mutated; a new submission
// replaces it.
type ReportSnapshot struct {
	date                string
	author              string
	dailyTarget         string
	marketingActivities string
	competitiveAnalysis string
	issues              string
	upcomingActions     string
	entries             []SalesEntry
	totalSales          decimal.Decimal
	achievement         Achievement
}

func (s *ReportSnapshot) Date() string                { return s.date }
func (s *ReportSnapshot) Author() string              { return s.author }
func (s *ReportSnapshot) DailyTarget() string         { return s.dailyTarget }
func (s *ReportSnapshot) MarketingActivities() string { return s.marketingActivities }
func (s *ReportSnapshot) CompetitiveAnalysis() string { return s.competitiveAnalysis }
func (s *ReportSnapshot) Issues() string              { return s.issues }
func (s *ReportSnapshot) UpcomingActions() string     { return s.upcomingActions }
func (s *ReportSnapshot) TotalSales() decimal.Decimal { return s.totalSales }
func (s *ReportSnapshot) Achievement() Achievement    { return s.achievement }

// Entries returns a copy of every sales entry in catalog order.
func (s *ReportSnapshot) Entries() []SalesEntry {
	out := make([]SalesEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// ReportDate parses the report date. ok is false when it is not a valid date.
func (s *ReportSnapshot) ReportDate() (time.Time, bool) {
	t, err := time.Parse(DateLayout, s.date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DisplayDate renders the report date as DD-MM-YYYY, or the raw value if it
// cannot be parsed.
func (s *ReportSnapshot) DisplayDate() string {
	if t, ok := s.ReportDate(); ok {
		return t.Format(displayDateLayout)
	}
	return s.date
}
