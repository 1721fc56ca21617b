package services

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// Names of the top-level report fields.
const (
	FieldDate                = "date"
	FieldAuthor              = "author"
	FieldDailyTarget         = "daily_target"
	FieldMarketingActivities = "marketing_activities"
	FieldCompetitiveAnalysis = "competitive_analysis"
	FieldIssues              = "issues"
	FieldUpcomingActions     = "upcoming_actions"
)

// DateLayout is the wire format of the report date (HTML date input).
const DateLayout = "2006-01-02"

// ErrUnknownField is returned for field names the schema does not define.
var ErrUnknownField = errors.New("unknown field")

// FieldType is the value type a rule enforces.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeNumeric FieldType = "numeric"
	FieldTypeDate    FieldType = "date"
)

// FieldRule is the declared validation for a single form field.
type FieldRule struct {
	Label    string
	Type     FieldType
	Required bool
	// Message overrides the default "<Label> is required" text.
	Message string
}

// Validate checks a raw form value against the rule. Numeric fields that are
// not required accept an empty value.
func (r FieldRule) Validate(value string) error {
	value = strings.TrimSpace(value)

	var rules []validation.Rule
	if r.Required {
		msg := r.Message
		if msg == "" {
			msg = r.Label + " is required"
		}
		rules = append(rules, validation.Required.Error(msg))
	}

	switch r.Type {
	case FieldTypeNumeric:
		rules = append(rules,
			validation.By(nonNegative),
			validation.Match(amountPattern).Error(amountShapeMessage),
		)
	case FieldTypeDate:
		rules = append(rules, validation.Date(DateLayout).Error("Must be a valid date (YYYY-MM-DD)"))
	}

	return validation.Validate(value, rules...)
}

const amountShapeMessage = "Must be a plain number with at most 12 digits and 4 decimals"

var (
	errNotANumber = validation.NewError("validation_not_a_number", "Must be a number")
	errNegative   = validation.NewError("validation_negative", "Must not be negative")
)

func nonNegative(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return errNotANumber
	}
	if d.IsNegative() {
		return errNegative
	}
	return nil
}

// Schema is the complete set of form fields derived from a catalog: the
// narrative fields plus a quantity and a price field for every pack size of
// every product, whether or not the UI is currently displaying it.
type Schema struct {
	catalog   Catalog
	fields    []string
	rules     map[string]FieldRule
	salesKeys []FieldKey
}

var narrativeRules = []struct {
	name string
	rule FieldRule
}{
	{FieldDate, FieldRule{Label: "Date", Type: FieldTypeDate, Required: true, Message: "Required"}},
	{FieldAuthor, FieldRule{Label: "Staff Name", Type: FieldTypeString, Required: true, Message: "Required"}},
	{FieldDailyTarget, FieldRule{Label: "Daily Target", Type: FieldTypeNumeric}},
	{FieldMarketingActivities, FieldRule{Label: "Marketing Activities", Type: FieldTypeString, Required: true, Message: "Marketing Activities are required"}},
	{FieldCompetitiveAnalysis, FieldRule{Label: "Competitive Analysis", Type: FieldTypeString, Required: true, Message: "Competitive Analysis is required"}},
	{FieldIssues, FieldRule{Label: "Issues and Challenges", Type: FieldTypeString, Required: true, Message: "Issues and Challenges are required"}},
	{FieldUpcomingActions, FieldRule{Label: "Upcoming Actions", Type: FieldTypeString, Required: true, Message: "Upcoming Actions are required"}},
}

// GenerateSchema derives the field set and validation rules from the catalog.
// A malformed catalog yields an error and no schema.
func GenerateSchema(c Catalog) (*Schema, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("generate schema: %w", err)
	}

	entries := c.Entries()
	s := &Schema{
		catalog:   c,
		fields:    make([]string, 0, len(narrativeRules)+2*len(entries)),
		rules:     make(map[string]FieldRule, len(narrativeRules)+2*len(entries)),
		salesKeys: make([]FieldKey, 0, 2*len(entries)),
	}

	for _, nr := range narrativeRules {
		s.fields = append(s.fields, nr.name)
		s.rules[nr.name] = nr.rule
	}

	for _, e := range entries {
		size := e.PackSize.Display(e.Unit)
		product := Product{Name: e.Product}.Label()
		for _, k := range []FieldKey{e.QuantityKey(), e.PriceKey()} {
			name := k.String()
			if _, dup := s.rules[name]; dup {
				return nil, fmt.Errorf("generate schema: %w: field %q generated twice", ErrMalformedCatalog, name)
			}

			label := fmt.Sprintf("%s (%s) quantity", product, size)
			if k.Role == RolePrice {
				label = fmt.Sprintf("%s (%s) unit price", product, size)
			}

			s.fields = append(s.fields, name)
			s.salesKeys = append(s.salesKeys, k)
			s.rules[name] = FieldRule{Label: label, Type: FieldTypeNumeric}
		}
	}

	return s, nil
}

// Catalog returns the catalog the schema was generated from.
func (s *Schema) Catalog() Catalog {
	return s.catalog
}

// Fields lists every field name in form order.
func (s *Schema) Fields() []string {
	out := make([]string, len(s.fields))
	copy(out, s.fields)
	return out
}

// SalesKeys lists every generated sales field key in catalog order.
func (s *Schema) SalesKeys() []FieldKey {
	out := make([]FieldKey, len(s.salesKeys))
	copy(out, s.salesKeys)
	return out
}

// Rule returns the validation rule for a field.
func (s *Schema) Rule(name string) (FieldRule, bool) {
	r, ok := s.rules[name]
	return r, ok
}

// Has reports whether the schema defines the field.
func (s *Schema) Has(name string) bool {
	_, ok := s.rules[name]
	return ok
}

// InitialValues returns a fresh map with every field set to empty.
func (s *Schema) InitialValues() map[string]string {
	values := make(map[string]string, len(s.fields))
	for _, f := range s.fields {
		values[f] = ""
	}
	return values
}

// ValidateField checks a single value, as done when an input changes.
func (s *Schema) ValidateField(name, value string) error {
	rule, ok := s.rules[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return rule.Validate(value)
}

// Validate checks every field of the form and returns field -> message for the
// failures. An empty map means the form may be submitted.
func (s *Schema) Validate(f *ReportForm) map[string]string {
	errs := make(map[string]string)
	for _, name := range s.fields {
		if err := s.rules[name].Validate(f.Get(name)); err != nil {
			errs[name] = err.Error()
		}
	}
	return errs
}
