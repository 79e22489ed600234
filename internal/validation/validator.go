// =============================================================================
// Thali Combo - Validation Engine
// =============================================================================
//
// The thali operations never reject a malformed record inside a menu; they
// coerce it and move on. This module is where those records get reported
// instead, so the user can fix the menu file.
//
// CHECKS (per entry):
//   - shape:            the entry is a mapping at all
//   - unexpected_field: a key other than name, items, price, isVeg
//   - missing_field:    one of the four fields is absent
//   - field_type:       name is not text, items is not a list, price is not a number
//   - empty_name:       name is blank                 (warning)
//   - negative_price:   price is below zero           (warning)
//
// Errors make the entry undescribable; warnings do not.
//
// =============================================================================

package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ginjaninja78/thali-combo/internal/thali"
)

// Severity levels.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Rule names.
const (
	RuleShape           = "shape"
	RuleUnexpectedField = "unexpected_field"
	RuleMissingField    = "missing_field"
	RuleFieldType       = "field_type"
	RuleEmptyName       = "empty_name"
	RuleNegativePrice   = "negative_price"
)

// =============================================================================
// VALIDATION ERROR TYPES
// =============================================================================

// ValidationError represents a single validation problem.
type ValidationError struct {
	// Severity is SeverityError or SeverityWarning.
	Severity string

	// Field is the record key involved, empty for RuleShape.
	Field string

	// Value is the offending value rendered as text.
	Value string

	// Rule is the check that failed.
	Rule string

	// Message is a human-readable description.
	Message string

	// RowNumber is the 1-based position of the entry in the menu.
	RowNumber int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("[%s] Row %d: %s", strings.ToUpper(e.Severity), e.RowNumber, e.Message)
	}
	return fmt.Sprintf("[%s] Row %d, Field '%s': %s (value: '%s')",
		strings.ToUpper(e.Severity),
		e.RowNumber,
		e.Field,
		e.Message,
		e.Value,
	)
}

// =============================================================================
// VALIDATION RESULT
// =============================================================================

// ValidationResult contains the results of validation.
type ValidationResult struct {
	// IsValid is true if there are no errors (warnings allowed).
	IsValid bool

	// Errors contains all problems, warnings included, in row order.
	Errors []*ValidationError

	// ErrorCount is the number of errors.
	ErrorCount int

	// WarningCount is the number of warnings.
	WarningCount int

	// RecordsValidated is the number of entries checked.
	RecordsValidated int

	// InvalidRows lists the rows with at least one error.
	InvalidRows []int
}

// ValidationOptions contains options for validation.
type ValidationOptions struct {
	// TreatWarningsAsErrors counts warnings as errors.
	TreatWarningsAsErrors bool
}

// =============================================================================
// VALIDATOR
// =============================================================================

// Validate checks every entry of a menu with the default options.
func Validate(entries []any) *ValidationResult {
	return ValidateWithOptions(entries, ValidationOptions{})
}

// ValidateWithOptions checks every entry of a menu.
func ValidateWithOptions(entries []any, options ValidationOptions) *ValidationResult {
	result := &ValidationResult{RecordsValidated: len(entries)}

	for i, entry := range entries {
		problems := ValidateEntry(entry, i+1)

		rowInvalid := false
		for _, p := range problems {
			if p.Severity == SeverityWarning && options.TreatWarningsAsErrors {
				p.Severity = SeverityError
			}
			if p.Severity == SeverityError {
				result.ErrorCount++
				rowInvalid = true
			} else {
				result.WarningCount++
			}
		}
		if rowInvalid {
			result.InvalidRows = append(result.InvalidRows, i+1)
		}

		result.Errors = append(result.Errors, problems...)
	}

	result.IsValid = result.ErrorCount == 0
	return result
}

// ValidateEntry checks a single menu entry at the given row.
func ValidateEntry(entry any, row int) []*ValidationError {
	record, ok := asRecord(entry)
	if !ok {
		return []*ValidationError{{
			Severity:  SeverityError,
			Rule:      RuleShape,
			Message:   fmt.Sprintf("entry is %s, not a thali record", describeKind(entry)),
			RowNumber: row,
		}}
	}

	var problems []*ValidationError
	for _, fe := range record.Check() {
		problems = append(problems, fromFieldError(fe, row))
	}

	// Warnings only make sense once the field itself is usable.
	if name, ok := record[thali.FieldName].(string); ok && strings.TrimSpace(name) == "" {
		problems = append(problems, &ValidationError{
			Severity:  SeverityWarning,
			Field:     thali.FieldName,
			Value:     name,
			Rule:      RuleEmptyName,
			Message:   "name is blank",
			RowNumber: row,
		})
	}
	if t, ok := record.Strict(); ok && t.Price < 0 {
		problems = append(problems, &ValidationError{
			Severity:  SeverityWarning,
			Field:     thali.FieldPrice,
			Value:     thali.FormatNumber(t.Price),
			Rule:      RuleNegativePrice,
			Message:   "price is negative",
			RowNumber: row,
		})
	}

	return problems
}

func asRecord(entry any) (thali.Record, bool) {
	switch r := entry.(type) {
	case thali.Record:
		return r, r != nil
	case map[string]any:
		return thali.Record(r), r != nil
	case thali.Thali:
		return recordOf(r), true
	case *thali.Thali:
		if r == nil {
			return nil, false
		}
		return recordOf(*r), true
	}
	return nil, false
}

func recordOf(t thali.Thali) thali.Record {
	return thali.Record{
		thali.FieldName:  t.Name,
		thali.FieldItems: t.Items,
		thali.FieldPrice: t.Price,
		thali.FieldIsVeg: t.IsVeg,
	}
}

func fromFieldError(fe *thali.FieldError, row int) *ValidationError {
	ve := &ValidationError{
		Severity:  SeverityError,
		Field:     fe.Field,
		RowNumber: row,
	}
	if fe.Value != nil {
		ve.Value = fmt.Sprint(fe.Value)
	}

	switch {
	case errors.Is(fe, thali.ErrUnexpectedField):
		ve.Rule = RuleUnexpectedField
		ve.Message = "field is not part of a thali"
	case errors.Is(fe, thali.ErrMissingField):
		ve.Rule = RuleMissingField
		ve.Message = "required field is missing"
	default:
		ve.Rule = RuleFieldType
		ve.Message = fmt.Sprintf("%s must be %s, got %s", fe.Field, expectedKind(fe.Field), describeKind(fe.Value))
	}

	return ve
}

func expectedKind(field string) string {
	switch field {
	case thali.FieldName:
		return "text"
	case thali.FieldItems:
		return "a list"
	case thali.FieldPrice:
		return "a number"
	}
	return "a value"
}

func describeKind(v any) string {
	switch v.(type) {
	case nil:
		return "empty"
	case string:
		return "text"
	case bool:
		return "a boolean"
	case []any, []string:
		return "a list"
	case map[string]any, thali.Record:
		return "a mapping"
	case float64, float32, int, int64, int32, uint64:
		return "a number"
	}
	return fmt.Sprintf("%T", v)
}

// =============================================================================
// ERROR FORMATTING
// =============================================================================

// FormatErrors formats validation errors for display.
func FormatErrors(errors []*ValidationError) string {
	if len(errors) == 0 {
		return "No validation errors."
	}

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("Validation completed with %d problem(s):\n\n", len(errors)))

	for i, err := range errors {
		builder.WriteString(fmt.Sprintf("%d. %s\n", i+1, err.Error()))
	}

	return builder.String()
}
