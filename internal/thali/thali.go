// =============================================================================
// Thali Combo - Core Types
// =============================================================================
//
// A thali is a combo platter: a name, the dishes that come with it, a price
// and a veg/non-veg flag. This package holds the record types and the four
// menu operations built on them:
//
//   Describe - one display line per thali
//   Stats    - aggregate statistics over a menu
//   Search   - case-insensitive name search plus item search
//   Receipt  - a multi-line order receipt
//
// Every operation is pure. Invalid input never produces an error; each
// operation has its own "nothing to show" value instead (empty string, nil
// summary, empty slice).
//
// RECORD SHAPES:
//   Thali  - the typed record used by callers that build menus in code.
//   Record - a decoded map as produced by the menu loaders. It keeps the
//            exact key set of the source so that shape checks can reject
//            extra or missing fields.
//
// =============================================================================

package thali

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Field names of a thali record, in display order.
const (
	FieldName  = "name"
	FieldItems = "items"
	FieldPrice = "price"
	FieldIsVeg = "isVeg"
)

// Fields lists every field a well-formed record carries. A record is
// well-formed only when its key set equals this set exactly.
var Fields = []string{FieldName, FieldItems, FieldPrice, FieldIsVeg}

// Thali is a single combo platter on the menu.
type Thali struct {
	Name  string   `json:"name" yaml:"name" toml:"name"`
	Items []string `json:"items" yaml:"items" toml:"items"`
	Price float64  `json:"price" yaml:"price" toml:"price"`
	IsVeg bool     `json:"isVeg" yaml:"isVeg" toml:"isVeg"`
}

// Record is a loosely typed thali as decoded from a menu file.
type Record map[string]any

// =============================================================================
// SHAPE CHECKS
// =============================================================================

var (
	// ErrMissingField marks a required field absent from a record.
	ErrMissingField = errors.New("missing field")

	// ErrUnexpectedField marks a key that is not one of Fields.
	ErrUnexpectedField = errors.New("unexpected field")

	// ErrFieldType marks a field whose value cannot be used for display.
	ErrFieldType = errors.New("wrong field type")
)

// FieldError describes one problem with one field of a Record.
type FieldError struct {
	Field string
	Value any
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %q", e.Err, e.Field)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Check reports every shape problem of r: unexpected keys (sorted), then
// missing fields, then wrongly typed values. A nil result means r can be
// described.
func (r Record) Check() []*FieldError {
	var problems []*FieldError

	var extra []string
	for key := range r {
		if !isField(key) {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		problems = append(problems, &FieldError{Field: key, Value: r[key], Err: ErrUnexpectedField})
	}

	for _, field := range Fields {
		value, ok := r[field]
		if !ok {
			problems = append(problems, &FieldError{Field: field, Err: ErrMissingField})
			continue
		}
		if !fieldTypeOK(field, value) {
			problems = append(problems, &FieldError{Field: field, Value: value, Err: ErrFieldType})
		}
	}

	return problems
}

// Strict converts r into a Thali only when r passes Check.
func (r Record) Strict() (Thali, bool) {
	if r == nil || len(r.Check()) > 0 {
		return Thali{}, false
	}
	return r.Thali(), true
}

// Thali converts r without rejecting anything. Missing or non-numeric prices
// become NaN, isVeg is decided by truthiness and text fields are stringified.
func (r Record) Thali() Thali {
	t := Thali{Price: math.NaN()}

	if name, ok := r[FieldName]; ok {
		t.Name = toText(name)
	}
	t.Items, _ = toTextList(r[FieldItems])
	if price, ok := r[FieldPrice]; ok {
		t.Price = toNumber(price)
	}
	t.IsVeg = truthy(r[FieldIsVeg])

	return t
}

func isField(key string) bool {
	for _, field := range Fields {
		if key == field {
			return true
		}
	}
	return false
}

func fieldTypeOK(field string, value any) bool {
	switch field {
	case FieldName:
		_, ok := value.(string)
		return ok
	case FieldItems:
		_, ok := toTextList(value)
		return ok
	case FieldPrice:
		_, ok := numeric(value)
		return ok
	}
	return true
}

// =============================================================================
// COLLECTIONS
// =============================================================================

// Collect turns a decoded sequence into typed thalis. It accepts []Thali,
// []*Thali, []Record, []map[string]any and []any; anything else reports
// false. Elements that are not records become a Thali with a NaN price.
func Collect(v any) ([]Thali, bool) {
	switch list := v.(type) {
	case []Thali:
		return list, true
	case []*Thali:
		out := make([]Thali, len(list))
		for i, t := range list {
			out[i] = coerce(t)
		}
		return out, true
	case []Record:
		out := make([]Thali, len(list))
		for i, r := range list {
			out[i] = r.Thali()
		}
		return out, true
	case []map[string]any:
		out := make([]Thali, len(list))
		for i, m := range list {
			out[i] = Record(m).Thali()
		}
		return out, true
	case []any:
		out := make([]Thali, len(list))
		for i, item := range list {
			out[i] = coerce(item)
		}
		return out, true
	}
	return nil, false
}

// elements returns the members of a sequence Collect accepts, as they are.
func elements(v any) ([]any, bool) {
	switch list := v.(type) {
	case []any:
		return list, true
	case []Thali:
		return anySlice(list), true
	case []*Thali:
		return anySlice(list), true
	case []Record:
		return anySlice(list), true
	case []map[string]any:
		return anySlice(list), true
	}
	return nil, false
}

func anySlice[T any](list []T) []any {
	out := make([]any, len(list))
	for i, v := range list {
		out[i] = v
	}
	return out
}

func coerce(v any) Thali {
	switch t := v.(type) {
	case Thali:
		return t
	case *Thali:
		if t != nil {
			return *t
		}
	case Record:
		return t.Thali()
	case map[string]any:
		return Record(t).Thali()
	}
	return Thali{Price: math.NaN()}
}

// =============================================================================
// VALUE COERCION
// =============================================================================

func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// toNumber follows the usual loose number conversion: nil and "" are 0,
// booleans are 0/1, numeric strings parse, everything else is NaN.
func toNumber(v any) float64 {
	if n, ok := numeric(v); ok {
		return n
	}
	switch x := v.(type) {
	case nil:
		return 0
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		return parseNumber(x)
	}
	return math.NaN()
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	// ParseFloat also accepts hex floats, underscores, "inf" and "nan".
	if strings.ContainsAny(s, "xXpP_iInN") {
		return math.NaN()
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return n
}

func truthy(v any) bool {
	if n, ok := numeric(v); ok {
		return n != 0 && !math.IsNaN(n)
	}
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	}
	return true
}

func toText(v any) string {
	if n, ok := numeric(v); ok {
		return FormatNumber(n)
	}
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case []any, []string:
		items, _ := toTextList(x)
		return strings.Join(items, ",")
	}
	return fmt.Sprint(v)
}

func toTextList(v any) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		return list, true
	case []any:
		out := make([]string, len(list))
		for i, item := range list {
			out[i] = toText(item)
		}
		return out, true
	}
	return nil, false
}

// Casers carry state, so a fresh one is built per call.
func upper(s string) string { return cases.Upper(language.Und).String(s) }

func lower(s string) string { return cases.Lower(language.Und).String(s) }
