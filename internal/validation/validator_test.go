package validation

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ginjaninja78/thali-combo/internal/thali"
)

func rules(problems []*ValidationError) []string {
	var out []string
	for _, p := range problems {
		out = append(out, p.Severity+":"+p.Rule+":"+p.Field)
	}
	return out
}

func TestValidateEntry(t *testing.T) {
	tests := []struct {
		name  string
		entry any
		want  []string
	}{
		{
			name:  "valid record",
			entry: thali.Record{"name": "A", "items": []any{"dal"}, "price": 100, "isVeg": true},
			want:  nil,
		},
		{
			name:  "valid typed thali",
			entry: thali.Thali{Name: "A", Items: []string{"dal"}, Price: 100},
			want:  nil,
		},
		{
			name:  "not a mapping",
			entry: "Rajasthani Thali",
			want:  []string{"error:shape:"},
		},
		{
			name:  "list",
			entry: []any{1, 2},
			want:  []string{"error:shape:"},
		},
		{
			name:  "extra and missing",
			entry: thali.Record{"name": "A", "items": []any{}, "cost": 5, "isVeg": true},
			want:  []string{"error:unexpected_field:cost", "error:missing_field:price"},
		},
		{
			name:  "wrong types",
			entry: thali.Record{"name": 3, "items": "dal", "price": "100", "isVeg": "no"},
			want:  []string{"error:field_type:name", "error:field_type:items", "error:field_type:price"},
		},
		{
			name:  "warnings",
			entry: thali.Record{"name": "  ", "items": []any{}, "price": -5, "isVeg": false},
			want:  []string{"warning:empty_name:name", "warning:negative_price:price"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rules(ValidateEntry(tt.entry, 1))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ValidateEntry() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	entries := []any{
		thali.Record{"name": "Good", "items": []any{}, "price": 100, "isVeg": true},
		thali.Record{"name": "Bad", "items": []any{}, "isVeg": true},
		thali.Record{"name": "", "items": []any{}, "price": 100, "isVeg": true},
		42,
	}

	result := Validate(entries)
	if result.IsValid {
		t.Error("IsValid = true, want false")
	}
	if result.RecordsValidated != 4 || result.ErrorCount != 2 || result.WarningCount != 1 {
		t.Errorf("counts = %d/%d/%d, want 4/2/1", result.RecordsValidated, result.ErrorCount, result.WarningCount)
	}
	if !reflect.DeepEqual(result.InvalidRows, []int{2, 4}) {
		t.Errorf("InvalidRows = %v, want [2 4]", result.InvalidRows)
	}

	strict := ValidateWithOptions(entries, ValidationOptions{TreatWarningsAsErrors: true})
	if strict.ErrorCount != 3 || !reflect.DeepEqual(strict.InvalidRows, []int{2, 3, 4}) {
		t.Errorf("strict = %d errors, rows %v", strict.ErrorCount, strict.InvalidRows)
	}

	if ok := Validate(entries[:1]); !ok.IsValid || len(ok.Errors) != 0 {
		t.Errorf("valid menu reported %v", ok.Errors)
	}
}

func TestFormatErrors(t *testing.T) {
	if got := FormatErrors(nil); got != "No validation errors." {
		t.Errorf("FormatErrors(nil) = %q", got)
	}

	out := FormatErrors(ValidateEntry(thali.Record{"name": "A", "items": []any{}, "price": "x", "isVeg": true}, 7))
	want := "1. [ERROR] Row 7, Field 'price': price must be a number, got text (value: 'x')"
	if !strings.Contains(out, want) {
		t.Errorf("FormatErrors() = %q, want it to contain %q", out, want)
	}

	shape := FormatErrors(ValidateEntry(nil, 2))
	if !strings.Contains(shape, "[ERROR] Row 2: entry is empty, not a thali record") {
		t.Errorf("FormatErrors() = %q", shape)
	}
}
