package thali

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func sampleMenu() []Thali {
	return []Thali{
		{Name: "Rajasthani Thali", Items: []string{"dal baati", "churma", "papad"}, Price: 250, IsVeg: true},
		{Name: "Hyderabadi Thali", Items: []string{"biryani", "mirchi ka salan"}, Price: 320, IsVeg: false},
		{Name: "Dal Special", Items: []string{"Dal Makhani", "jeera rice"}, Price: 180, IsVeg: true},
		{Name: "Punjabi Thali", Items: []string{"chole", "kadhi", "moong dal"}, Price: 275.5, IsVeg: true},
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{
			name:  "record from decoded map",
			input: Record{"name": "Rajasthani Thali", "items": []any{"dal", "churma"}, "price": 250, "isVeg": true},
			want:  "RAJASTHANI THALI (Veg) - Items: dal, churma - Rs.250.00",
		},
		{
			name:  "plain map with key order changed",
			input: map[string]any{"isVeg": false, "price": 320.5, "name": "Hyderabadi", "items": []any{"biryani"}},
			want:  "HYDERABADI (Non-Veg) - Items: biryani - Rs.320.50",
		},
		{
			name:  "typed value",
			input: Thali{Name: "Mini", Items: []string{"roti"}, Price: 99.999, IsVeg: true},
			want:  "MINI (Veg) - Items: roti - Rs.100.00",
		},
		{
			name:  "typed pointer with no items",
			input: &Thali{Name: "Empty", Price: 10},
			want:  "EMPTY (Non-Veg) - Items:  - Rs.10.00",
		},
		{
			name:  "isVeg decided by truthiness",
			input: Record{"name": "x", "items": []any{}, "price": 1, "isVeg": "yes"},
			want:  "X (Veg) - Items:  - Rs.1.00",
		},
		{name: "nil", input: nil, want: ""},
		{name: "nil pointer", input: (*Thali)(nil), want: ""},
		{name: "string", input: "Rajasthani Thali", want: ""},
		{name: "number", input: 250, want: ""},
		{name: "slice", input: []any{"name", "items", "price", "isVeg"}, want: ""},
		{name: "slice of thalis", input: sampleMenu(), want: ""},
		{
			name:  "missing field",
			input: Record{"name": "A", "items": []any{}, "price": 1},
			want:  "",
		},
		{
			name:  "extra field",
			input: Record{"name": "A", "items": []any{}, "price": 1, "isVeg": true, "spicy": true},
			want:  "",
		},
		{
			name:  "right count wrong keys",
			input: Record{"name": "A", "items": []any{}, "cost": 1, "isVeg": true},
			want:  "",
		},
		{
			name:  "price is text",
			input: Record{"name": "A", "items": []any{}, "price": "250", "isVeg": true},
			want:  "",
		},
		{
			name:  "name is not text",
			input: Record{"name": 7, "items": []any{}, "price": 1, "isVeg": true},
			want:  "",
		},
		{
			name:  "items is not a list",
			input: Record{"name": "A", "items": "dal", "price": 1, "isVeg": true},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Describe(tt.input); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescribeUppercasesUnicode(t *testing.T) {
	got := Describe(Thali{Name: "straße thali", Items: []string{"dal"}, Price: 1, IsVeg: true})
	want := "STRASSE THALI (Veg) - Items: dal - Rs.1.00"
	if got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}
}

func TestRecordCheck(t *testing.T) {
	r := Record{"name": 1, "price": 2, "zeta": true, "alpha": nil}

	problems := r.Check()
	if len(problems) != 5 {
		t.Fatalf("Check() returned %d problems, want 5: %v", len(problems), problems)
	}

	wants := []struct {
		field string
		err   error
	}{
		{"alpha", ErrUnexpectedField},
		{"zeta", ErrUnexpectedField},
		{"name", ErrFieldType},
		{"items", ErrMissingField},
		{"isVeg", ErrMissingField},
	}
	for i, want := range wants {
		if problems[i].Field != want.field || !errors.Is(problems[i], want.err) {
			t.Errorf("problem %d = %v, want %s on %q", i, problems[i], want.err, want.field)
		}
	}

	ok := Record{"name": "A", "items": []string{"x"}, "price": int64(3), "isVeg": false}
	if problems := ok.Check(); problems != nil {
		t.Errorf("Check() on valid record = %v, want nil", problems)
	}
}

func TestRecordThaliCoercion(t *testing.T) {
	got := Record{"name": "A", "items": []any{"dal", 2, nil}, "price": " 12.5 ", "isVeg": 0}.Thali()
	want := Thali{Name: "A", Items: []string{"dal", "2", ""}, Price: 12.5, IsVeg: false}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Thali() = %+v, want %+v", got, want)
	}

	missing := Record{"name": "B"}.Thali()
	if !math.IsNaN(missing.Price) {
		t.Errorf("missing price = %v, want NaN", missing.Price)
	}

	for _, price := range []any{"abc", "0x10", "inf", []any{1}} {
		if got := (Record{"price": price}).Thali().Price; !math.IsNaN(got) {
			t.Errorf("price %#v coerced to %v, want NaN", price, got)
		}
	}
	if got := (Record{"price": ""}).Thali().Price; got != 0 {
		t.Errorf("empty price coerced to %v, want 0", got)
	}
}

func TestCollect(t *testing.T) {
	if _, ok := Collect("not a list"); ok {
		t.Error("Collect(string) reported ok")
	}
	if _, ok := Collect(nil); ok {
		t.Error("Collect(nil) reported ok")
	}
	if got, ok := Collect([]any{}); !ok || len(got) != 0 {
		t.Errorf("Collect([]any{}) = %v, %v", got, ok)
	}

	got, ok := Collect([]any{
		Thali{Name: "A", Price: 1},
		&Thali{Name: "B", Price: 2},
		Record{"name": "C", "price": 3},
		map[string]any{"name": "D", "price": 4},
		42,
	})
	if !ok || len(got) != 5 {
		t.Fatalf("Collect() = %v, %v", got, ok)
	}
	for i, name := range []string{"A", "B", "C", "D"} {
		if got[i].Name != name || got[i].Price != float64(i+1) {
			t.Errorf("element %d = %+v", i, got[i])
		}
	}
	if !math.IsNaN(got[4].Price) {
		t.Errorf("non-record element price = %v, want NaN", got[4].Price)
	}
}

func TestFunctionsDoNotMutateInput(t *testing.T) {
	menu := sampleMenu()
	before := sampleMenu()

	for i := 0; i < 2; i++ {
		_ = Describe(menu[0])
		_ = Stats(menu)
		_ = Search(menu, "DAL")
		_ = Receipt("ramesh", menu)
	}

	if !reflect.DeepEqual(menu, before) {
		t.Errorf("input menu changed: %+v", menu)
	}
	if Receipt("ramesh", menu) != Receipt("ramesh", menu) {
		t.Error("Receipt is not stable across calls")
	}
	if !reflect.DeepEqual(Stats(menu), Stats(menu)) {
		t.Error("Stats is not stable across calls")
	}
}
