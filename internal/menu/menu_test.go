package menu

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/thali-combo/internal/config"
	"github.com/ginjaninja78/thali-combo/internal/thali"
)

func writeMenu(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

var wantRajasthani = thali.Record{
	"name":  "Rajasthani Thali",
	"items": []any{"dal baati", "churma"},
	"price": 250.0,
	"isVeg": true,
}

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "yaml list",
			file: "menu.yaml",
			content: `
- name: Rajasthani Thali
  items: [dal baati, churma]
  price: 250.0
  isVeg: true
`,
		},
		{
			name: "yml wrapped",
			file: "menu.yml",
			content: `
thalis:
  - name: Rajasthani Thali
    items: [dal baati, churma]
    price: 250.0
    isVeg: true
`,
		},
		{
			name:    "json list",
			file:    "menu.json",
			content: `[{"name":"Rajasthani Thali","items":["dal baati","churma"],"price":250,"isVeg":true}]`,
		},
		{
			name: "toml tables",
			file: "menu.toml",
			content: `
[[thalis]]
name = "Rajasthani Thali"
items = ["dal baati", "churma"]
price = 250.0
isVeg = true
`,
		},
		{
			name:    "csv",
			file:    "menu.csv",
			content: "name,items,price,isVeg\nRajasthani Thali,dal baati; churma,250,true\n",
		},
		{
			name:    "csv with bom and blank line",
			file:    "MENU.CSV",
			content: "\ufeffname, items ,price,isVeg\n\n,,,\nRajasthani Thali,dal baati;churma,250,TRUE\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Load(writeMenu(t, tt.file, tt.content), Options{})
			if err != nil {
				t.Fatalf("Load returned error: %v", err)
			}
			if m.Len() != 1 {
				t.Fatalf("Len() = %d, want 1", m.Len())
			}
			if !reflect.DeepEqual(m.Entries[0], wantRajasthani) {
				t.Errorf("entry = %#v, want %#v", m.Entries[0], wantRajasthani)
			}
			if got := thali.Describe(m.Entries[0]); got != "RAJASTHANI THALI (Veg) - Items: dal baati, churma - Rs.250.00" {
				t.Errorf("Describe() = %q", got)
			}
		})
	}
}

func TestLoadKeepsShapeProblems(t *testing.T) {
	path := writeMenu(t, "menu.yaml", `
- name: Extra
  items: []
  price: 100
  isVeg: true
  spicy: true
- name: Missing
  items: []
  isVeg: false
- just a string
`)

	m, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if m.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", m.Len())
	}
	if _, ok := m.Entries[0].(thali.Record)["spicy"]; !ok {
		t.Error("extra key was dropped")
	}
	if m.Entries[2] != "just a string" {
		t.Errorf("non-mapping entry = %#v", m.Entries[2])
	}
	for i, e := range m.Entries {
		if got := thali.Describe(e); got != "" {
			t.Errorf("Describe(entry %d) = %q, want empty", i, got)
		}
	}
}

func TestLoadCSVOptions(t *testing.T) {
	path := writeMenu(t, "menu.csv", "name|items|price|isVeg|notes\nVeg Thali|roti+sabzi|120|yes|\n")

	m, err := Load(path, Options{Delimiter: "|", ItemSeparator: "+"})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	want := thali.Record{
		"name":  "Veg Thali",
		"items": []any{"roti", "sabzi"},
		"price": 120.0,
		"isVeg": "yes",
		"notes": "",
	}
	if !reflect.DeepEqual(m.Entries[0], want) {
		t.Errorf("entry = %#v, want %#v", m.Entries[0], want)
	}
}

func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.xlsx")

	f := excelize.NewFile()
	if _, err := f.NewSheet("Lunch"); err != nil {
		t.Fatalf("NewSheet: %v", err)
	}
	rows := [][]any{
		{"name", "items", "price", "isVeg"},
		{"Rajasthani Thali", "dal baati;churma", 250, "true"},
		{"Chicken Thali", "", 300, "false"},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Lunch", cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	f.Close()

	m, err := Load(path, Options{Sheet: "Lunch"})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if m.Format != "xlsx" || m.Len() != 2 {
		t.Fatalf("format/len = %s/%d", m.Format, m.Len())
	}
	if !reflect.DeepEqual(m.Entries[0], wantRajasthani) {
		t.Errorf("entry = %#v, want %#v", m.Entries[0], wantRajasthani)
	}

	got := m.Thalis()[1]
	if got.Name != "Chicken Thali" || got.IsVeg || got.Price != 300 || len(got.Items) != 0 {
		t.Errorf("second thali = %+v", got)
	}

	if _, err := Load(path, Options{Sheet: "Dinner"}); err == nil {
		t.Error("Load with a missing sheet should fail")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    error
	}{
		{"unsupported", "menu.txt", "whatever", ErrUnsupportedFormat},
		{"yaml scalar", "menu.yaml", "hello", ErrNotSequence},
		{"json object without thalis", "menu.json", `{"menu": []}`, ErrNotSequence},
		{"toml without thalis", "menu.toml", "title = \"lunch\"\n", ErrNotSequence},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeMenu(t, tt.file, tt.content), Options{})
			if !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), Options{}); err == nil {
		t.Error("Load of a missing file should fail")
	}
	if _, err := Load(writeMenu(t, "bad.json", "[{"), Options{}); err == nil {
		t.Error("Load of malformed JSON should fail")
	}
	if _, err := Load(writeMenu(t, "empty.csv", ""), Options{}); err == nil {
		t.Error("Load of an empty CSV should fail")
	}
}

func TestPick(t *testing.T) {
	m := &Menu{Entries: []any{
		thali.Record{"name": "Thali A", "items": []any{}, "price": 100, "isVeg": true},
		thali.Record{"name": "Thali B", "items": []any{}, "price": 150, "isVeg": false},
	}}

	got, err := m.Pick([]string{"thali b", " Thali A ", "Thali B"})
	if err != nil {
		t.Fatalf("Pick returned error: %v", err)
	}
	var names []string
	for _, th := range got {
		names = append(names, th.Name)
	}
	if !reflect.DeepEqual(names, []string{"Thali B", "Thali A", "Thali B"}) {
		t.Errorf("Pick() names = %v", names)
	}

	if _, err := m.Pick([]string{"Thali Z"}); err == nil {
		t.Error("Pick of an unknown name should fail")
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.XLSXSettings.Sheet = "Menu"

	opts := OptionsFromConfig(cfg)
	if opts.Delimiter != "," || opts.ItemSeparator != ";" || opts.Sheet != "Menu" {
		t.Errorf("OptionsFromConfig() = %+v", opts)
	}
}
