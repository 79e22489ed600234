// =============================================================================
// Thali Combo - Menu Loader
// =============================================================================
//
// This module reads a menu file into the loosely typed entries the thali
// operations work on. The format is picked from the file extension:
//
//   .yaml / .yml  - a sequence of mappings, or a mapping with a "thalis" key
//   .json         - same shapes as YAML
//   .toml         - an array of tables named "thalis" ([[thalis]])
//   .csv          - header row + one thali per row
//   .xlsx         - first (or configured) sheet, laid out like the CSV
//
// Entries are kept exactly as found: mappings become thali.Record values with
// whatever keys the file had, and non-mapping entries are kept as-is. Shape
// problems are left for validation and for the operations' own rules.
//
// EXAMPLE CSV:
//
//   name,items,price,isVeg
//   Rajasthani Thali,dal baati;churma;papad,250,true
//   Hyderabadi Thali,biryani;mirchi ka salan,320,false
//
// =============================================================================

package menu

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/thali-combo/internal/config"
	"github.com/ginjaninja78/thali-combo/internal/thali"
)

var (
	// ErrUnsupportedFormat is returned for an unknown file extension.
	ErrUnsupportedFormat = errors.New("unsupported menu format")

	// ErrNotSequence is returned when a document's root holds no list of thalis.
	ErrNotSequence = errors.New("menu document is not a list of thalis")
)

// RootKey is the mapping key that may wrap the thali list in YAML, JSON and
// TOML documents.
const RootKey = "thalis"

// Menu is a loaded menu file.
type Menu struct {
	// Path is the file the menu was read from.
	Path string

	// Format is the lowercased extension without the dot, e.g. "yaml".
	Format string

	// Entries holds one decoded value per thali, in file order.
	Entries []any
}

// Options controls how tabular menus are read.
type Options struct {
	// Delimiter separates CSV columns. Default: ","
	Delimiter string

	// ItemSeparator splits the items cell. Default: ";"
	ItemSeparator string

	// Sheet is the XLSX worksheet to read. Empty means the first sheet.
	Sheet string
}

// OptionsFromConfig maps the application configuration onto loader options.
func OptionsFromConfig(cfg *config.MainConfig) Options {
	return Options{
		Delimiter:     cfg.CSVSettings.Delimiter,
		ItemSeparator: cfg.CSVSettings.ItemSeparator,
		Sheet:         cfg.XLSXSettings.Sheet,
	}
}

func (o Options) withDefaults() Options {
	if o.Delimiter == "" {
		o.Delimiter = config.DefaultDelimiter
	}
	if o.ItemSeparator == "" {
		o.ItemSeparator = config.DefaultItemSeparator
	}
	return o
}

// Load reads the menu at path.
func Load(path string, opts Options) (*Menu, error) {
	opts = opts.withDefaults()
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	var (
		entries []any
		err     error
	)

	switch format {
	case "yaml", "yml":
		entries, err = loadYAML(path)
	case "json":
		entries, err = loadJSON(path)
	case "toml":
		entries, err = loadTOML(path)
	case "csv":
		entries, err = loadCSV(path, opts)
	case "xlsx":
		entries, err = loadXLSX(path, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load menu %s: %w", path, err)
	}

	return &Menu{Path: path, Format: format, Entries: entries}, nil
}

// Len returns the number of entries.
func (m *Menu) Len() int { return len(m.Entries) }

// Thalis converts every entry with thali.Collect's lenient rules.
func (m *Menu) Thalis() []thali.Thali {
	thalis, _ := thali.Collect(m.Entries)
	return thalis
}

// Pick returns the thalis named in names, in the order given. Names match
// case-insensitively; the first entry with a matching name wins. An unknown
// name is an error.
func (m *Menu) Pick(names []string) ([]thali.Thali, error) {
	all := m.Thalis()

	picked := make([]thali.Thali, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		found := false
		for _, t := range all {
			if strings.EqualFold(t.Name, name) {
				picked = append(picked, t)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("no thali named %q on the menu", name)
		}
	}

	return picked, nil
}
