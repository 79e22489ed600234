// =============================================================================
// Thali Combo - Report Writer
// =============================================================================
//
// This module writes command output to disk:
//   - SaveReceipt:   a receipt as a uniquely named text file
//   - WriteWorkbook: an XLSX workbook with a "Menu" sheet (one row per entry,
//                    including its display line) and a "Stats" sheet
//
// =============================================================================

package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/thali-combo/internal/thali"
	"github.com/ginjaninja78/thali-combo/pkg/utils"
)

// Sheet names used by WriteWorkbook.
const (
	MenuSheet  = "Menu"
	StatsSheet = "Stats"
)

var menuHeader = []any{"Name", "Items", "Price", "Veg", "Description"}

// SaveReceipt writes receipt into the file manager's output directory under
// a name built from nameFormat, and returns the file path.
func SaveReceipt(fm *utils.FileManager, nameFormat, customer, receipt string) (string, error) {
	if receipt == "" {
		return "", fmt.Errorf("refusing to save an empty receipt")
	}

	name := fm.GenerateOutputFileName(nameFormat, map[string]string{"customer": customer}, ".txt")

	path, err := fm.WriteOutputFile(name, []byte(receipt+"\n"))
	if err != nil {
		return "", fmt.Errorf("failed to save receipt: %w", err)
	}

	return path, nil
}

// WriteWorkbook writes the menu export for entries to path.
func WriteWorkbook(path string, entries []any) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), MenuSheet); err != nil {
		return fmt.Errorf("failed to name menu sheet: %w", err)
	}
	if err := writeMenuSheet(f, entries); err != nil {
		return err
	}

	if _, err := f.NewSheet(StatsSheet); err != nil {
		return fmt.Errorf("failed to add stats sheet: %w", err)
	}
	if err := writeStatsSheet(f, thali.StatsOf(entries)); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}

func writeMenuSheet(f *excelize.File, entries []any) error {
	if err := setRow(f, MenuSheet, 1, menuHeader); err != nil {
		return err
	}

	thalis, _ := thali.Collect(entries)
	for i, t := range thalis {
		row := []any{
			t.Name,
			strings.Join(t.Items, ", "),
			cellNumber(t.Price),
			dietCell(t.IsVeg),
			thali.Describe(entries[i]),
		}
		if err := setRow(f, MenuSheet, i+2, row); err != nil {
			return err
		}
	}

	return nil
}

func writeStatsSheet(f *excelize.File, summary *thali.Summary) error {
	if summary == nil {
		return setRow(f, StatsSheet, 1, []any{"No thalis to summarize"})
	}

	rows := [][]any{
		{"Total thalis", summary.TotalThalis},
		{"Veg", summary.VegCount},
		{"Non-veg", summary.NonVegCount},
		{"Average price", summary.AvgPrice},
		{"Cheapest", cellNumber(summary.Cheapest)},
		{"Costliest", cellNumber(summary.Costliest)},
		{"Names", strings.Join(summary.Names, ", ")},
	}
	for i, row := range rows {
		if err := setRow(f, StatsSheet, i+1, row); err != nil {
			return err
		}
	}

	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}

// cellNumber keeps NaN and infinities out of numeric cells, which Excel
// cannot store.
func cellNumber(x float64) any {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return thali.FormatNumber(x)
	}
	return x
}

func dietCell(isVeg bool) string {
	if isVeg {
		return "Veg"
	}
	return "Non-Veg"
}
