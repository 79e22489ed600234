package menu

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/thali-combo/internal/thali"
)

// =============================================================================
// CSV
// =============================================================================

func loadCSV(path string, opts Options) ([]any, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	configureReader(reader, opts)

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	return recordsFromRows(rows, opts)
}

// configureReader applies the delimiter and relaxes field counts so that
// short or long rows reach validation instead of failing the whole file.
func configureReader(reader *csv.Reader, opts Options) {
	switch opts.Delimiter {
	case `\t`, "\t", "tab":
		reader.Comma = '\t'
	default:
		r, _ := utf8.DecodeRuneInString(opts.Delimiter)
		reader.Comma = r
	}

	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
}

// =============================================================================
// XLSX
// =============================================================================

func loadXLSX(path string, opts Options) ([]any, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	return recordsFromRows(rows, opts)
}

// =============================================================================
// SHARED ROW HANDLING
// =============================================================================

// recordsFromRows turns a header row plus data rows into thali.Record
// entries. Every header column becomes a key, so extra columns survive for
// validation. Blank rows are skipped.
func recordsFromRows(rows [][]string, opts Options) ([]any, error) {
	if len(rows) == 0 {
		return nil, errors.New("menu table is empty")
	}

	headers := cleanHeaders(rows[0])
	for i, h := range headers {
		if h == "" {
			return nil, fmt.Errorf("column %d has an empty header", i+1)
		}
	}

	entries := make([]any, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isRowEmpty(row) {
			continue
		}

		record := make(thali.Record, len(headers))
		for i, header := range headers {
			cell := ""
			if i < len(row) {
				cell = strings.TrimSpace(row[i])
			}
			record[header] = cellValue(header, cell, opts)
		}
		entries = append(entries, record)
	}

	return entries, nil
}

// cellValue converts the cells that have a natural type. Cells that do not
// convert stay text, which validation then reports.
func cellValue(header, cell string, opts Options) any {
	switch header {
	case thali.FieldItems:
		items := []any{}
		if cell == "" {
			return items
		}
		for _, item := range strings.Split(cell, opts.ItemSeparator) {
			items = append(items, strings.TrimSpace(item))
		}
		return items
	case thali.FieldPrice:
		if price, err := strconv.ParseFloat(cell, 64); err == nil {
			return price
		}
	case thali.FieldIsVeg:
		if isVeg, err := strconv.ParseBool(cell); err == nil {
			return isVeg
		}
	}
	return cell
}

// cleanHeaders trims whitespace and a leading byte order mark.
func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))
	for i, h := range headers {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		cleaned[i] = strings.TrimSpace(h)
	}
	return cleaned
}

func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
