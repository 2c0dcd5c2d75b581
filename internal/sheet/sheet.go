package sheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedExtension is wrapped into the error returned by ParseSheet
// for file types other than .csv, .xlsx and .xls.
var ErrUnsupportedExtension = fmt.Errorf("unsupported file extension")

// ParseSheet reads an uploaded file into a header row plus classified data
// rows. CSV files are tokenized with encoding/csv; spreadsheet files are
// read from their first sheet only, raw values, no implicit coercion. The
// first row is always treated as the header.
func ParseSheet(r io.Reader, filename string) ([]string, [][]Cell, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv":
		return parseCSV(r)
	case ".xlsx", ".xls":
		return parseWorkbook(r)
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedExtension, ext)
	}
}

func parseCSV(r io.Reader) ([]string, [][]Cell, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	raw, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV records: %w", err)
	}
	return classifyRows(raw)
}

func parseWorkbook(r io.Reader) ([]string, [][]Cell, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}

	raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}
	return classifyRows(raw)
}

func classifyRows(raw [][]string) ([]string, [][]Cell, error) {
	if len(raw) == 0 {
		return nil, nil, fmt.Errorf("file has no rows")
	}

	headers := make([]string, len(raw[0]))
	copy(headers, raw[0])

	rows := make([][]Cell, 0, len(raw)-1)
	for _, rawRow := range raw[1:] {
		row := make([]Cell, len(rawRow))
		for i, v := range rawRow {
			row[i] = NewCell(v)
		}
		rows = append(rows, row)
	}
	return headers, rows, nil
}

// CellAt returns the cell at index idx, or an empty cell when the index is
// -1 (unmatched header) or beyond the row's length. Rows from real exports
// are frequently ragged, so out-of-range access must stay harmless.
func CellAt(row []Cell, idx int) Cell {
	if idx < 0 || idx >= len(row) {
		return Cell{Kind: CellEmpty}
	}
	return row[idx]
}

// ParseCSVBytes is a convenience wrapper used by tests and the inbox
// scanner, which hold file contents in memory.
func ParseCSVBytes(data []byte) ([]string, [][]Cell, error) {
	return parseCSV(bytes.NewReader(data))
}
