package sheet_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/sheet"
)

func TestParseSheet(t *testing.T) {
	t.Run("parses CSV with header row and ragged rows", func(t *testing.T) {
		csv := "ISIN,Trade Date,Price\nINE001A01001,15/03/2024,101.5\nINE002B02002,16/03/2024\n"

		headers, rows, err := sheet.ParseSheet(strings.NewReader(csv), "trades.csv")
		if err != nil {
			t.Fatalf("ParseSheet() returned unexpected error: %v", err)
		}

		if len(headers) != 3 || headers[0] != "ISIN" {
			t.Errorf("Unexpected headers: %v", headers)
		}
		if len(rows) != 2 {
			t.Fatalf("Expected 2 rows, got %d", len(rows))
		}
		if rows[0][2].Kind != sheet.CellNumber || rows[0][2].Number != 101.5 {
			t.Errorf("Expected numeric price cell, got %+v", rows[0][2])
		}
		// Second row is ragged; the missing column must read as empty.
		if c := sheet.CellAt(rows[1], 2); c.Kind != sheet.CellEmpty {
			t.Errorf("Expected empty cell for ragged row, got %+v", c)
		}
	})

	t.Run("rejects unsupported extension", func(t *testing.T) {
		_, _, err := sheet.ParseSheet(strings.NewReader("data"), "trades.pdf")
		if !errors.Is(err, sheet.ErrUnsupportedExtension) {
			t.Errorf("Expected ErrUnsupportedExtension, got %v", err)
		}
	})

	t.Run("rejects empty file", func(t *testing.T) {
		_, _, err := sheet.ParseSheet(strings.NewReader(""), "trades.csv")
		if err == nil {
			t.Error("Expected error for file with no rows")
		}
	})
}

func TestCellAt(t *testing.T) {
	row := []sheet.Cell{sheet.NewCell("a"), sheet.NewCell("b")}

	if c := sheet.CellAt(row, -1); c.Kind != sheet.CellEmpty {
		t.Errorf("CellAt(-1) should be empty, got %+v", c)
	}
	if c := sheet.CellAt(row, 5); c.Kind != sheet.CellEmpty {
		t.Errorf("CellAt(5) should be empty, got %+v", c)
	}
	if c := sheet.CellAt(row, 1); c.Text != "b" {
		t.Errorf("CellAt(1) = %+v, want text b", c)
	}
}
