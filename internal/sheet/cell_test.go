package sheet_test

import (
	"testing"
	"time"

	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/sheet"
)

// TestDateString covers the normalization paths for trade and maturity
// dates: spreadsheet serials, D/M/Y strings, two-digit years and the
// fallback that returns unconvertible input unchanged.
func TestDateString(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"spreadsheet serial", "45000", "2023-03-15"},
		{"serial with time fraction", "45000.4375", "2023-03-15"},
		{"dmy slashes", "15/03/2024", "2024-03-15"},
		{"dmy dashes", "5-3-2024", "2024-03-05"},
		{"two digit year current century", "01/02/25", "2025-02-01"},
		{"two digit year previous century", "01/02/99", "1999-02-01"},
		{"serial posing as year token", "1/1/45000", "2023-03-15"},
		{"already canonical", "2024-03-15", "2024-03-15"},
		{"month name layout", "15-Mar-2024", "2024-03-15"},
		{"serial below range", "45", "45"},
		{"nonsense stays verbatim", "pending", "pending"},
		{"invalid calendar day stays verbatim", "31/02/2024", "31/02/2024"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sheet.DateString(sheet.NewCell(tt.raw))
			if got != tt.want {
				t.Errorf("DateString(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}

	t.Run("idempotent on own output", func(t *testing.T) {
		once := sheet.DateString(sheet.NewCell("15/03/2024"))
		twice := sheet.DateString(sheet.NewCell(once))
		if once != twice {
			t.Errorf("DateString not idempotent: %q -> %q", once, twice)
		}
	})

	t.Run("native timestamp", func(t *testing.T) {
		c := sheet.TimeCell(time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC))
		if got := sheet.DateString(c); got != "2024-03-15" {
			t.Errorf("DateString(native) = %q, want 2024-03-15", got)
		}
	})
}

func TestTimeString(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"day fraction noon", "0.5", "12:00:00"},
		{"day fraction morning", "0.4375", "10:30:00"},
		{"integer hour", "9", "09:00:00"},
		{"serial with fraction", "45000.4375", "10:30:00"},
		{"short clock string", "9:05", "09:05:00"},
		{"full clock string", "14:05:09", "14:05:09"},
		{"unparseable stays verbatim", "morning", "morning"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sheet.TimeString(sheet.NewCell(tt.raw))
			if got != tt.want {
				t.Errorf("TimeString(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCleanDisplay(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"N/A", ""},
		{"n.a.", ""},
		{"Not Applicable", ""},
		{"NULL", ""},
		{"--", ""},
		{"  Alpha Finance Ltd  ", "Alpha Finance Ltd"},
		{"AA+ (Stable)", "AA+ (Stable)"},
	}

	for _, tt := range tests {
		if got := sheet.CleanDisplay(tt.raw); got != tt.want {
			t.Errorf("CleanDisplay(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestLooseNumber(t *testing.T) {
	tests := []struct {
		raw    string
		want   float64
		wantOK bool
	}{
		{"1,23,456.78", 123456.78, true},
		{"  2,500 ", 2500, true},
		{"7.85%", 7.85, true},
		{"-12.5", -12.5, true},
		{"", 0, false},
		{"pending", 0, false},
	}

	for _, tt := range tests {
		got, ok := sheet.LooseNumber(tt.raw)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("LooseNumber(%q) = (%v, %v), want (%v, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestRupeesToLacs(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"2500000", 25},
		{"500000", 5},
		{"123456", 1.2346},
		{"1,00,000", 1},
		{"not a number", 0},
	}

	for _, tt := range tests {
		if got := sheet.RupeesToLacs(sheet.NewCell(tt.raw)); got != tt.want {
			t.Errorf("RupeesToLacs(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
