// Package sheet handles parsing of uploaded trade files (.csv, .xlsx, .xls)
// and normalization of their loosely typed cell values into canonical
// date, time and numeric representations.
package sheet

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// CellKind discriminates the value held by a Cell.
type CellKind int

const (
	// CellEmpty is a blank cell.
	CellEmpty CellKind = iota
	// CellNumber is a cell whose raw text parses as a number.
	CellNumber
	// CellText is any other non-empty cell.
	CellText
	// CellTime is a cell carrying a native timestamp. File parsers never
	// produce this kind; it exists for callers that already hold a
	// time.Time (e.g. upstream API payloads).
	CellTime
)

// Cell is a single untyped spreadsheet/CSV cell at the ingestion boundary.
// Text always holds the original raw string so fallback paths can return
// the input unchanged.
type Cell struct {
	Kind   CellKind
	Number float64
	Text   string
	Time   time.Time
}

// NewCell classifies a raw string value from a parsed sheet.
func NewCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Cell{Kind: CellEmpty, Text: raw}
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
		return Cell{Kind: CellNumber, Number: n, Text: raw}
	}
	return Cell{Kind: CellText, Text: raw}
}

// TimeCell wraps a native timestamp as a Cell.
func TimeCell(t time.Time) Cell {
	return Cell{Kind: CellTime, Time: t}
}

// canonicalDateLayout sorts lexicographically in chronological order, which
// the sort engine relies on.
const canonicalDateLayout = "2006-01-02"

// Spreadsheet serial dates count days from the day before 1900-01-01, with
// the historical convention that 1900 was a leap year. Anchoring the epoch
// at 1899-12-30 makes serials above 59 (the phantom 1900-02-29) land on the
// correct calendar day.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

const (
	serialMin = 59
	serialMax = 2958465
)

var (
	dmyPattern      = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{2,5})$`)
	timePattern     = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)
	numericStripper = regexp.MustCompile(`[^0-9.+-]`)
)

// NumericValue coerces a cell to a float. Strings are cleaned of thousands
// separators and any other character outside [0-9.+-] before parsing.
// Returns false for empty, unparseable, NaN and infinite values.
func (c Cell) NumericValue() (float64, bool) {
	switch c.Kind {
	case CellNumber:
		return c.Number, true
	case CellText:
		return LooseNumber(c.Text)
	default:
		return 0, false
	}
}

// LooseNumber parses a display string as a number, tolerating thousands
// separators, currency symbols and stray whitespace.
func LooseNumber(s string) (float64, bool) {
	cleaned := numericStripper.ReplaceAllString(strings.TrimSpace(s), "")
	if cleaned == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// DateString converts a cell to the canonical YYYY-MM-DD form.
//
// Resolution order: native timestamp, spreadsheet serial, D/M/Y string,
// generic layouts. Unconvertible values come back as the trimmed original
// text rather than an error; extraction always continues.
func DateString(c Cell) string {
	switch c.Kind {
	case CellEmpty:
		return ""
	case CellTime:
		return c.Time.Format(canonicalDateLayout)
	case CellNumber:
		if s, ok := serialDate(c.Number); ok {
			return s
		}
		return strings.TrimSpace(c.Text)
	}

	text := strings.TrimSpace(c.Text)
	if m := dmyPattern.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if year < 100 {
			if year >= 70 {
				year += 1900
			} else {
				year += 2000
			}
		}
		// A "year" beyond any plausible calendar year means the token
		// order was transposed and the field is really a serial date.
		if year > 4000 {
			if s, ok := serialDate(float64(year)); ok {
				return s
			}
			return text
		}
		if validCalendarDate(year, month, day) {
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format(canonicalDateLayout)
		}
		return text
	}

	for _, layout := range []string{
		canonicalDateLayout,
		"2006/01/02",
		"02-Jan-2006",
		"02-Jan-06",
		"2 Jan 2006",
		"Jan 2, 2006",
		time.RFC3339,
	} {
		if t, err := time.Parse(layout, text); err == nil {
			return t.Format(canonicalDateLayout)
		}
	}
	return text
}

func serialDate(n float64) (string, bool) {
	serial := math.Floor(n)
	if serial <= serialMin || serial >= serialMax {
		return "", false
	}
	return serialEpoch.AddDate(0, 0, int(serial)).Format(canonicalDateLayout), true
}

func validCalendarDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Day() == day && int(t.Month()) == month
}

// TimeString converts a cell to HH:MM:SS.
//
// Numbers in [0,1) are day fractions; full serial dates contribute their
// fractional part; bare integers 0..24 are whole hours. Strings already in
// H:MM or H:MM:SS form are padded. Anything else comes back trimmed and
// unchanged.
func TimeString(c Cell) string {
	switch c.Kind {
	case CellEmpty:
		return ""
	case CellTime:
		return c.Time.Format("15:04:05")
	case CellNumber:
		n := c.Number
		switch {
		case n >= 0 && n < 1:
			return fractionToTime(n)
		case n == math.Floor(n) && n >= 0 && n <= 24:
			return padHour(int(n)) + ":00:00"
		case n > serialMin && n < serialMax:
			return fractionToTime(n - math.Floor(n))
		}
		return strings.TrimSpace(c.Text)
	}

	text := strings.TrimSpace(c.Text)
	if m := timePattern.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		sec := m[3]
		if sec == "" {
			sec = "00"
		}
		if hour <= 24 {
			return padHour(hour) + ":" + m[2] + ":" + sec
		}
	}
	return text
}

func fractionToTime(f float64) string {
	total := int(math.Round(f*86400)) % 86400
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return padHour(h) + ":" + pad2(m) + ":" + pad2(s)
}

func padHour(h int) string { return pad2(h) }

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// noValueTokens are compared against uppercased text stripped of
// punctuation and whitespace.
var noValueTokens = map[string]bool{
	"NA":            true,
	"NOTAVAILABLE":  true,
	"NOTAPPLICABLE": true,
	"NULL":          true,
	"NIL":           true,
	"NONE":          true,
	"":              true,
}

// CleanDisplay returns the trimmed original string, or "" when the value is
// one of the conventional not-applicable markers (NA, N/A, NULL, "--", ...).
func CleanDisplay(s string) string {
	trimmed := strings.TrimSpace(s)
	var b strings.Builder
	for _, r := range strings.ToUpper(trimmed) {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if noValueTokens[b.String()] {
		return ""
	}
	return trimmed
}

// RupeesToLacs converts a rupee-denominated cell into lacs (1 lac =
// 100,000), rounded to four decimal places. Non-numeric cells convert to 0.
func RupeesToLacs(c Cell) float64 {
	n, ok := c.NumericValue()
	if !ok {
		return 0
	}
	return math.Round(n/100000*10000) / 10000
}
