// Package preview implements the pure passes over the unified record set:
// deterministic sorting, predicate filtering and the rating/amount-bucket
// aggregation. Every function is a function of its inputs only; state
// between calls lives with the caller.
package preview

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/model"
)

const dateLayout = "2006-01-02"

// SortRecords orders records by trade date descending, exchange ascending,
// identifier ascending. Canonical dates are YYYY-MM-DD, so string
// comparison is chronological; the sort is stable.
func SortRecords(records []model.TradeRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].TradeDate != records[j].TradeDate {
			return records[i].TradeDate > records[j].TradeDate
		}
		if records[i].Exchange != records[j].Exchange {
			return records[i].Exchange < records[j].Exchange
		}
		return records[i].Identifier < records[j].Identifier
	})
}

// Filter returns the records matching every set constraint in f.
func Filter(records []model.TradeRecord, f model.FilterState) []model.TradeRecord {
	if f.IsZero() {
		return records
	}

	startDate, hasStart := parseDay(f.StartDate)
	endDate, hasEnd := parseDay(f.EndDate)

	out := make([]model.TradeRecord, 0, len(records))
	for _, r := range records {
		if !containsFold(r.Exchange, f.Exchange) ||
			!containsFold(r.TradeDate, f.TradeDate) ||
			!containsFold(r.TradeTime, f.TradeTime) ||
			!containsFold(r.Identifier, f.Identifier) ||
			!containsFold(r.IssuerDetails, f.Issuer) ||
			!containsFold(r.MaturityDate, f.Maturity) ||
			!containsFold(r.Yield, f.Yield) ||
			!containsFold(r.Status, f.Status) ||
			!containsFold(r.DealType, f.DealType) {
			continue
		}
		if !inRange(r.Amount, f.MinAmount, f.MaxAmount) || !inRange(r.Price, f.MinPrice, f.MaxPrice) {
			continue
		}
		if hasStart || hasEnd {
			day, ok := parseDay(r.TradeDate)
			if !ok {
				continue
			}
			if hasStart && day.Before(startDate) {
				continue
			}
			if hasEnd && day.After(endDate) {
				continue
			}
		}
		if f.Rating != "" && !MatchesRating(r, f.Rating) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func containsFold(value, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(strings.TrimSpace(query)))
}

func inRange(value float64, min, max *float64) bool {
	if min != nil && value < *min {
		return false
	}
	if max != nil && value > *max {
		return false
	}
	return true
}

func parseDay(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

var (
	ratingTokenSplitter = regexp.MustCompile(`[,\s/|]+`)
	ratingCharStripper  = regexp.MustCompile(`[^A-Z+/-]`)
)

// MatchesRating applies the rating filter: the query is uppercased and
// compared as a prefix against every token of the record's rating parts
// (or the raw rating when no parts exist), with tokens stripped to the
// rating alphabet [A-Z+/-].
func MatchesRating(r model.TradeRecord, query string) bool {
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	sources := r.RatingParts
	if len(sources) == 0 {
		sources = []string{r.Rating}
	}
	for _, source := range sources {
		for _, token := range ratingTokenSplitter.Split(strings.ToUpper(source), -1) {
			token = ratingCharStripper.ReplaceAllString(token, "")
			if token != "" && strings.HasPrefix(token, q) {
				return true
			}
		}
	}
	return false
}
