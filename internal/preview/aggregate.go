package preview

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/model"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/sheet"
)

// bucketBreakpoints are the fixed amount strata in lacs; the last bucket
// is open-ended.
var bucketBreakpoints = []struct {
	label    string
	min, max float64
}{
	{"0-10", 0, 10},
	{"10-50", 10, 50},
	{"50-100", 50, 100},
	{"100-500", 100, 500},
	{"500-2500", 500, 2500},
	{"2500+", 2500, -1},
}

// BucketIndex places a lac amount into one of the six fixed buckets.
// Returns -1 for non-positive amounts, which are excluded from
// aggregation entirely.
func BucketIndex(amount float64) int {
	if amount <= 0 {
		return -1
	}
	for i, b := range bucketBreakpoints {
		if b.max < 0 || amount < b.max {
			return i
		}
	}
	return len(bucketBreakpoints) - 1
}

// ratingRunPattern finds a standalone run of 1-3 grade letters: preceded
// by start or a non-letter, followed by end or a non-letter. "CRISIL
// AAA/Stable" yields AAA; "CRISIL" itself yields nothing.
var ratingRunPattern = regexp.MustCompile(`(?:^|[^A-Z])([ABCD]{1,3})(?:$|[^A-Z])`)

// RatingGroupLabel normalizes a record's rating into its coarse letter
// grade (AAA/AA/A/BBB/.../D) from the first rating part, defaulting to
// UNRATED when no grade run is present.
func RatingGroupLabel(r model.TradeRecord) string {
	source := r.Rating
	if len(r.RatingParts) > 0 {
		source = r.RatingParts[0]
	}
	source = strings.ToUpper(strings.TrimSpace(source))
	if source == "" {
		return model.UnratedGroup
	}
	if m := ratingRunPattern.FindStringSubmatch(source); m != nil {
		return m[1]
	}
	return model.UnratedGroup
}

type cellKey struct {
	rating     string
	bucket     int
	identifier string
	issuer     string
	maturity   string
}

type cellAccumulator struct {
	tradeCount     int
	sumAmount      float64
	yieldNumerator float64
	yieldDenom     float64
	labels         map[string]bool
}

// Aggregate groups records into the ratingGroup → amountBucket →
// issuer/identifier/maturity hierarchy. Rows within a bucket sort by
// summed amount descending, then weighted-average yield descending with
// yieldless rows last; rating groups sort lexicographically.
func Aggregate(records []model.TradeRecord) []model.RatingGroup {
	cells := make(map[cellKey]*cellAccumulator)

	for _, r := range records {
		bucket := BucketIndex(r.Amount)
		if bucket < 0 {
			continue
		}

		issuer := r.IssuerDetails
		if issuer == "" {
			issuer = "Unknown Issuer"
		}
		maturity := r.MaturityDate
		if maturity == "" {
			maturity = "-"
		}

		key := cellKey{
			rating:     RatingGroupLabel(r),
			bucket:     bucket,
			identifier: r.Identifier,
			issuer:     issuer,
			maturity:   maturity,
		}
		acc := cells[key]
		if acc == nil {
			acc = &cellAccumulator{labels: make(map[string]bool)}
			cells[key] = acc
		}

		acc.tradeCount++
		acc.sumAmount += r.Amount
		if y, ok := sheet.LooseNumber(r.Yield); ok {
			acc.yieldNumerator += y * r.Amount
			acc.yieldDenom += r.Amount
		}
		if label := dealYieldLabel(r.DealType, r.Yield); label != "" {
			acc.labels[label] = true
		}
	}

	grouped := make(map[string][][]model.BucketRow)
	for key, acc := range cells {
		buckets, ok := grouped[key.rating]
		if !ok {
			buckets = make([][]model.BucketRow, len(bucketBreakpoints))
			grouped[key.rating] = buckets
		}
		buckets[key.bucket] = append(buckets[key.bucket], model.BucketRow{
			Identifier:       key.identifier,
			Issuer:           key.issuer,
			Maturity:         key.maturity,
			TradeCount:       acc.tradeCount,
			SumAmount:        acc.sumAmount,
			WeightedAvgYield: acc.weightedAverage(),
			DealYieldLabels:  sortedLabels(acc.labels),
		})
	}

	ratings := make([]string, 0, len(grouped))
	for rating := range grouped {
		ratings = append(ratings, rating)
	}
	sort.Strings(ratings)

	var groups []model.RatingGroup
	for _, rating := range ratings {
		group := model.RatingGroup{Rating: rating}
		for i, rows := range grouped[rating] {
			if len(rows) == 0 {
				continue
			}
			sortBucketRows(rows)
			group.Buckets = append(group.Buckets, model.AmountBucket{
				Label: bucketBreakpoints[i].label,
				Min:   bucketBreakpoints[i].min,
				Max:   bucketBreakpoints[i].max,
				Rows:  rows,
			})
		}
		if len(group.Buckets) > 0 {
			groups = append(groups, group)
		}
	}
	return groups
}

func (a *cellAccumulator) weightedAverage() *float64 {
	if a.yieldDenom == 0 {
		return nil
	}
	avg := a.yieldNumerator / a.yieldDenom
	return &avg
}

func dealYieldLabel(dealType, yield string) string {
	if dealType == "" && yield == "" {
		return ""
	}
	return strings.TrimSpace(dealType + " / " + yield)
}

func sortedLabels(labels map[string]bool) []string {
	if len(labels) == 0 {
		return nil
	}
	out := make([]string, 0, len(labels))
	for l := range labels {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// sortBucketRows orders rows by materiality: summed amount descending,
// then weighted-average yield descending with nil averages last.
func sortBucketRows(rows []model.BucketRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].SumAmount != rows[j].SumAmount {
			return rows[i].SumAmount > rows[j].SumAmount
		}
		yi, yj := rows[i].WeightedAvgYield, rows[j].WeightedAvgYield
		switch {
		case yi == nil:
			return false
		case yj == nil:
			return true
		default:
			return *yi > *yj
		}
	})
}

var ratingQueryPattern = regexp.MustCompile(`^[A-Da-d]{1,3}$`)

// SearchAggregation filters the aggregated view by a free-text query. A
// short query made only of grade letters narrows by rating-group prefix;
// anything else is a case-insensitive substring match against each row's
// visible text.
func SearchAggregation(groups []model.RatingGroup, query string) []model.RatingGroup {
	query = strings.TrimSpace(query)
	if query == "" {
		return groups
	}

	if len(query) <= 3 && ratingQueryPattern.MatchString(query) {
		prefix := strings.ToUpper(query)
		var out []model.RatingGroup
		for _, g := range groups {
			if strings.HasPrefix(g.Rating, prefix) {
				out = append(out, g)
			}
		}
		return out
	}

	needle := strings.ToLower(query)
	var out []model.RatingGroup
	for _, g := range groups {
		filtered := model.RatingGroup{Rating: g.Rating}
		for _, b := range g.Buckets {
			var rows []model.BucketRow
			for _, row := range b.Rows {
				if strings.Contains(rowSearchText(g.Rating, b.Label, row), needle) {
					rows = append(rows, row)
				}
			}
			if len(rows) > 0 {
				filtered.Buckets = append(filtered.Buckets, model.AmountBucket{
					Label: b.Label, Min: b.Min, Max: b.Max, Rows: rows,
				})
			}
		}
		if len(filtered.Buckets) > 0 {
			out = append(out, filtered)
		}
	}
	return out
}

func rowSearchText(rating, bucketLabel string, row model.BucketRow) string {
	parts := []string{
		rating,
		bucketLabel,
		row.Issuer,
		row.Identifier,
		row.Maturity,
		strconv.Itoa(row.TradeCount),
		strconv.FormatFloat(row.SumAmount, 'f', 2, 64),
	}
	if row.WeightedAvgYield != nil {
		parts = append(parts, strconv.FormatFloat(*row.WeightedAvgYield, 'f', 2, 64))
	}
	parts = append(parts, row.DealYieldLabels...)
	return strings.ToLower(strings.Join(parts, " "))
}
