package preview_test

import (
	"testing"

	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/model"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/preview"
)

func TestSortRecords(t *testing.T) {
	t.Run("date desc then exchange asc then identifier asc", func(t *testing.T) {
		records := []model.TradeRecord{
			{TradeDate: "2024-03-14", Exchange: "NSE", Identifier: "INE001A01001"},
			{TradeDate: "2024-03-15", Exchange: "NSE", Identifier: "INE002B02002"},
			{TradeDate: "2024-03-15", Exchange: "BSE", Identifier: "INE003C03003"},
			{TradeDate: "2024-03-15", Exchange: "NSE", Identifier: "INE001A01001"},
		}

		preview.SortRecords(records)

		wantIDs := []string{"INE003C03003", "INE001A01001", "INE002B02002", "INE001A01001"}
		for i, want := range wantIDs {
			if records[i].Identifier != want {
				t.Errorf("records[%d].Identifier = %q, want %q", i, records[i].Identifier, want)
			}
		}
		if records[0].Exchange != "BSE" {
			t.Errorf("BSE should sort before NSE on equal dates, got %q", records[0].Exchange)
		}
	})

	t.Run("stable on full ties", func(t *testing.T) {
		records := []model.TradeRecord{
			{TradeDate: "2024-03-15", Exchange: "NSE", Identifier: "INE001A01001", Yield: "first"},
			{TradeDate: "2024-03-15", Exchange: "NSE", Identifier: "INE001A01001", Yield: "second"},
		}

		preview.SortRecords(records)

		if records[0].Yield != "first" || records[1].Yield != "second" {
			t.Errorf("Tied records must keep input order, got %q then %q", records[0].Yield, records[1].Yield)
		}
	})
}

func TestFilter(t *testing.T) {
	records := []model.TradeRecord{
		{Exchange: "NSE", TradeDate: "2024-03-15", Identifier: "INE001A01001", IssuerDetails: "Alpha Finance Ltd", Amount: 25, Price: 101.5, Status: "SETTLED"},
		{Exchange: "BSE", TradeDate: "2024-03-10", Identifier: "INE002B02002", IssuerDetails: "Beta Infra Ltd", Amount: 150, Price: 99.2, Status: "EXECUTED"},
		{Exchange: "NSE", TradeDate: "pending", Identifier: "INE003C03003", IssuerDetails: "Gamma Power Ltd", Amount: 40, Price: 100},
	}

	ptr := func(v float64) *float64 { return &v }

	t.Run("zero filter passes everything through", func(t *testing.T) {
		if got := preview.Filter(records, model.FilterState{}); len(got) != 3 {
			t.Errorf("Expected all 3 records, got %d", len(got))
		}
	})

	t.Run("issuer substring is case-insensitive", func(t *testing.T) {
		got := preview.Filter(records, model.FilterState{Issuer: "alpha"})
		if len(got) != 1 || got[0].Identifier != "INE001A01001" {
			t.Errorf("Expected the Alpha record, got %+v", got)
		}
	})

	t.Run("amount range bounds are inclusive", func(t *testing.T) {
		got := preview.Filter(records, model.FilterState{MinAmount: ptr(25), MaxAmount: ptr(40)})
		if len(got) != 2 {
			t.Errorf("Expected 2 records in [25,40], got %d", len(got))
		}
	})

	t.Run("date range excludes unparseable trade dates", func(t *testing.T) {
		got := preview.Filter(records, model.FilterState{StartDate: "2024-03-01", EndDate: "2024-03-31"})
		if len(got) != 2 {
			t.Fatalf("Expected 2 records, got %d", len(got))
		}
		for _, r := range got {
			if r.TradeDate == "pending" {
				t.Error("Record with unparseable date must not pass a date-range filter")
			}
		}
	})

	t.Run("start date alone", func(t *testing.T) {
		got := preview.Filter(records, model.FilterState{StartDate: "2024-03-12"})
		if len(got) != 1 || got[0].TradeDate != "2024-03-15" {
			t.Errorf("Expected only the 03-15 record, got %+v", got)
		}
	})

	t.Run("combined constraints are conjunctive", func(t *testing.T) {
		got := preview.Filter(records, model.FilterState{Exchange: "NSE", MinAmount: ptr(30)})
		if len(got) != 1 || got[0].Identifier != "INE003C03003" {
			t.Errorf("Expected only the Gamma record, got %+v", got)
		}
	})
}

func TestMatchesRating(t *testing.T) {
	tests := []struct {
		name   string
		record model.TradeRecord
		query  string
		want   bool
	}{
		{
			name:   "prefix against rating part token",
			record: model.TradeRecord{Rating: "CRISIL AA+/Stable", RatingParts: []string{"CRISIL AA+/Stable"}},
			query:  "AA",
			want:   true,
		},
		{
			name:   "AA query does not match plain A",
			record: model.TradeRecord{Rating: "A", RatingParts: []string{"A"}},
			query:  "AA",
			want:   false,
		},
		{
			name:   "A query matches AA token by prefix",
			record: model.TradeRecord{Rating: "AA", RatingParts: []string{"AA"}},
			query:  "A",
			want:   true,
		},
		{
			name:   "case insensitive",
			record: model.TradeRecord{Rating: "AAA", RatingParts: []string{"AAA"}},
			query:  "aaa",
			want:   true,
		},
		{
			name:   "falls back to raw rating without parts",
			record: model.TradeRecord{Rating: "ICRA BBB+"},
			query:  "BBB",
			want:   true,
		},
		{
			name:   "agency name alone does not match grade query",
			record: model.TradeRecord{Rating: "CRISIL", RatingParts: []string{"CRISIL"}},
			query:  "AA",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := preview.MatchesRating(tt.record, tt.query); got != tt.want {
				t.Errorf("MatchesRating(%q, %q) = %v, want %v", tt.record.Rating, tt.query, got, tt.want)
			}
		})
	}
}
