package upstream_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/model"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/upstream"
)

func TestMapTransaction(t *testing.T) {
	t.Run("normalizes an NSE transaction", func(t *testing.T) {
		st := upstream.ServerTransaction{
			Exchange:         "nse",
			TradeDate:        "15/03/2024",
			TradeTime:        "10:30:00",
			ISIN:             " ine001a01001 ",
			IssuerName:       "Alpha Finance Ltd",
			MaturityDate:     "30/06/2027",
			TradeAmount:      2500000,
			TradePrice:       101.5,
			Yield:            "7.85",
			SettlementStatus: "N/A",
			DealType:         "brokered",
			Rating:           "AA+",
		}

		rec, ok := upstream.MapTransaction(st)
		if !ok {
			t.Fatal("Expected transaction to map")
		}

		if rec.Exchange != model.ExchangeNSE {
			t.Errorf("Exchange = %q, want NSE", rec.Exchange)
		}
		if rec.TradeDate != "2024-03-15" {
			t.Errorf("TradeDate = %q, want 2024-03-15", rec.TradeDate)
		}
		if rec.Identifier != "INE001A01001" {
			t.Errorf("Identifier = %q, want canonical form", rec.Identifier)
		}
		// Rupees in, lacs out.
		if rec.Amount != 25 {
			t.Errorf("Amount = %v, want 25", rec.Amount)
		}
		if rec.Status != "" {
			t.Errorf("Status = %q, want empty for N/A marker", rec.Status)
		}
		if rec.DealType != "BROKERED" {
			t.Errorf("DealType = %q, want BROKERED", rec.DealType)
		}
	})

	t.Run("BSE amounts pass through unconverted", func(t *testing.T) {
		st := upstream.ServerTransaction{
			Exchange:    "BSE",
			TradeDate:   "15/03/2024",
			ISIN:        "INE002B02002",
			TradeAmount: 40,
		}

		rec, ok := upstream.MapTransaction(st)
		if !ok {
			t.Fatal("Expected transaction to map")
		}
		if rec.Amount != 40 {
			t.Errorf("Amount = %v, want 40", rec.Amount)
		}
	})

	t.Run("rejects identifiers failing the gate", func(t *testing.T) {
		st := upstream.ServerTransaction{
			Exchange:    "NSE",
			TradeDate:   "15/03/2024",
			ISIN:        "bad",
			TradeAmount: 100000,
		}

		if _, ok := upstream.MapTransaction(st); ok {
			t.Error("Expected transaction to be rejected")
		}
	})
}

func TestAPIClient_FetchTransactions(t *testing.T) {
	t.Run("sends bearer token and decodes a page", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer secret-token" {
				t.Errorf("Authorization = %q", got)
			}
			if got := r.URL.Query().Get("page"); got != "1" {
				t.Errorf("page = %q, want 1", got)
			}
			//nolint:errcheck // Test fixture
			json.NewEncoder(w).Encode(upstream.TransactionPage{
				Transactions: []upstream.ServerTransaction{{Exchange: "NSE", ISIN: "INE001A01001"}},
				Total:        1,
				Page:         1,
				PageSize:     500,
			})
		}))
		defer server.Close()

		client := upstream.NewAPIClient()
		page, err := client.FetchTransactions(context.Background(), server.URL, "secret-token", 1)
		if err != nil {
			t.Fatalf("FetchTransactions() returned unexpected error: %v", err)
		}
		if page.Total != 1 || len(page.Transactions) != 1 {
			t.Errorf("Unexpected page: %+v", page)
		}
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "nope", http.StatusUnauthorized)
		}))
		defer server.Close()

		client := upstream.NewAPIClient()
		if _, err := client.FetchTransactions(context.Background(), server.URL, "bad-token", 1); err == nil {
			t.Error("Expected error for 401 response")
		}
	})

	t.Run("empty base URL is an error", func(t *testing.T) {
		client := upstream.NewAPIClient()
		if _, err := client.FetchTransactions(context.Background(), "", "token", 1); err == nil {
			t.Error("Expected error for empty base URL")
		}
	})
}
