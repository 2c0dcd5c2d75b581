package ingest_test

import (
	"testing"

	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/ingest"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/model"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/sheet"
)

func TestValidIdentifier(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"INE001A01001", true},
		{" ine001a01001 ", true},
		{"INE001A0100", false},   // 11 chars
		{"INE001A010011", false}, // 13 chars
		{"INE001A0100!", false},  // punctuation
		{"ISIN", false},          // header echo
		{"", false},
	}

	for _, tt := range tests {
		if got := ingest.ValidIdentifier(tt.raw); got != tt.want {
			t.Errorf("ValidIdentifier(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func mustParseCSV(t *testing.T, csv string) ([]string, [][]sheet.Cell) {
	t.Helper()
	headers, rows, err := sheet.ParseCSVBytes([]byte(csv))
	if err != nil {
		t.Fatalf("Failed to parse test CSV: %v", err)
	}
	return headers, rows
}

func TestExtractNSE(t *testing.T) {
	csv := "ISIN,Security Description,Trade Date,Trade Time,Maturity Date,Deal Size (in Rs),Price (in Rs),Yield (%),Settlement Status,Buyer Deal Type,Seller Deal Type\n" +
		"INE001A01001,Alpha Finance Ltd,15/03/2024,10:30:00,30/06/2027,500000,101.5,7.85,Settled,Direct,Direct\n" +
		"INE002B02002,Beta Infra Ltd,15/03/2024,11:00:00,31/12/2026,2500000,99.2,8.10,Settled,Broker,Direct\n" +
		"not-an-isin,Junk Row,15/03/2024,,,100,,,,,\n"

	headers, rows := mustParseCSV(t, csv)
	records := ingest.ExtractNSE(headers, rows)

	if len(records) != 2 {
		t.Fatalf("Expected 2 records (invalid identifier dropped), got %d", len(records))
	}

	first := records[0]
	if first.Exchange != model.ExchangeNSE {
		t.Errorf("Exchange = %q, want NSE", first.Exchange)
	}
	if first.TradeDate != "2024-03-15" {
		t.Errorf("TradeDate = %q, want 2024-03-15", first.TradeDate)
	}
	if first.MaturityDate != "2027-06-30" {
		t.Errorf("MaturityDate = %q, want 2027-06-30", first.MaturityDate)
	}
	// NSE deal sizes are rupee-denominated; 500000 rupees is 5 lacs.
	if first.Amount != 5 {
		t.Errorf("Amount = %v, want 5", first.Amount)
	}
	if first.DealType != "DIRECT" {
		t.Errorf("DealType = %q, want DIRECT", first.DealType)
	}

	second := records[1]
	if second.Amount != 25 {
		t.Errorf("Amount = %v, want 25", second.Amount)
	}
	if second.DealType != "BROKERED" {
		t.Errorf("DealType = %q, want BROKERED", second.DealType)
	}
}

func TestExtractBSE(t *testing.T) {
	csv := "ISIN No,Issuer Name,Trade Date,Maturity Date,Trade Amount (Rs in Lacs),Trade Price (in Rs),Yield to Maturity,Deal Status,Order Type\n" +
		"INE003C03003,Gamma Power Ltd,16/03/2024,31/03/2029,150,100.25,7.95,Executed,Direct\n" +
		"ISIN No,Issuer Name,Trade Date,Maturity Date,Trade Amount (Rs in Lacs),Trade Price (in Rs),Yield to Maturity,Deal Status,Order Type\n"

	headers, rows := mustParseCSV(t, csv)
	records := ingest.ExtractBSE(headers, rows)

	if len(records) != 1 {
		t.Fatalf("Expected 1 record (header echo dropped), got %d", len(records))
	}

	r := records[0]
	if r.Exchange != model.ExchangeBSE {
		t.Errorf("Exchange = %q, want BSE", r.Exchange)
	}
	// BSE amounts are already lac-denominated; no unit conversion.
	if r.Amount != 150 {
		t.Errorf("Amount = %v, want 150", r.Amount)
	}
	if r.DealType != "DIRECT" {
		t.Errorf("DealType = %q, want DIRECT", r.DealType)
	}
	if r.Yield != "7.95" {
		t.Errorf("Yield = %q, want 7.95", r.Yield)
	}
}

func TestExtractMaster(t *testing.T) {
	csv := "ISIN,Issuer Name,Credit Rating\n" +
		"INE001A01001,Alpha Finance Ltd,AA+\n" +
		"INE001A01001,Alpha Finance Limited,AAA\n" +
		"INE002B02002,Beta Infra Ltd,N/A\n"

	headers, rows := mustParseCSV(t, csv)
	master := make(map[string]model.SecurityRecord)
	ingest.ExtractMaster(headers, rows, master)

	if len(master) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(master))
	}

	// Repeated identifier: last row wins.
	alpha := master["INE001A01001"]
	if alpha.Issuer != "Alpha Finance Limited" || alpha.Rating != "AAA" {
		t.Errorf("Expected last-write-wins entry, got %+v", alpha)
	}

	// Not-applicable rating markers normalize to empty.
	if beta := master["INE002B02002"]; beta.Rating != "" {
		t.Errorf("Expected empty rating for N/A, got %q", beta.Rating)
	}
}
