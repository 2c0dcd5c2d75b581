package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/apperrors"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/ingest"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/model"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/testutil"
)

var (
	nseCSV = []byte("ISIN,Security Description,Trade Date,Deal Size (in Rs),Buyer Deal Type,Seller Deal Type,Yield (%)\n" +
		"INE001A01001,Raw Description,15/03/2024,500000,Direct,Direct,7.85\n")
	masterCSV = []byte("ISIN,Issuer Name,Credit Rating\n" +
		"INE001A01001,Test Corp,AA\n")
)

// TestIngestService_ProcessUpload tests the upload orchestration.
//
// WHY: ProcessUpload is the write path of the whole system. This ensures
// parsing, the master join, persistence and the replace semantics hold
// together, not just the pure pieces in isolation.
func TestIngestService_ProcessUpload(t *testing.T) {
	t.Run("ingests and persists joined records", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestIngestService(t, db)

		result, err := svc.ProcessUpload(context.Background(), []ingest.FileInput{
			{Name: "nse_trades.csv", Data: nseCSV},
			{Name: "master.csv", Data: masterCSV},
		}, false)
		if err != nil {
			t.Fatalf("ProcessUpload() returned unexpected error: %v", err)
		}

		if len(result.Records) != 1 {
			t.Fatalf("Expected 1 record, got %d", len(result.Records))
		}
		r := result.Records[0]
		if r.IssuerDetails != "Test Corp" || r.Rating != "AA" {
			t.Errorf("Master join missing: %+v", r)
		}

		// Records must be readable back through the transaction service.
		ts := testutil.NewTestTransactionService(t, db)
		page, err := ts.List(model.FilterState{}, 1, 50)
		if err != nil {
			t.Fatalf("List() returned unexpected error: %v", err)
		}
		if page.Total != 1 {
			t.Errorf("Expected 1 stored record, got %d", page.Total)
		}
	})

	t.Run("stored master joins later uploads", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestIngestService(t, db)

		if _, err := svc.ProcessUpload(context.Background(), []ingest.FileInput{
			{Name: "master.csv", Data: masterCSV},
		}, false); err != nil {
			t.Fatalf("Master-only upload failed: %v", err)
		}

		result, err := svc.ProcessUpload(context.Background(), []ingest.FileInput{
			{Name: "nse_trades.csv", Data: nseCSV},
		}, false)
		if err != nil {
			t.Fatalf("ProcessUpload() returned unexpected error: %v", err)
		}
		if result.Records[0].IssuerDetails != "Test Corp" {
			t.Errorf("Stored master should join later uploads, got %+v", result.Records[0])
		}
	})

	t.Run("replace discards previously stored records", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestIngestService(t, db)

		for i := 0; i < 2; i++ {
			if _, err := svc.ProcessUpload(context.Background(), []ingest.FileInput{
				{Name: "nse_trades.csv", Data: nseCSV},
			}, false); err != nil {
				t.Fatalf("Upload %d failed: %v", i, err)
			}
		}

		if _, err := svc.ProcessUpload(context.Background(), []ingest.FileInput{
			{Name: "nse_trades.csv", Data: nseCSV},
		}, true); err != nil {
			t.Fatalf("Replace upload failed: %v", err)
		}

		ts := testutil.NewTestTransactionService(t, db)
		page, err := ts.List(model.FilterState{}, 1, 50)
		if err != nil {
			t.Fatalf("List() returned unexpected error: %v", err)
		}
		if page.Total != 1 {
			t.Errorf("Expected 1 record after replace, got %d", page.Total)
		}
	})

	t.Run("rejects empty upload", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestIngestService(t, db)

		_, err := svc.ProcessUpload(context.Background(), nil, false)
		if !errors.Is(err, apperrors.ErrNoFiles) {
			t.Errorf("Expected ErrNoFiles, got %v", err)
		}
	})

	t.Run("fails when every file is rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestIngestService(t, db)

		_, err := svc.ProcessUpload(context.Background(), []ingest.FileInput{
			{Name: "report.pdf", Data: []byte("%PDF-1.4")},
		}, false)
		if !errors.Is(err, apperrors.ErrAllFilesFailed) {
			t.Errorf("Expected ErrAllFilesFailed, got %v", err)
		}
	})

	t.Run("partial failure reports file errors without failing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestIngestService(t, db)

		result, err := svc.ProcessUpload(context.Background(), []ingest.FileInput{
			{Name: "nse_trades.csv", Data: nseCSV},
			{Name: "report.pdf", Data: []byte("%PDF-1.4")},
		}, false)
		if err != nil {
			t.Fatalf("ProcessUpload() returned unexpected error: %v", err)
		}
		if len(result.Records) != 1 || len(result.FileErrors) != 1 {
			t.Errorf("Expected 1 record and 1 file error, got %d/%d", len(result.Records), len(result.FileErrors))
		}
	})
}
