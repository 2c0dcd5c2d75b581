package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/apperrors"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/ingest"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/model"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/repository"
)

// IngestService orchestrates trade-file ingestion: concurrent parsing,
// extraction, the master join and persistence of the resulting records.
type IngestService struct {
	tradeRepo    *repository.TradeRepository
	securityRepo *repository.SecurityRepository
}

// NewIngestService creates a new IngestService with the provided repository dependencies.
func NewIngestService(
	tradeRepo *repository.TradeRepository,
	securityRepo *repository.SecurityRepository,
) *IngestService {
	return &IngestService{
		tradeRepo:    tradeRepo,
		securityRepo: securityRepo,
	}
}

// ProcessUpload builds a preview from the uploaded files and persists the
// outcome. Master entries already stored from earlier runs participate in
// the join; master files in this upload take precedence for identifiers
// they cover. When replace is set, previously stored trade records are
// discarded first.
//
// Per-file parse failures do not fail the upload; they are reported in
// the result after all parses settle. The upload fails only when no file
// at all could be used.
func (s *IngestService) ProcessUpload(ctx context.Context, files []ingest.FileInput, replace bool) (*model.PreviewResult, error) {
	if len(files) == 0 {
		return nil, apperrors.ErrNoFiles
	}

	stored, err := s.securityRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load securities master: %w", err)
	}

	result, err := ingest.Build(ctx, files)
	if err != nil {
		return nil, fmt.Errorf("failed to build preview: %w", err)
	}

	if len(result.FileErrors) == len(files) {
		return nil, fmt.Errorf("%w: %d file(s) rejected", apperrors.ErrAllFilesFailed, len(files))
	}

	// Stored master entries fill identifiers this upload's files did not
	// cover; re-joining is safe because the join is idempotent.
	merged := make(map[string]model.SecurityRecord, len(stored)+len(result.Securities))
	for id, sec := range stored {
		merged[id] = sec
	}
	for id, sec := range result.Securities {
		merged[id] = sec
	}
	ingest.JoinMaster(result.Records, merged)
	result.MaxRatingColumns = ingest.MaxRatingColumns(result.Records)

	if err := s.securityRepo.UpsertSecurities(ctx, result.Securities); err != nil {
		return nil, fmt.Errorf("failed to store securities: %w", err)
	}

	if replace {
		if err := s.tradeRepo.DeleteAll(ctx); err != nil {
			return nil, err
		}
	}
	if _, err := s.tradeRepo.InsertTradeRecords(ctx, result.Records); err != nil {
		return nil, fmt.Errorf("failed to store trade records: %w", err)
	}

	return &model.PreviewResult{
		Records:          result.Records,
		MaxRatingColumns: result.MaxRatingColumns,
		FileErrors:       result.FileErrors,
	}, nil
}

// ScanInbox ingests every supported file in dir and moves processed files
// into a processed/ subdirectory. Called from the scheduler; a run with an
// empty inbox is a no-op.
func (s *IngestService) ScanInbox(ctx context.Context, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read inbox %s: %w", dir, err)
	}

	var files []ingest.FileInput
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".csv", ".xlsx", ".xls":
		default:
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			log.Printf("inbox: failed to read %s: %v", entry.Name(), err)
			continue
		}
		files = append(files, ingest.FileInput{Name: entry.Name(), Data: data})
		names = append(names, entry.Name())
	}
	if len(files) == 0 {
		return nil
	}

	result, err := s.ProcessUpload(ctx, files, false)
	if err != nil {
		return err
	}
	for _, fe := range result.FileErrors {
		log.Printf("inbox: %s: %s", fe.File, fe.Error)
	}
	log.Printf("inbox: ingested %d record(s) from %d file(s)", len(result.Records), len(files))

	processedDir := filepath.Join(dir, "processed")
	if err := os.MkdirAll(processedDir, 0o755); err != nil {
		return fmt.Errorf("failed to create processed dir: %w", err)
	}
	for _, name := range names {
		if err := os.Rename(filepath.Join(dir, name), filepath.Join(processedDir, name)); err != nil {
			log.Printf("inbox: failed to move %s: %v", name, err)
		}
	}
	return nil
}
