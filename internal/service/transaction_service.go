package service

import (
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/ingest"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/model"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/preview"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/repository"
)

// DefaultPageSize bounds transaction pages when the caller does not ask
// for a size.
const DefaultPageSize = 50

// MaxPageSize caps what a caller may request.
const MaxPageSize = 500

// TransactionService serves the sorted, filtered, paginated view over the
// stored trade records. Filtering and sorting are pure in-memory passes;
// the dataset is bounded by what users upload, and keeping the engine in
// one place means the REST surface and the preview builder cannot drift.
type TransactionService struct {
	tradeRepo *repository.TradeRepository
}

// NewTransactionService creates a new TransactionService with the provided repository dependency.
func NewTransactionService(tradeRepo *repository.TradeRepository) *TransactionService {
	return &TransactionService{tradeRepo: tradeRepo}
}

// List returns one page of records matching the filter, sorted by trade
// date descending with exchange and identifier tie-breaks.
func (s *TransactionService) List(filter model.FilterState, page, pageSize int) (model.TradeRecordPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	records, err := s.tradeRepo.ListTradeRecords()
	if err != nil {
		return model.TradeRecordPage{}, err
	}

	filtered := preview.Filter(records, filter)
	preview.SortRecords(filtered)

	total := len(filtered)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return model.TradeRecordPage{
		Records:          filtered[start:end],
		Total:            total,
		Page:             page,
		PageSize:         pageSize,
		MaxRatingColumns: ingest.MaxRatingColumns(filtered),
	}, nil
}

// Filtered returns the full filtered, sorted record set without paging.
// The aggregation service builds its hierarchy from this.
func (s *TransactionService) Filtered(filter model.FilterState) ([]model.TradeRecord, error) {
	records, err := s.tradeRepo.ListTradeRecords()
	if err != nil {
		return nil, err
	}
	filtered := preview.Filter(records, filter)
	preview.SortRecords(filtered)
	return filtered, nil
}
