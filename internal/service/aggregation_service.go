package service

import (
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/model"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/preview"
)

// AggregationService produces the rating × amount-bucket summary over the
// currently filtered record set.
type AggregationService struct {
	transactionService *TransactionService
}

// NewAggregationService creates a new AggregationService.
func NewAggregationService(transactionService *TransactionService) *AggregationService {
	return &AggregationService{transactionService: transactionService}
}

// Summary aggregates the records matching filter, then narrows the
// aggregated view by the free-text search query when one is given.
func (s *AggregationService) Summary(filter model.FilterState, search string) ([]model.RatingGroup, error) {
	records, err := s.transactionService.Filtered(filter)
	if err != nil {
		return nil, err
	}

	groups := preview.Aggregate(records)
	if search != "" {
		groups = preview.SearchAggregation(groups, search)
	}
	if groups == nil {
		groups = []model.RatingGroup{}
	}
	return groups, nil
}
