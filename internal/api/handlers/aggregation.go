package handlers

import (
	"net/http"

	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/api/request"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/api/response"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/apperrors"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/service"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/validation"
)

// AggregationHandler handles HTTP requests for the rating × amount-bucket
// summary view.
type AggregationHandler struct {
	aggregationService *service.AggregationService
}

// NewAggregationHandler creates a new AggregationHandler with the provided service dependency.
func NewAggregationHandler(aggregationService *service.AggregationService) *AggregationHandler {
	return &AggregationHandler{
		aggregationService: aggregationService,
	}
}

// Summary handles GET requests for the aggregation hierarchy over the
// currently filtered record set. The optional "search" parameter narrows
// the aggregated view; a short query of grade letters narrows by rating
// group.
//
// Endpoint: GET /api/transaction/summary
// Response: 200 OK with array of RatingGroup
// Error: 400 Bad Request if a filter parameter is malformed
// Error: 500 Internal Server Error if aggregation fails
func (h *AggregationHandler) Summary(w http.ResponseWriter, r *http.Request) {
	filter, err := request.ParseFilter(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid filter parameters", err.Error())
		return
	}
	if err := validation.ValidateFilter(filter); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid filter parameters", err.Error())
		return
	}

	groups, err := h.aggregationService.Summary(filter, r.URL.Query().Get("search"))
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTrades.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, groups)
}
