package handlers

import (
	"errors"
	"net/http"

	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/api/request"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/api/response"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/apperrors"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/service"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/validation"
)

// TransactionHandler handles HTTP requests for the normalized trade
// records. It serves as the HTTP layer adapter, parsing filter parameters
// and delegating to the transactionService.
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with the provided service dependency.
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// Transactions handles GET requests for the sorted, filtered, paginated
// record set.
//
// Endpoint: GET /api/transaction
// Query: exchange, identifier, issuer, maturity, yield, status, dealType,
//
//	rating, minAmount, maxAmount, minPrice, maxPrice, startDate,
//	endDate, page, pageSize
//
// Response: 200 OK with TradeRecordPage
// Error: 400 Bad Request if a filter or paging parameter is malformed
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	filter, err := request.ParseFilter(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid filter parameters", err.Error())
		return
	}
	if err := validation.ValidateFilter(filter); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid filter parameters", err.Error())
		return
	}

	page, pageSize, err := request.ParsePagination(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid pagination parameters", err.Error())
		return
	}
	if pageSize == 0 {
		pageSize = service.DefaultPageSize
	}
	if err := validation.ValidatePagination(page, pageSize); err != nil {
		if errors.Is(err, apperrors.ErrInvalidPagination) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidPagination.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusBadRequest, "invalid pagination parameters", err.Error())
		return
	}

	result, err := h.transactionService.List(filter, page, pageSize)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTrades.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}
