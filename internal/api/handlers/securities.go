package handlers

import (
	"net/http"

	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/api/response"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/apperrors"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/service"
)

// SecurityHandler handles HTTP requests for the securities master.
type SecurityHandler struct {
	masterService *service.MasterService
}

// NewSecurityHandler creates a new SecurityHandler with the provided service dependency.
func NewSecurityHandler(masterService *service.MasterService) *SecurityHandler {
	return &SecurityHandler{
		masterService: masterService,
	}
}

// Securities handles GET requests to retrieve all securities-master
// entries.
//
// Endpoint: GET /api/security
// Response: 200 OK with array of SecurityRecord
// Error: 500 Internal Server Error if retrieval fails
func (h *SecurityHandler) Securities(w http.ResponseWriter, _ *http.Request) {
	securities, err := h.masterService.ListSecurities()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSecurities.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, securities)
}
