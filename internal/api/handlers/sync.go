package handlers

import (
	"errors"
	"net/http"

	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/api/request"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/api/response"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/apperrors"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/service"
)

// SyncHandler handles HTTP requests for the upstream-sync configuration
// and manual sync runs.
type SyncHandler struct {
	syncService *service.SyncService
}

// NewSyncHandler creates a new SyncHandler with the provided service dependency.
func NewSyncHandler(syncService *service.SyncService) *SyncHandler {
	return &SyncHandler{
		syncService: syncService,
	}
}

// Configure handles POST requests to store the upstream base URL and API
// token. The token is encrypted at rest and never echoed back.
//
// Endpoint: POST /api/sync/config
// Request Body: ConfigureSyncRequest
// Response: 200 OK with the redacted SyncConfig
// Error: 400 Bad Request if the body is invalid or the token is missing
// Error: 500 Internal Server Error if storing fails
func (h *SyncHandler) Configure(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.ConfigureSyncRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.syncService.Configure(r.Context(), req.BaseURL, req.Token, req.AutoSyncEnabled); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrMissingToken):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrMissingToken.Error(), "")
		case errors.Is(err, apperrors.ErrTokenKeyNotSet):
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrTokenKeyNotSet.Error(), "")
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to save sync configuration", err.Error())
		}
		return
	}

	cfg, err := h.syncService.Config()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to read sync configuration", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, cfg)
}

// Config handles GET requests for the redacted sync configuration.
//
// Endpoint: GET /api/sync/config
// Response: 200 OK with SyncConfig
func (h *SyncHandler) Config(w http.ResponseWriter, _ *http.Request) {
	cfg, err := h.syncService.Config()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to read sync configuration", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, cfg)
}

// Run handles POST requests to perform one upstream pull now.
//
// Endpoint: POST /api/sync/run
// Response: 200 OK with SyncResult
// Error: 409 Conflict if the sync is not configured
// Error: 502 Bad Gateway if the upstream fetch fails
func (h *SyncHandler) Run(w http.ResponseWriter, r *http.Request) {
	result, err := h.syncService.Run(r.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrSyncNotConfigured) {
			response.RespondError(w, http.StatusConflict, apperrors.ErrSyncNotConfigured.Error(), "")
			return
		}
		response.RespondError(w, http.StatusBadGateway, "sync failed", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}
