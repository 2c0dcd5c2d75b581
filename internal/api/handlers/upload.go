package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/api/response"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/apperrors"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/ingest"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/service"
)

// UploadHandler handles HTTP requests for trade-file uploads.
type UploadHandler struct {
	ingestService  *service.IngestService
	maxUploadBytes int64
}

// NewUploadHandler creates a new UploadHandler with the provided service dependency.
func NewUploadHandler(ingestService *service.IngestService, maxUploadBytes int64) *UploadHandler {
	return &UploadHandler{
		ingestService:  ingestService,
		maxUploadBytes: maxUploadBytes,
	}
}

// Upload handles POST requests carrying one or more trade files as
// multipart form data under the "files" field. All files are parsed
// concurrently; a file that fails to parse is reported in the result
// without failing the others. Pass replace=true to discard previously
// stored records first.
//
// Endpoint: POST /api/upload
// Response: 200 OK with PreviewResult
// Error: 400 Bad Request if no file was provided or none could be parsed
// Error: 413 Request Entity Too Large if the payload exceeds the limit
// Error: 500 Internal Server Error if persistence fails
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		status := http.StatusBadRequest
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			status = http.StatusRequestEntityTooLarge
		}
		response.RespondError(w, status, "failed to parse multipart form", err.Error())
		return
	}

	var files []ingest.FileInput
	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["files"] {
			f, err := header.Open()
			if err != nil {
				response.RespondError(w, http.StatusBadRequest, "failed to open uploaded file", err.Error())
				return
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				response.RespondError(w, http.StatusBadRequest, "failed to read uploaded file", err.Error())
				return
			}
			files = append(files, ingest.FileInput{Name: header.Filename, Data: data})
		}
	}

	replace := r.URL.Query().Get("replace") == "true"

	result, err := h.ingestService.ProcessUpload(r.Context(), files, replace)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNoFiles):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrNoFiles.Error(), "use the 'files' multipart field")
		case errors.Is(err, apperrors.ErrAllFilesFailed):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrAllFilesFailed.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildPreview.Error(), err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}
