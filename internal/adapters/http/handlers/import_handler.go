package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/http/dto"
	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// maxUploadBytes caps a CSV upload (10 MB).
const maxUploadBytes = 10 << 20

// ImportHandler handles CSV uploads.
type ImportHandler struct {
	svc ports.ImportService
}

// NewImportHandler creates a new ImportHandler with the given service port.
func NewImportHandler(svc ports.ImportService) *ImportHandler {
	return &ImportHandler{svc: svc}
}

// Preview handles POST /api/v1/import/csv/preview. Nothing is stored.
func (h *ImportHandler) Preview(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	file, opts, err := parseUpload(w, r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	defer file.Close()

	preview, err := h.svc.Preview(r.Context(), userID, file, opts)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToImportPreviewResponse(preview))
}

// Import handles POST /api/v1/import/csv.
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	file, opts, err := parseUpload(w, r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	defer file.Close()

	res, err := h.svc.Import(r.Context(), userID, file, opts)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToImportResultResponse(res))
}

// parseUpload reads the "file" part and the optional currency, goal_id and
// preview_rows form fields.
func parseUpload(w http.ResponseWriter, r *http.Request) (multipart.File, ports.ImportOptions, error) {
	var opts ports.ImportOptions

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, opts, domain.NewValidationError("file", "must not exceed 10 MB")
		}
		return nil, opts, domain.NewValidationError("body", "must be multipart/form-data")
	}

	fields := make(map[string]string)
	opts.Currency = r.FormValue("currency")
	if raw := r.FormValue("goal_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			fields["goal_id"] = "must be a positive integer"
		} else {
			opts.GoalID = &id
		}
	}
	if raw := r.FormValue("preview_rows"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			fields["preview_rows"] = "must be a non-negative integer"
		} else {
			opts.PreviewRows = n
		}
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		fields["file"] = "is required"
	}
	if verr := domain.FieldsError(fields); verr != nil {
		if file != nil {
			_ = file.Close()
		}
		return nil, opts, verr
	}
	return file, opts, nil
}
