package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/http/dto"
	"github.com/jsamuelsen11/moneygoal/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/bill"
	"github.com/jsamuelsen11/moneygoal/internal/domain/budget"
	"github.com/jsamuelsen11/moneygoal/internal/domain/category"
	"github.com/jsamuelsen11/moneygoal/internal/domain/goal"
	"github.com/jsamuelsen11/moneygoal/internal/domain/recurring"
	"github.com/jsamuelsen11/moneygoal/internal/domain/transaction"
	"github.com/jsamuelsen11/moneygoal/internal/platform/logging"
)

// parseID extracts an int64 path parameter from the chi URL params.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(param, "must be a positive integer")
	}
	return id, nil
}

// currentUser returns the authenticated user id. Without one it writes a 401
// and returns false; routes are expected to sit behind Authenticate.
func currentUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		dto.WriteErrorResponse(w, r, domain.ErrUnauthorized)
		return 0, false
	}
	return id, true
}

// userAndID resolves the authenticated user and the {id} path parameter,
// writing the error response when either is missing.
func userAndID(w http.ResponseWriter, r *http.Request) (userID, id int64, ok bool) {
	userID, ok = currentUser(w, r)
	if !ok {
		return 0, 0, false
	}
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return 0, 0, false
	}
	return userID, id, true
}

// queryDate parses an optional YYYY-MM-DD query parameter.
func queryDate(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil //nolint:nilnil // absent parameter
	}
	t, err := dto.ParseDate(raw)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be a date in YYYY-MM-DD format")
	}
	return &t, nil
}

// queryInt parses an optional non-negative integer query parameter,
// returning def when absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, domain.NewValidationError(name, "must be a non-negative integer")
	}
	return n, nil
}

// queryID parses an optional positive id query parameter.
func queryID(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil //nolint:nilnil // absent parameter
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, domain.NewValidationError(name, "must be a positive integer")
	}
	return &id, nil
}

// mustDate parses a date the request DTO has already validated.
func mustDate(s string) time.Time {
	t, _ := dto.ParseDate(s)
	return t
}

func optionalDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t := mustDate(*s)
	return &t
}

func mapGoalRequest(req *dto.GoalRequest) *goal.Goal {
	g := &goal.Goal{
		Name:         req.Name,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		Currency:     req.Currency,
		Deadline:     optionalDate(req.Deadline),
		Status:       goal.Status(req.Status),
	}
	if req.CurrentAmount != nil {
		g.CurrentAmount = *req.CurrentAmount
	}
	return g
}

func mapTransactionRequest(req *dto.TransactionRequest) *transaction.Transaction {
	return &transaction.Transaction{
		GoalID:      req.GoalID,
		CategoryID:  req.CategoryID,
		Type:        transaction.Type(req.Type),
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
		Date:        mustDate(req.Date),
		Source:      transaction.SourceManual,
	}
}

func mapCategoryRequest(req *dto.CategoryRequest) *category.Category {
	return &category.Category{
		Name:  req.Name,
		Type:  transaction.Type(req.Type),
		Color: req.Color,
		Icon:  req.Icon,
	}
}

func mapBudgetRequest(req *dto.BudgetRequest) *budget.Budget {
	b := &budget.Budget{
		CategoryID: req.CategoryID,
		Amount:     req.Amount,
		Currency:   req.Currency,
		Period:     budget.Period(req.Period),
	}
	if d := optionalDate(req.StartDate); d != nil {
		b.StartDate = *d
	}
	return b
}

func mapBillRequest(req *dto.BillRequest) *bill.Bill {
	b := &bill.Bill{
		Name:       req.Name,
		Amount:     req.Amount,
		Currency:   req.Currency,
		DueDate:    mustDate(req.DueDate),
		Frequency:  domain.Frequency(req.Frequency),
		CategoryID: req.CategoryID,
		Notes:      req.Notes,
	}
	if b.Frequency == "" {
		b.Frequency = domain.FrequencyMonthly
	}
	return b
}

func mapRecurringRequest(req *dto.RecurringRequest) *recurring.Expense {
	e := &recurring.Expense{
		GoalID:     req.GoalID,
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Amount:     req.Amount,
		Currency:   req.Currency,
		Frequency:  domain.Frequency(req.Frequency),
		NextDate:   mustDate(req.NextDate),
		Active:     true,
	}
	if req.Active != nil {
		e.Active = *req.Active
	}
	return e
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err),
		)
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, domain.NewValidationError("body", "invalid JSON"))
		return false
	}
	return true
}

// decodeOptionalJSONBody is decodeJSONBody for endpoints whose body may be
// omitted entirely.
func decodeOptionalJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		dto.WriteErrorResponse(w, r, domain.NewValidationError("body", "invalid JSON"))
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
