// Package acl implements the Anti-Corruption Layer between MoneyGoal and the
// external APIs it calls: Wise, Plaid, the exchange-rate API, the WhatsApp
// Cloud API and Twilio. Provider-specific wire types and translators live in
// subpackages (acl/wise, acl/plaid, acl/exchange, acl/whatsapp); the clients,
// the shared request lifecycle and error mapping live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// errorBody is the union of the error shapes returned by the providers:
// RFC 9457 problem details, Plaid (error_message), Meta Graph (error.message),
// Twilio (message) and Wise (errors[].message).
type errorBody struct {
	Detail       string        `json:"detail"`
	Message      string        `json:"message"`
	ErrorMessage string        `json:"error_message"`
	Error        *graphError   `json:"error"`
	Errors       []errorDetail `json:"errors"`
}

type graphError struct {
	Message string `json:"message"`
}

// errorDetail is a single field-level error. Location is set by problem
// details responses, Path by Wise.
type errorDetail struct {
	Location string `json:"location"`
	Path     string `json:"path"`
	Message  string `json:"message"`
}

func (b errorBody) detail() string {
	switch {
	case b.Detail != "":
		return b.Detail
	case b.ErrorMessage != "":
		return b.ErrorMessage
	case b.Error != nil && b.Error.Message != "":
		return b.Error.Message
	case b.Message != "":
		return b.Message
	case len(b.Errors) > 0:
		return b.Errors[0].Message
	default:
		return ""
	}
}

// TranslateHTTPError maps an HTTP error response to a domain error.
// JSON bodies are parsed for a human-readable detail. For 400/422 responses
// with located field errors, it returns a *domain.ValidationError.
func TranslateHTTPError(resp *http.Response) error {
	body := parseErrorBody(resp)

	detail := body.detail()
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		if verr := toValidationError(body.Errors); verr != nil {
			return verr
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)

	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnauthorized)

	case resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)

	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

// parseErrorBody reads and parses a JSON error body from the response.
// Returns an empty errorBody if the body is absent or not JSON.
func parseErrorBody(resp *http.Response) errorBody {
	if resp.Body == nil {
		return errorBody{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/problem+json") && !strings.HasPrefix(ct, "application/json") {
		return errorBody{}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return errorBody{}
	}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return errorBody{}
	}
	return body
}

// toValidationError converts located error details to a domain
// ValidationError, stripping the "body." prefix from locations. Returns nil
// when no detail carries a location.
func toValidationError(details []errorDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		location := d.Location
		if location == "" {
			location = d.Path
		}
		if location == "" {
			continue
		}
		fields[strings.TrimPrefix(location, "body.")] = d.Message
	}
	if len(fields) == 0 {
		return nil
	}
	return &domain.ValidationError{Fields: fields}
}
