package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/moneygoal/internal/platform/httpclient"
)

// Requester centralizes the HTTP request lifecycle for ACL clients:
// request creation, body encoding (JSON or form), per-call credentials,
// execution via httpclient.Client, response body cleanup on error, status
// code validation, error translation, and JSON decoding.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Requester{client: client, logger: logger}
}

// RequestOption customizes a single outbound request.
type RequestOption func(*requestOptions)

type requestOptions struct {
	header   http.Header
	form     url.Values
	user     string
	password string
	basic    bool
}

// WithBearer sets an Authorization: Bearer header.
func WithBearer(token string) RequestOption {
	return func(o *requestOptions) {
		o.header.Set("Authorization", "Bearer "+token)
	}
}

// WithBasicAuth sets HTTP basic credentials.
func WithBasicAuth(user, password string) RequestOption {
	return func(o *requestOptions) {
		o.user, o.password, o.basic = user, password, true
	}
}

// WithHeader sets an arbitrary request header.
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		o.header.Set(key, value)
	}
}

// WithForm sends values as an application/x-www-form-urlencoded body
// instead of JSON.
func WithForm(values url.Values) RequestOption {
	return func(o *requestOptions) {
		o.form = values
	}
}

// Do executes an HTTP request against the configured base URL.
//
// It encodes reqBody as JSON (if non-nil, and no form was given), sends the
// request, validates the status code matches wantStatus, and decodes the
// response body into respBody (if non-nil). For calls where no response body
// is expected, pass nil for respBody.
//
// On non-matching status codes, the response is passed to TranslateHTTPError.
func (r *Requester) Do(ctx context.Context, method, path string, wantStatus int, reqBody, respBody any, opts ...RequestOption) error {
	o := requestOptions{header: make(http.Header)}
	for _, opt := range opts {
		opt(&o)
	}

	switch method {
	case http.MethodGet, http.MethodDelete:
		if reqBody != nil || o.form != nil {
			return fmt.Errorf("%s %s: request body not supported", method, path)
		}
	case http.MethodPost, http.MethodPut, http.MethodPatch:
	default:
		return fmt.Errorf("unsupported HTTP method: %s", method)
	}

	req, err := r.newRequest(ctx, method, path, reqBody, &o)
	if err != nil {
		return err
	}
	return r.execute(req, wantStatus, respBody)
}

// BaseURL returns the base URL from the underlying HTTP client.
func (r *Requester) BaseURL() string {
	return r.client.BaseURL()
}

// CircuitBreakerState returns the circuit breaker state from the underlying
// HTTP client.
func (r *Requester) CircuitBreakerState() string {
	return r.client.CircuitBreakerState()
}

func (r *Requester) newRequest(ctx context.Context, method, path string, reqBody any, o *requestOptions) (*http.Request, error) {
	target := r.client.BaseURL() + path

	var (
		body        io.Reader = http.NoBody
		contentType string
	)
	switch {
	case o.form != nil:
		body = strings.NewReader(o.form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case reqBody != nil:
		raw, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("marshaling %s body for %s: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	for key, values := range o.header {
		req.Header[key] = values
	}
	if o.basic {
		req.SetBasicAuth(o.user, o.password)
	}
	return req, nil
}

// closeBody is a helper that closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request, checks the status code, and optionally decodes
// the response body. It ensures resp.Body is always closed.
func (r *Requester) execute(req *http.Request, wantStatus int, respBody any) error {
	resp, err := r.client.Do(req.Context(), req)
	if err != nil {
		// httpclient.Do can return both resp and err when retries are exhausted
		// on a retryable status (e.g. 5xx). In that case, translate the HTTP
		// response into a domain error rather than returning the raw retry error.
		if resp != nil {
			defer r.closeBody(req.Context(), resp)
			if resp.StatusCode != wantStatus {
				return TranslateHTTPError(resp)
			}
		}
		r.logger.ErrorContext(req.Context(), "request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer r.closeBody(req.Context(), resp)

	if resp.StatusCode != wantStatus {
		translateErr := TranslateHTTPError(resp)
		r.logger.ErrorContext(req.Context(), "unexpected status",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", wantStatus),
		)
		return translateErr
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
		}
	}

	return nil
}
