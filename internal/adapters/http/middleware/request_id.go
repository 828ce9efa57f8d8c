package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/moneygoal/internal/platform/httpclient"
)

const (
	headerRequestID = "X-Request-ID"

	// maxInboundIDLength bounds caller-supplied request and correlation ids.
	maxInboundIDLength = 128
)

// requestIDKey is separate from httpclient's key so neither package reads
// the other's context values.
type requestIDKey struct{}

// WithRequestID stores id for this package and for outbound calls made
// through httpclient.
func WithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey{}, id)
	return httpclient.WithRequestID(ctx, id)
}

// RequestIDFromContext returns the request id, or "" when none is set.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// RequestID assigns every request an X-Request-ID, reusing a well-formed
// inbound header and minting a UUID otherwise. Webhook callers and browsers
// share this path, so inbound values that could corrupt log lines or
// response headers are replaced rather than echoed.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := inboundID(r.Header.Get(headerRequestID))
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(headerRequestID, id)
			next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
		})
	}
}

// inboundID returns s if it is a short token of letters, digits and
// -_.: characters, and "" otherwise.
func inboundID(s string) string {
	if s == "" || len(s) > maxInboundIDLength {
		return ""
	}
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.', c == ':':
		default:
			return ""
		}
	}
	return s
}
