package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
)

const redacted = "[REDACTED]"

// sensitiveHeaders are always masked. Webhook signatures are included
// because a captured one can be replayed with the same body.
var sensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"cookie":              true,
	"set-cookie":          true,
	"x-hub-signature-256": true,
	"x-twilio-signature":  true,
}

// sensitiveFragments mask any header whose name contains one of them.
var sensitiveFragments = []string{"token", "secret", "signature"}

func isSensitiveHeader(name string) bool {
	name = strings.ToLower(name)
	if sensitiveHeaders[name] {
		return true
	}
	return slices.ContainsFunc(sensitiveFragments, func(f string) bool {
		return strings.Contains(name, f)
	})
}

// RedactHeaders returns headers as log attributes sorted by name, with
// credential and signature values masked. Multi-value headers are joined
// with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	slices.Sort(names)

	attrs := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		value := redacted
		if !isSensitiveHeader(name) {
			value = strings.Join(headers[name], ",")
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
