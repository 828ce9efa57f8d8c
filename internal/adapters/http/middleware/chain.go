package middleware

import "net/http"

// Chain composes middleware so the first argument is the outermost layer:
// Chain(Recovery, RequestID)(h) is Recovery(RequestID(h)). Nil entries are
// skipped, which lets callers pass optional middleware inline.
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			if middlewares[i] == nil {
				continue
			}
			handler = middlewares[i](handler)
		}
		return handler
	}
}
