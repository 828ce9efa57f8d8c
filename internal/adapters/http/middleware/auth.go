package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/http/dto"
	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/platform/logging"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

const headerAuthorization = "Authorization"

type userIDKey struct{}

// WithUserID returns a new context carrying the authenticated user id.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromContext returns the authenticated user id, or false when the
// request did not pass through Authenticate.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok && id > 0
}

// Authenticate returns middleware that requires an "Authorization: Bearer"
// token verified by tokens. The user id is stored in the request context and
// added to the request logger. Failures produce a 401 problem response.
func Authenticate(tokens ports.TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r.Header.Get(headerAuthorization))
			if !ok {
				w.Header().Set("WWW-Authenticate", `Bearer realm="moneygoal"`)
				dto.WriteErrorResponse(w, r, fmt.Errorf("missing bearer token: %w", domain.ErrUnauthorized))
				return
			}

			userID, err := tokens.Verify(raw)
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer realm="moneygoal", error="invalid_token"`)
				dto.WriteErrorResponse(w, r, err)
				return
			}

			ctx := WithUserID(r.Context(), userID)
			ctx = logging.With(ctx, slog.Int64("user_id", userID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
