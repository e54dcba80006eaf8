package httpapi

import (
	"context"
	"net/http"
	"strings"

	"teamcal/internal/common"
	"teamcal/internal/server/auth"
)

type ctxKeyClaims struct{}

// WithClaims returns a context carrying the verified caller claims.
func WithClaims(ctx context.Context, c *auth.Claims) context.Context {
	return context.WithValue(ctx, ctxKeyClaims{}, c)
}

// ClaimsFromContext extracts the verified caller claims, if any.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(ctxKeyClaims{}).(*auth.Claims)
	return c, ok
}

// authenticate verifies the bearer token and injects the claims into the
// request context. Requests without a valid token are rejected with 401;
// the claims are trusted as-is for the token lifetime, so a role change
// takes effect on the next login.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(common.AuthHeaderName)
		if header == "" {
			writeError(w, common.ErrUnauthenticated)
			return
		}

		token, ok := strings.CutPrefix(header, common.AuthScheme+" ")
		if !ok {
			writeError(w, common.ErrUnauthenticated)
			return
		}

		claims, err := auth.ParseToken(token, s.jwtSecret)
		if err != nil {
			s.logger.Debug(r.Context(), "token rejected", "error", err.Error())
			writeError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}
