package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/irlquest/server/internal/common"
	"github.com/irlquest/server/internal/server/auth"
	"github.com/irlquest/server/internal/server/identities"
)

type ctxKey string

const identityKey ctxKey = "identity"

// withIdentity resolves the bearer token into a concrete identity or rejects
// the request with 401. Each call re-verifies the token; there is no caching
// of verified identities across requests.
func (s *Server) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			errorJSON(w, http.StatusUnauthorized, "missing token")
			return
		}

		subject, err := auth.GetSubjectFromToken(token, s.jwtSecret)
		if err != nil {
			errorJSON(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		// the identity may have vanished after the token was issued; a
		// storage failure is not an auth failure and must not look like one
		identity, err := s.identities.GetByEmail(r.Context(), subject)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				errorJSON(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			s.logger.Error(r.Context(), err.Error())
			errorJSON(w, http.StatusInternalServerError, "internal error")
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// identityFrom extracts the authenticated identity injected by withIdentity.
func identityFrom(ctx context.Context) (*identities.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*identities.Identity)
	return identity, ok
}
