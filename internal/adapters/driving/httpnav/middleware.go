package httpnav

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/agentmartinv1/rolekit"
	"github.com/agentmartinv1/rolekit/internal/core/domain"
)

// RequireRole wraps a protected route. Each request is one activation
// attempt: the identity is taken from the identity cookie (absent or
// unverifiable means no session), the resolver performs one fresh role
// read, and the verdict either lets the request through or redirects
// it. A store failure answers 502 and never renders the protected
// view (fail closed).
func (s *Server) RequireRole(expected domain.Role, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		verdict, err := s.resolver.Resolve(r.Context(), s.identityFromRequest(r), expected)
		if err != nil {
			s.logger.Error("route authorization failed",
				zap.String("path", r.URL.Path),
				zap.String("expected_role", expected.String()),
				zap.Error(err))
			http.Error(w, "authorization unavailable", http.StatusBadGateway)
			return
		}

		if !verdict.Allowed() {
			http.Redirect(w, r, RouteURL(verdict.Redirect), http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// identityFromRequest recovers the principal from the identity cookie.
// Anything short of a verified token is treated as signed out.
func (s *Server) identityFromRequest(r *http.Request) *domain.Identity {
	cookie, err := r.Cookie(IdentityCookie)
	if err != nil {
		return nil
	}
	id, err := s.tokens.Verify(cookie.Value)
	if err != nil {
		return nil
	}
	return id
}

// setIdentityCookie mints an identity token for the principal and
// attaches it to the response.
func (s *Server) setIdentityCookie(w http.ResponseWriter, id *rolekit.Identity) error {
	token, err := s.tokens.Mint(id)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     IdentityCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func clearIdentityCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     IdentityCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
