package httpnav

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/agentmartinv1/rolekit"
	"github.com/agentmartinv1/rolekit/internal/adapters/driven/identity"
)

// Server wires the engine into an http.Handler tree.
type Server struct {
	gateway    *rolekit.Gateway
	dispatcher *rolekit.Dispatcher
	resolver   *rolekit.Resolver
	roles      *rolekit.RoleStore
	tokens     *identity.TokenCodec
	logger     *zap.Logger
}

// NewServer creates the navigation adapter. A nil logger disables
// logging.
func NewServer(
	gateway *rolekit.Gateway,
	dispatcher *rolekit.Dispatcher,
	resolver *rolekit.Resolver,
	roles *rolekit.RoleStore,
	tokens *identity.TokenCodec,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		gateway:    gateway,
		dispatcher: dispatcher,
		resolver:   resolver,
		roles:      roles,
		tokens:     tokens,
		logger:     logger,
	}
}

// Handler returns the full route table. Every view behind a role is
// wrapped in RequireRole; everything else is public.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/login", s.handleLoginPage)
	mux.HandleFunc("/signup", s.handleSignupPage)
	mux.HandleFunc("/logout", s.handleLogout)
	mux.HandleFunc("/unauthorized", s.handleUnauthorized)

	mux.Handle("/admin", s.RequireRole(rolekit.RoleAdmin, http.HandlerFunc(s.handleAdmin)))
	mux.Handle("/admin/roles", s.RequireRole(rolekit.RoleAdmin, http.HandlerFunc(s.handleSetRole)))
	mux.Handle("/editor", s.RequireRole(rolekit.RoleEditor, http.HandlerFunc(s.handleEditor)))
	mux.Handle("/viewer", s.RequireRole(rolekit.RoleViewer, http.HandlerFunc(s.handleViewer)))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	})

	return mux
}
