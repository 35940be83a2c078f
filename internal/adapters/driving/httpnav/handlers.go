package httpnav

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/agentmartinv1/rolekit"
	"github.com/agentmartinv1/rolekit/internal/core/domain"
)

// handleLoginPage serves the login form and runs the post-login
// dispatch on submit. An authentication error keeps the caller on the
// login view with the error surfaced; a store failure does the same
// rather than navigating silently.
func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		renderCredentialForm(w, "Login", "/login", r.URL.Query().Get("error"))
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	id, dest, err := s.dispatcher.Login(r.Context(), email, password)
	if err != nil {
		s.redirectWithError(w, r, "/login", err)
		return
	}
	if err := s.setIdentityCookie(w, id); err != nil {
		http.Error(w, "session setup failed", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, RouteURL(dest), http.StatusSeeOther)
}

// handleSignupPage serves the signup form and creates the account on
// submit, landing on the viewer view per the default role.
func (s *Server) handleSignupPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		renderCredentialForm(w, "Sign up", "/signup", r.URL.Query().Get("error"))
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	id, dest, err := s.dispatcher.Signup(r.Context(), email, password)
	if err != nil {
		s.redirectWithError(w, r, "/signup", err)
		return
	}
	if err := s.setIdentityCookie(w, id); err != nil {
		http.Error(w, "session setup failed", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, RouteURL(dest), http.StatusSeeOther)
}

// handleLogout ends the session and lands on the login view.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.gateway.SignOut(r.Context()); err != nil {
		s.logger.Warn("sign-out failed", zap.Error(err))
	}
	clearIdentityCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Server) handleUnauthorized(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusForbidden)
	renderPage(w, "Unauthorized", "You do not have access to that page.")
}

func (s *Server) handleAdmin(w http.ResponseWriter, r *http.Request) {
	records, err := s.roles.List(r.Context())
	if err != nil {
		http.Error(w, "role listing unavailable", http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(records); err != nil {
		s.logger.Warn("admin listing encode failed", zap.Error(err))
	}
}

// handleSetRole changes one subject's role. Administration path; the
// guard has already required the admin role.
func (s *Server) handleSetRole(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	subjectID := r.PostFormValue("uid")
	role := domain.ParseRole(r.PostFormValue("role"))
	if subjectID == "" || !role.Valid() {
		http.Error(w, "uid and a known role are required", http.StatusBadRequest)
		return
	}

	if err := s.roles.SetRole(r.Context(), subjectID, role); err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, rolekit.ErrRecordNotFound) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (s *Server) handleEditor(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "Editor", "Editor dashboard.")
}

func (s *Server) handleViewer(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "Viewer", "Viewer dashboard.")
}

// redirectWithError keeps the caller on the given view with the error
// code surfaced in the query string. Infrastructure failures answer
// 502 instead of pretending to be credential problems.
func (s *Server) redirectWithError(w http.ResponseWriter, r *http.Request, path string, err error) {
	code := domain.CodeOf(err)
	if code == "" || !code.UserCorrectable() {
		s.logger.Error("login flow infrastructure failure", zap.Error(err))
		http.Error(w, "service unavailable", http.StatusBadGateway)
		return
	}
	http.Redirect(w, r, path+"?error="+code.String(), http.StatusSeeOther)
}

// credentialFormTmpl and pageTmpl render through html/template so all
// interpolated values are auto-escaped.
var credentialFormTmpl = template.Must(template.New("credentialForm").Parse(
	`<!doctype html><title>{{.Title}}</title><h1>{{.Title}}</h1>
{{- if .ErrorCode}}<p class="error">{{.ErrorCode}}</p>{{end}}
<form method="post" action="{{.Action}}">
<input name="email" type="email" placeholder="email" required>
<input name="password" type="password" placeholder="password" required>
<button type="submit">{{.Title}}</button>
</form>`))

var pageTmpl = template.Must(template.New("page").Parse(
	`<!doctype html><title>{{.Title}}</title><h1>{{.Title}}</h1><p>{{.Body}}</p><a href="/logout">Logout</a>`))

type credentialFormData struct {
	Title     string
	Action    string
	ErrorCode string
}

// renderCredentialForm serves a login or signup form. errCode comes
// from the request query string, so only codes the flow itself emits
// (the user-correctable set) are displayed; anything else is dropped.
func renderCredentialForm(w http.ResponseWriter, title, action, errCode string) {
	if !domain.ErrorCode(errCode).UserCorrectable() {
		errCode = ""
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = credentialFormTmpl.Execute(w, credentialFormData{Title: title, Action: action, ErrorCode: errCode})
}

func renderPage(w http.ResponseWriter, title, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = pageTmpl.Execute(w, struct{ Title, Body string }{title, body})
}
