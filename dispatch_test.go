//go:build unit

package rolekit

import (
	"context"
	"errors"
	"testing"

	"github.com/agentmartinv1/rolekit/internal/adapters/driven/documents"
	"github.com/agentmartinv1/rolekit/internal/adapters/driven/identity"
	"github.com/agentmartinv1/rolekit/internal/core/domain"
)

func newDispatcherFixture(t *testing.T) (*RoleStore, *Dispatcher) {
	t.Helper()
	provider := identity.NewLocalProvider(nil)
	roles := NewRoleStore(documents.NewInMemoryStore(), nil)
	resolver := NewResolver(roles, nil, nil)
	gateway := NewGateway(provider, roles, nil, nil)
	return roles, NewDispatcher(gateway, resolver, nil)
}

// Signup creates the default viewer record and lands on the viewer view.
func TestDispatcher_SignupLandsOnViewer(t *testing.T) {
	roles, dispatcher := newDispatcherFixture(t)

	id, dest, err := dispatcher.Signup(context.Background(), "u1@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	if dest != domain.RouteViewer {
		t.Errorf("Signup() destination = %q, want %q", dest, domain.RouteViewer)
	}

	record, err := roles.Get(context.Background(), id.SubjectID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if record.Role != domain.RoleViewer {
		t.Errorf("record role = %q, want %q", record.Role, domain.RoleViewer)
	}

	// Logging back in dispatches to the viewer view too.
	_, dest, err = dispatcher.Login(context.Background(), "u1@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if dest != domain.RouteViewer {
		t.Errorf("Login() destination = %q, want %q", dest, domain.RouteViewer)
	}
}

func TestDispatcher_LoginDispatchesByRole(t *testing.T) {
	tests := []struct {
		role domain.Role
		want domain.Route
	}{
		{domain.RoleAdmin, domain.RouteAdmin},
		{domain.RoleEditor, domain.RouteEditor},
		{domain.RoleViewer, domain.RouteViewer},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			roles, dispatcher := newDispatcherFixture(t)

			id, _, err := dispatcher.Signup(context.Background(), "u@example.com", "correct-horse")
			if err != nil {
				t.Fatalf("Signup() error = %v", err)
			}
			if err := roles.SetRole(context.Background(), id.SubjectID, tt.role); err != nil {
				t.Fatalf("SetRole() error = %v", err)
			}

			_, dest, err := dispatcher.Login(context.Background(), "u@example.com", "correct-horse")
			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}
			if dest != tt.want {
				t.Errorf("Login() destination = %q for role %q, want %q", dest, tt.role, tt.want)
			}
		})
	}
}

func TestDispatcher_LoginInvalidCredentials(t *testing.T) {
	_, dispatcher := newDispatcherFixture(t)

	_, dest, err := dispatcher.Login(context.Background(), "nobody@example.com", "whatever")
	if domain.CodeOf(err) != domain.ErrCodeInvalidCredentials {
		t.Fatalf("Login() error = %v, want invalid credentials", err)
	}
	if dest != "" {
		t.Errorf("Login() destination = %q alongside an error, want none", dest)
	}
}

// A store read failure after a successful sign-in must not navigate;
// the caller stays on the login view with the failure surfaced.
func TestDispatcher_LoginStoreFailureDoesNotNavigate(t *testing.T) {
	provider := identity.NewLocalProvider(nil)
	workingRoles := NewRoleStore(documents.NewInMemoryStore(), nil)
	setupGateway := NewGateway(provider, workingRoles, nil, nil)
	if _, err := setupGateway.SignUp(context.Background(), "u@example.com", "correct-horse"); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	brokenRoles := NewRoleStore(&failingDocStore{err: errors.New("backend down")}, nil)
	gateway := NewGateway(provider, brokenRoles, nil, nil)
	dispatcher := NewDispatcher(gateway, NewResolver(brokenRoles, nil, nil), nil)

	_, dest, err := dispatcher.Login(context.Background(), "u@example.com", "correct-horse")
	if err == nil {
		t.Fatal("Login() error = nil, want store read error")
	}
	if domain.CodeOf(err) != domain.ErrCodeStoreRead {
		t.Errorf("CodeOf() = %q, want %q", domain.CodeOf(err), domain.ErrCodeStoreRead)
	}
	if dest != "" {
		t.Errorf("Login() destination = %q alongside an error, want none", dest)
	}
}

// Weak credentials are rejected before any account or record exists.
func TestDispatcher_SignupWeakPassword(t *testing.T) {
	roles, dispatcher := newDispatcherFixture(t)

	_, _, err := dispatcher.Signup(context.Background(), "u@example.com", "short")
	if domain.CodeOf(err) != domain.ErrCodeWeakCredential {
		t.Fatalf("Signup() error = %v, want weak credential", err)
	}

	records, err := roles.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("records = %d after rejected signup, want 0", len(records))
	}
}
