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

func TestGateway_SignUpProvisionsViewerRecord(t *testing.T) {
	provider := identity.NewLocalProvider(nil)
	roles := NewRoleStore(documents.NewInMemoryStore(), nil)
	gateway := NewGateway(provider, roles, nil, nil)

	id, err := gateway.SignUp(context.Background(), "u1@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	record, err := roles.Get(context.Background(), id.SubjectID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if record.Role != domain.RoleViewer {
		t.Errorf("default role = %q, want %q", record.Role, domain.RoleViewer)
	}
	if record.Email != "u1@example.com" {
		t.Errorf("record email = %q, want the signup email", record.Email)
	}
}

func TestGateway_SignUpProviderErrorSurfacesVerbatim(t *testing.T) {
	providerErr := domain.AccountExistsError("u1@example.com")
	roles := NewRoleStore(documents.NewInMemoryStore(), nil)
	gateway := NewGateway(&failingProvider{err: providerErr}, roles, nil, nil)

	_, err := gateway.SignUp(context.Background(), "u1@example.com", "correct-horse")
	if !errors.Is(err, providerErr) {
		t.Fatalf("SignUp() error = %v, want the provider error unmodified", err)
	}
}

func TestGateway_SignUpRecordWriteFailureSurfaces(t *testing.T) {
	provider := identity.NewLocalProvider(nil)
	roles := NewRoleStore(&failingDocStore{err: errors.New("backend down")}, nil)
	gateway := NewGateway(provider, roles, nil, nil)

	_, err := gateway.SignUp(context.Background(), "u1@example.com", "correct-horse")
	if err == nil {
		t.Fatal("SignUp() error = nil, want store write error")
	}
	if domain.CodeOf(err) != domain.ErrCodeStoreWrite {
		t.Errorf("CodeOf() = %q, want %q", domain.CodeOf(err), domain.ErrCodeStoreWrite)
	}
}

func TestGateway_SignInWrongPassword(t *testing.T) {
	provider := identity.NewLocalProvider(nil)
	roles := NewRoleStore(documents.NewInMemoryStore(), nil)
	gateway := NewGateway(provider, roles, nil, nil)

	if _, err := gateway.SignUp(context.Background(), "u1@example.com", "correct-horse"); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	_, err := gateway.SignIn(context.Background(), "u1@example.com", "wrong-password")
	if domain.CodeOf(err) != domain.ErrCodeInvalidCredentials {
		t.Fatalf("SignIn() error = %v, want invalid credentials", err)
	}
}

func TestGateway_SignOutEmitsNilIdentity(t *testing.T) {
	provider := identity.NewLocalProvider(nil)
	roles := NewRoleStore(documents.NewInMemoryStore(), nil)
	gateway := NewGateway(provider, roles, nil, nil)

	if _, err := gateway.SignUp(context.Background(), "u1@example.com", "correct-horse"); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	if err := gateway.SignOut(context.Background()); err != nil {
		t.Fatalf("SignOut() error = %v", err)
	}

	sub := provider.IdentityChanges()
	defer sub.Close()
	if id := <-sub.Changes(); id != nil {
		t.Errorf("latest identity = %+v after sign-out, want nil", id)
	}
}
