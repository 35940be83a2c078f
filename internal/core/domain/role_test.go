//go:build unit

package domain

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Role
	}{
		{"admin", "admin", RoleAdmin},
		{"editor", "editor", RoleEditor},
		{"viewer", "viewer", RoleViewer},
		{"empty", "", RoleNone},
		{"unknown", "superuser", RoleNone},
		{"case sensitive", "Admin", RoleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseRole(tt.input); got != tt.want {
				t.Errorf("ParseRole(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleEditor, RoleViewer} {
		if !r.Valid() {
			t.Errorf("Valid() = false for %q, want true", r)
		}
	}
	for _, r := range []Role{RoleNone, Role("root"), Role("ADMIN")} {
		if r.Valid() {
			t.Errorf("Valid() = true for %q, want false", r)
		}
	}
}

func TestDestinationFor(t *testing.T) {
	tests := []struct {
		role Role
		want Route
	}{
		{RoleAdmin, RouteAdmin},
		{RoleEditor, RouteEditor},
		{RoleViewer, RouteViewer},
		{RoleNone, RouteUnauthorized},
		{Role("superuser"), RouteUnauthorized},
	}

	for _, tt := range tests {
		if got := DestinationFor(tt.role); got != tt.want {
			t.Errorf("DestinationFor(%q) = %q, want %q", tt.role, got, tt.want)
		}
	}
}
