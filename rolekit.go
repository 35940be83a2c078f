// Package rolekit decides whether an authenticated principal may enter
// a role-restricted route, and where to redirect it when it may not.
//
// The engine composes an identity provider (credentials plus a
// push-based stream of session-state changes) with a document store
// holding one role record per subject id. Every activation attempt
// snapshots the latest identity, performs one fresh role read, and
// commits to a single verdict; nothing is cached between attempts and
// any store failure denies (fail closed).
package rolekit

import (
	"github.com/agentmartinv1/rolekit/internal/core/domain"
	"github.com/agentmartinv1/rolekit/internal/core/ports"
)

// Re-export domain types so callers only need the root import.
type Role = domain.Role
type Route = domain.Route
type Identity = domain.Identity
type RoleRecord = domain.RoleRecord
type Verdict = domain.Verdict
type VerdictCode = domain.VerdictCode

// Re-export port interfaces.
type IdentityProvider = ports.IdentityProvider
type Subscription = ports.Subscription
type DocumentStore = ports.DocumentStore
type Document = ports.Document
type MetricsRecorder = ports.MetricsRecorder

// Re-export role and route constants.
const (
	RoleNone   = domain.RoleNone
	RoleAdmin  = domain.RoleAdmin
	RoleEditor = domain.RoleEditor
	RoleViewer = domain.RoleViewer

	RouteLogin        = domain.RouteLogin
	RouteUnauthorized = domain.RouteUnauthorized
	RouteAdmin        = domain.RouteAdmin
	RouteEditor       = domain.RouteEditor
	RouteViewer       = domain.RouteViewer
)

// Re-export verdict codes.
const (
	VerdictGranted            = domain.VerdictGranted
	VerdictDeniedNoSession    = domain.VerdictDeniedNoSession
	VerdictDeniedNoRecord     = domain.VerdictDeniedNoRecord
	VerdictDeniedRoleMismatch = domain.VerdictDeniedRoleMismatch
)

// ParseRole converts a stored role value to a Role.
var ParseRole = domain.ParseRole

// DestinationFor maps a role to its post-login destination.
var DestinationFor = domain.DestinationFor
