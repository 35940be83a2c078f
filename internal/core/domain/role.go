package domain

// Role is an access role recorded for a principal.
// The set is fixed; routes are protected by requiring exactly one of these.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// RoleNone is the zero Role. It never matches an expected role.
const RoleNone Role = ""

// String returns the role as a string.
func (r Role) String() string {
	return string(r)
}

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}

// ParseRole converts a stored role value to a Role.
// Unknown or empty values map to RoleNone, never to a privilege.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin
	case RoleEditor:
		return RoleEditor
	case RoleViewer:
		return RoleViewer
	}
	return RoleNone
}

// Route identifies a navigation destination known to the engine.
// The engine never activates a route itself; it hands the Route to the
// surrounding navigation layer.
type Route string

const (
	RouteLogin        Route = "login"
	RouteUnauthorized Route = "unauthorized"
	RouteAdmin        Route = "admin"
	RouteEditor       Route = "editor"
	RouteViewer       Route = "viewer"
)

// DestinationFor maps a resolved role to its post-login destination.
// Any role outside the fixed table lands on the unauthorized route.
func DestinationFor(r Role) Route {
	switch r {
	case RoleAdmin:
		return RouteAdmin
	case RoleEditor:
		return RouteEditor
	case RoleViewer:
		return RouteViewer
	}
	return RouteUnauthorized
}
