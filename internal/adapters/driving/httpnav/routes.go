// Package httpnav renders the surrounding navigation layer as plain
// net/http: a role-requiring middleware that redirects on denial, and
// handlers that run the post-login dispatch. The engine core never
// touches HTTP; this adapter owns every redirect.
package httpnav

import (
	"github.com/agentmartinv1/rolekit/internal/core/domain"
)

// IdentityCookie carries the signed identity token between requests.
const IdentityCookie = "rolekit_identity"

// RouteURL maps an engine route to its URL path.
func RouteURL(route domain.Route) string {
	switch route {
	case domain.RouteLogin:
		return "/login"
	case domain.RouteUnauthorized:
		return "/unauthorized"
	case domain.RouteAdmin:
		return "/admin"
	case domain.RouteEditor:
		return "/editor"
	case domain.RouteViewer:
		return "/viewer"
	}
	return "/login"
}
