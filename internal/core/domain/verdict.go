package domain

// VerdictCode categorizes an authorization decision.
type VerdictCode string

const (
	// VerdictGranted allows navigation to the requested route.
	VerdictGranted VerdictCode = "granted"

	// VerdictDeniedNoSession means no principal is signed in.
	VerdictDeniedNoSession VerdictCode = "denied_no_session"

	// VerdictDeniedNoRecord means an authenticated principal has no
	// RoleRecord. This signals a provisioning inconsistency.
	VerdictDeniedNoRecord VerdictCode = "denied_no_record"

	// VerdictDeniedRoleMismatch means the recorded role differs from
	// the route's expected role.
	VerdictDeniedRoleMismatch VerdictCode = "denied_role_mismatch"
)

// String returns the verdict code as a string.
func (c VerdictCode) String() string {
	return string(c)
}

// Verdict is the engine's output for one activation attempt: the
// decision plus, when denied, the route to redirect to. The zero
// Verdict is not granted, so an error path can never grant by accident.
type Verdict struct {
	Code     VerdictCode
	Redirect Route
}

// Allowed reports whether the verdict permits navigation.
func (v Verdict) Allowed() bool {
	return v.Code == VerdictGranted
}

// Granted is the verdict for an allowed activation.
func Granted() Verdict {
	return Verdict{Code: VerdictGranted}
}

// DeniedNoSession is the verdict for an activation with no principal.
func DeniedNoSession() Verdict {
	return Verdict{Code: VerdictDeniedNoSession, Redirect: RouteLogin}
}

// DeniedNoRecord is the verdict for a principal with no RoleRecord.
func DeniedNoRecord() Verdict {
	return Verdict{Code: VerdictDeniedNoRecord, Redirect: RouteUnauthorized}
}

// DeniedRoleMismatch is the verdict for a role that does not match.
func DeniedRoleMismatch() Verdict {
	return Verdict{Code: VerdictDeniedRoleMismatch, Redirect: RouteUnauthorized}
}
