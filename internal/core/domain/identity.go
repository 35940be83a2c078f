package domain

import "errors"

// Identity is an authenticated principal handle issued by the identity
// provider. The engine borrows it for the duration of a resolution; it
// never stores or mutates one.
type Identity struct {
	// SubjectID is the provider's stable unique key for the principal.
	SubjectID string

	// Email is the address the principal authenticated with. Opaque to
	// the engine; passed through into the RoleRecord at signup.
	Email string
}

// ErrRecordNotFound is returned when no RoleRecord exists for a subject.
// It is a legitimate lookup outcome, distinct from a store failure.
var ErrRecordNotFound = errors.New("role record not found")

// RoleRecord maps a subject id to an access role. At most one record
// exists per subject id; it is created at signup with RoleViewer and
// mutated only by an explicit role change.
type RoleRecord struct {
	SubjectID string `json:"uid" yaml:"uid"`
	Email     string `json:"email" yaml:"email"`
	Role      Role   `json:"role" yaml:"role"`
}

// Validate checks that the record can be written.
func (r *RoleRecord) Validate() error {
	if r.SubjectID == "" {
		return errors.New("role record must have a subject id")
	}
	if !r.Role.Valid() {
		return errors.New("role record must have a known role")
	}
	return nil
}
