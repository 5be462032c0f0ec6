package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// Role – immutable value object
// ---------------------------------------------------------------------------

// Role is the enumerated staff role resolved once at authentication time.
// Lifecycle gating consumes only this value and never re-derives it from a
// free-text role description.
type Role struct {
	value string
}

const (
	roleOfficer   = "OFFICER"
	roleValidator = "VALIDATOR"
)

var (
	RoleOfficer   = Role{value: roleOfficer}
	RoleValidator = Role{value: roleValidator}
)

var validRoles = map[string]Role{
	roleOfficer:   RoleOfficer,
	roleValidator: RoleValidator,
}

// NewRole creates a Role from a raw string.
func NewRole(s string) (Role, error) {
	v, ok := validRoles[s]
	if !ok {
		return Role{}, fmt.Errorf("invalid role: %q", s)
	}
	return v, nil
}

// String returns the string representation of the role.
func (r Role) String() string { return r.value }

// IsZero returns true if the role has not been initialised.
func (r Role) IsZero() bool { return r.value == "" }

// Equal returns true when both roles carry the same value.
func (r Role) Equal(other Role) bool { return r.value == other.value }
