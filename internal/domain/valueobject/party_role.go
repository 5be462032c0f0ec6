package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// PartyRole – immutable value object
// ---------------------------------------------------------------------------

// PartyRole tags a person attached to a mortgage request: primary holder,
// co-holder, or guarantor.
type PartyRole struct {
	value string
}

const (
	partyRoleIntestatario   = "INTESTATARIO"
	partyRoleCointestatario = "COINTESTATARIO"
	partyRoleGarante        = "GARANTE"
)

var (
	PartyRoleIntestatario   = PartyRole{value: partyRoleIntestatario}
	PartyRoleCointestatario = PartyRole{value: partyRoleCointestatario}
	PartyRoleGarante        = PartyRole{value: partyRoleGarante}
)

var validPartyRoles = map[string]PartyRole{
	partyRoleIntestatario:   PartyRoleIntestatario,
	partyRoleCointestatario: PartyRoleCointestatario,
	partyRoleGarante:        PartyRoleGarante,
}

// NewPartyRole creates a PartyRole from a raw string.
func NewPartyRole(s string) (PartyRole, error) {
	v, ok := validPartyRoles[s]
	if !ok {
		return PartyRole{}, fmt.Errorf("invalid party role: %q", s)
	}
	return v, nil
}

// String returns the string representation of the party role.
func (r PartyRole) String() string { return r.value }

// IsZero returns true if the party role has not been initialised.
func (r PartyRole) IsZero() bool { return r.value == "" }

// Equal returns true when both party roles carry the same value.
func (r PartyRole) Equal(other PartyRole) bool { return r.value == other.value }
