package model

import (
	"fmt"
	"strings"

	"github.com/bribank/origination/internal/domain/valueobject"
)

// Party references a person record attached to a mortgage request together
// with its role tag.
type Party struct {
	PersonID   string
	FiscalCode string
	FirstName  string
	LastName   string
	Role       valueobject.PartyRole
}

// ValidateParties enforces the party-selection invariants: at least one party,
// exactly one primary holder, and no person appearing twice (deduplicated by
// fiscal code, case-insensitively).
func ValidateParties(parties []Party) error {
	if len(parties) == 0 {
		return fmt.Errorf("%w: at least one party is required", valueobject.ErrValidation)
	}

	holders := 0
	seen := make(map[string]struct{}, len(parties))
	for _, p := range parties {
		if p.PersonID == "" || p.FiscalCode == "" {
			return fmt.Errorf("%w: party requires person id and fiscal code", valueobject.ErrValidation)
		}
		if p.Role.IsZero() {
			return fmt.Errorf("%w: party role is required", valueobject.ErrValidation)
		}

		cf := strings.ToUpper(strings.TrimSpace(p.FiscalCode))
		if _, dup := seen[cf]; dup {
			return fmt.Errorf("%w: fiscal code %s appears more than once", valueobject.ErrValidation, cf)
		}
		seen[cf] = struct{}{}

		if p.Role.Equal(valueobject.PartyRoleIntestatario) {
			holders++
		}
	}

	if holders != 1 {
		return fmt.Errorf("%w: exactly one primary holder is required, found %d", valueobject.ErrValidation, holders)
	}
	return nil
}

func copyParties(src []Party) []Party {
	if len(src) == 0 {
		return nil
	}
	dst := make([]Party, len(src))
	copy(dst, src)
	return dst
}
