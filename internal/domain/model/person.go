package model

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bribank/origination/internal/domain/valueobject"
)

// fiscal code: 16 alphanumeric characters (Italian codice fiscale).
var fiscalCodePattern = regexp.MustCompile(`^[A-Z0-9]{16}$`)

// Person is an applicant identity record in the branch registry. Persons are
// referenced by mortgage requests as parties.
type Person struct {
	ID         string
	BranchID   string
	FirstName  string
	LastName   string
	FiscalCode string
	BirthDate  time.Time
	CreatedAt  time.Time
}

// NewPerson registers a new person record. The fiscal code is normalised to
// upper case and must match the 16-character format.
func NewPerson(branchID, firstName, lastName, fiscalCode string, birthDate, now time.Time) (Person, error) {
	if branchID == "" {
		return Person{}, fmt.Errorf("%w: branch id is required", valueobject.ErrValidation)
	}
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return Person{}, fmt.Errorf("%w: first and last name are required", valueobject.ErrValidation)
	}

	cf := strings.ToUpper(strings.TrimSpace(fiscalCode))
	if !fiscalCodePattern.MatchString(cf) {
		return Person{}, fmt.Errorf("%w: malformed fiscal code %q", valueobject.ErrValidation, fiscalCode)
	}
	if birthDate.IsZero() || !birthDate.Before(now) {
		return Person{}, fmt.Errorf("%w: birth date must be in the past", valueobject.ErrValidation)
	}

	return Person{
		ID:         uuid.New().String(),
		BranchID:   branchID,
		FirstName:  strings.TrimSpace(firstName),
		LastName:   strings.TrimSpace(lastName),
		FiscalCode: cf,
		BirthDate:  birthDate,
		CreatedAt:  now,
	}, nil
}
