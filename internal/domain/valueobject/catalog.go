package valueobject

import "github.com/shopspring/decimal"

// Reference catalogs served to clients and consulted by validation. These are
// bank-level configuration, stable enough to live in code rather than storage.

// LoanType identifies a mortgage product; the spread is derived from it and
// is read-only for the requesting officer.
type LoanType struct {
	ID          int
	Description string
	Spread      decimal.Decimal // annual markup, percentage points
}

var loanTypes = []LoanType{
	{ID: 1, Description: "Fixed rate", Spread: decimal.NewFromFloat(1.20)},
	{ID: 2, Description: "Variable rate", Spread: decimal.NewFromFloat(0.90)},
	{ID: 3, Description: "Mixed rate", Spread: decimal.NewFromFloat(1.05)},
	{ID: 4, Description: "Capped variable rate", Spread: decimal.NewFromFloat(1.35)},
}

// LoanTypes returns the loan product catalog.
func LoanTypes() []LoanType {
	out := make([]LoanType, len(loanTypes))
	copy(out, loanTypes)
	return out
}

// LoanTypeByID looks up a loan product; ok is false for unknown ids.
func LoanTypeByID(id int) (LoanType, bool) {
	for _, lt := range loanTypes {
		if lt.ID == id {
			return lt, true
		}
	}
	return LoanType{}, false
}

// Durations returns the allowed mortgage durations in years.
func Durations() []int {
	return []int{5, 10, 15, 20, 25, 30}
}

// IsValidDuration reports whether years is in the duration catalog.
func IsValidDuration(years int) bool {
	for _, d := range Durations() {
		if d == years {
			return true
		}
	}
	return false
}

// DocumentType describes an uploadable supporting document category.
// Mandatory types must all be present before a request can be forwarded
// to validation.
type DocumentType struct {
	ID          int
	Description string
	Mandatory   bool
}

var documentTypes = []DocumentType{
	{ID: 11, Description: "Identity document", Mandatory: true},
	{ID: 12, Description: "Income statement", Mandatory: true},
	{ID: 13, Description: "Property appraisal", Mandatory: true},
	{ID: 14, Description: "Preliminary sale agreement", Mandatory: true},
	{ID: 15, Description: "Additional guarantees", Mandatory: false},
}

// DocumentTypes returns the document category catalog.
func DocumentTypes() []DocumentType {
	out := make([]DocumentType, len(documentTypes))
	copy(out, documentTypes)
	return out
}

// DocumentTypeByID looks up a document category; ok is false for unknown ids.
func DocumentTypeByID(id int) (DocumentType, bool) {
	for _, dt := range documentTypes {
		if dt.ID == id {
			return dt, true
		}
	}
	return DocumentType{}, false
}

// MandatoryDocumentTypeIDs returns the ids that gate the VALIDATION transition.
func MandatoryDocumentTypeIDs() []int {
	var ids []int
	for _, dt := range documentTypes {
		if dt.Mandatory {
			ids = append(ids, dt.ID)
		}
	}
	return ids
}
