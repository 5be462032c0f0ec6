package rest

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/bribank/origination/internal/domain/valueobject"
)

type loanTypeResponse struct {
	ID          int             `json:"id"`
	Description string          `json:"description"`
	Spread      decimal.Decimal `json:"spread"`
}

type documentTypeResponse struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Mandatory   bool   `json:"mandatory"`
}

// ListLoanTypes handles GET /api/v1/catalog/loan-types.
func (h *Handler) ListLoanTypes(w http.ResponseWriter, r *http.Request) {
	types := valueobject.LoanTypes()
	out := make([]loanTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, loanTypeResponse{ID: t.ID, Description: t.Description, Spread: t.Spread})
	}
	respondJSON(w, http.StatusOK, out)
}

// ListDurations handles GET /api/v1/catalog/durations.
func (h *Handler) ListDurations(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, valueobject.Durations())
}

// ListCadences handles GET /api/v1/catalog/cadences.
func (h *Handler) ListCadences(w http.ResponseWriter, r *http.Request) {
	cadences := []valueobject.Cadence{
		valueobject.CadenceMonthly,
		valueobject.CadenceQuarterly,
		valueobject.CadenceSemiannual,
		valueobject.CadenceAnnual,
	}
	out := make([]string, 0, len(cadences))
	for _, c := range cadences {
		out = append(out, c.String())
	}
	respondJSON(w, http.StatusOK, out)
}

// ListDocumentTypes handles GET /api/v1/catalog/document-types.
func (h *Handler) ListDocumentTypes(w http.ResponseWriter, r *http.Request) {
	types := valueobject.DocumentTypes()
	out := make([]documentTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, documentTypeResponse{ID: t.ID, Description: t.Description, Mandatory: t.Mandatory})
	}
	respondJSON(w, http.StatusOK, out)
}
