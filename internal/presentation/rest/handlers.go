package rest

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/bribank/origination/internal/application/dto"
	"github.com/bribank/origination/internal/application/usecase"
	"github.com/bribank/origination/internal/domain/valueobject"
	"github.com/bribank/origination/pkg/auth"
)

// maxDocumentSize caps uploaded document bodies.
const maxDocumentSize = 10 << 20

// UseCases bundles the application services the HTTP layer exposes.
type UseCases struct {
	CreateRequest     *usecase.CreateRequestUseCase
	UpdateTerms       *usecase.UpdateTermsUseCase
	SubmitRequest     *usecase.SubmitRequestUseCase
	ForwardValidation *usecase.ForwardToValidationUseCase
	RejectRequest     *usecase.RejectRequestUseCase
	ValidateRequest   *usecase.ValidateRequestUseCase
	DeleteRequest     *usecase.DeleteRequestUseCase
	RestoreRequest    *usecase.RestoreRequestUseCase
	GetRequest        *usecase.GetRequestUseCase
	SearchRequests    *usecase.SearchRequestsUseCase
	GenerateSchedule  *usecase.GenerateScheduleUseCase
	ExportSchedule    *usecase.ExportScheduleUseCase
	RegisterPerson    *usecase.RegisterPersonUseCase
	SearchPersons     *usecase.SearchPersonsUseCase
	UploadDocument    *usecase.UploadDocumentUseCase
	ListDocuments     *usecase.ListDocumentsUseCase
	DownloadDocument  *usecase.DownloadDocumentUseCase
	DocumentBundle    *usecase.DownloadDocumentBundleUseCase
}

// Handler translates HTTP requests into use case invocations.
type Handler struct {
	uc UseCases
}

// NewHandler creates the HTTP handler set.
func NewHandler(uc UseCases) *Handler {
	return &Handler{uc: uc}
}

// actorFromRequest resolves the authenticated actor from the request context.
func actorFromRequest(r *http.Request) (dto.Actor, error) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		return dto.Actor{}, fmt.Errorf("%w: missing authentication context", valueobject.ErrValidation)
	}
	for _, raw := range claims.Roles {
		role, err := valueobject.NewRole(strings.ToUpper(raw))
		if err == nil {
			return dto.Actor{UserID: claims.UserID, BranchID: claims.BranchID, Role: role}, nil
		}
	}
	return dto.Actor{}, fmt.Errorf("%w: no recognised role in token", valueobject.ErrValidation)
}

func decodeJSON(r *http.Request, dst any) error {
	if err := jsonDecode(r.Body, dst); err != nil {
		return fmt.Errorf("%w: malformed request body", valueobject.ErrValidation)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mortgage requests
// ---------------------------------------------------------------------------

type createRequestBody struct {
	Terms   dto.TermsPayload   `json:"terms"`
	Parties []dto.PartyPayload `json:"parties"`
}

// CreateRequest handles POST /api/v1/requests.
func (h *Handler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var body createRequestBody
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, err)
		return
	}
	resp, err := h.uc.CreateRequest.Execute(r.Context(), dto.CreateRequestRequest{
		Actor:   actor,
		Terms:   body.Terms,
		Parties: body.Parties,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, resp)
}

// GetRequest handles GET /api/v1/requests/{id}.
func (h *Handler) GetRequest(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}
	resp, err := h.uc.GetRequest.Execute(r.Context(), dto.TransitionRequest{
		Actor:     actor,
		RequestID: chi.URLParam(r, "id"),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// SearchRequests handles GET /api/v1/requests.
func (h *Handler) SearchRequests(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}
	q := r.URL.Query()
	resp, err := h.uc.SearchRequests.Execute(r.Context(), dto.SearchRequestsRequest{
		Actor:          actor,
		FirstName:      q.Get("first_name"),
		LastName:       q.Get("last_name"),
		FiscalCode:     q.Get("fiscal_code"),
		RequestID:      q.Get("request_id"),
		Status:         q.Get("status"),
		IncludeDeleted: q.Get("include_deleted") == "true",
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

type updateTermsBody struct {
	Terms dto.TermsPayload `json:"terms"`
}

// UpdateTerms handles PUT /api/v1/requests/{id}/terms.
func (h *Handler) UpdateTerms(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var body updateTermsBody
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, err)
		return
	}
	resp, err := h.uc.UpdateTerms.Execute(r.Context(), dto.UpdateTermsRequest{
		Actor:     actor,
		RequestID: chi.URLParam(r, "id"),
		Terms:     body.Terms,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request,
	exec func(dto.TransitionRequest) (dto.RequestResponse, error)) {
	actor, err := actorFromRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}
	resp, err := exec(dto.TransitionRequest{Actor: actor, RequestID: chi.URLParam(r, "id")})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// SubmitRequest handles POST /api/v1/requests/{id}/submit.
func (h *Handler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(req dto.TransitionRequest) (dto.RequestResponse, error) {
		return h.uc.SubmitRequest.Execute(r.Context(), req)
	})
}

// ForwardToValidation handles POST /api/v1/requests/{id}/forward.
func (h *Handler) ForwardToValidation(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(req dto.TransitionRequest) (dto.RequestResponse, error) {
		return h.uc.ForwardValidation.Execute(r.Context(), req)
	})
}

// ValidateRequest handles POST /api/v1/requests/{id}/validate.
func (h *Handler) ValidateRequest(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(req dto.TransitionRequest) (dto.RequestResponse, error) {
		return h.uc.ValidateRequest.Execute(r.Context(), req)
	})
}

// DeleteRequest handles DELETE /api/v1/requests/{id}.
func (h *Handler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(req dto.TransitionRequest) (dto.RequestResponse, error) {
		return h.uc.DeleteRequest.Execute(r.Context(), req)
	})
}

// RestoreRequest handles POST /api/v1/requests/{id}/restore.
func (h *Handler) RestoreRequest(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(req dto.TransitionRequest) (dto.RequestResponse, error) {
		return h.uc.RestoreRequest.Execute(r.Context(), req)
	})
}

type rejectBody struct {
	Note string `json:"note"`
}

// RejectRequest handles POST /api/v1/requests/{id}/reject.
func (h *Handler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var body rejectBody
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, err)
		return
	}
	resp, err := h.uc.RejectRequest.Execute(r.Context(), dto.RejectRequestRequest{
		Actor:     actor,
		RequestID: chi.URLParam(r, "id"),
		Note:      body.Note,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// ---------------------------------------------------------------------------
// Amortization schedule
// ---------------------------------------------------------------------------

// GenerateSchedule handles POST /api/v1/requests/{id}/schedule.
func (h *Handler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}
	resp, err := h.uc.GenerateSchedule.Execute(r.Context(), dto.TransitionRequest{
		Actor:     actor,
		RequestID: chi.URLParam(r, "id"),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// ExportSchedule handles GET /api/v1/requests/{id}/schedule/export?format=pdf|excel.
func (h *Handler) ExportSchedule(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}
	resp, err := h.uc.ExportSchedule.Execute(r.Context(), dto.ExportScheduleRequest{
		Actor:     actor,
		RequestID: chi.URLParam(r, "id"),
		Format:    r.URL.Query().Get("format"),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondAttachment(w, resp)
}

// ---------------------------------------------------------------------------
// Persons
// ---------------------------------------------------------------------------

type registerPersonBody struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	FiscalCode string `json:"fiscal_code"`
	BirthDate  string `json:"birth_date"`
}

// RegisterPerson handles POST /api/v1/persons.
func (h *Handler) RegisterPerson(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var body registerPersonBody
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, err)
		return
	}
	birthDate, err := parseDate(body.BirthDate)
	if err != nil {
		respondError(w, fmt.Errorf("%w: birth_date must be YYYY-MM-DD", valueobject.ErrValidation))
		return
	}
	resp, err := h.uc.RegisterPerson.Execute(r.Context(), dto.RegisterPersonRequest{
		Actor:      actor,
		FirstName:  body.FirstName,
		LastName:   body.LastName,
		FiscalCode: body.FiscalCode,
		BirthDate:  birthDate,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, resp)
}

// SearchPersons handles GET /api/v1/persons?q=.
func (h *Handler) SearchPersons(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}
	resp, err := h.uc.SearchPersons.Execute(r.Context(), actor, r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// ---------------------------------------------------------------------------
// Documents
// ---------------------------------------------------------------------------

// UploadDocument handles POST /api/v1/requests/{id}/documents as
// multipart/form-data with fields "type_id" and "file".
func (h *Handler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxDocumentSize)
	if err := r.ParseMultipartForm(maxDocumentSize); err != nil {
		respondError(w, fmt.Errorf("%w: malformed multipart body", valueobject.ErrValidation))
		return
	}
	typeID, err := strconv.Atoi(r.FormValue("type_id"))
	if err != nil {
		respondError(w, fmt.Errorf("%w: type_id must be an integer", valueobject.ErrValidation))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, fmt.Errorf("%w: missing file field", valueobject.ErrValidation))
		return
	}
	defer file.Close()
	content, err := io.ReadAll(file)
	if err != nil {
		respondError(w, fmt.Errorf("%w: unreadable file payload", valueobject.ErrValidation))
		return
	}

	resp, err := h.uc.UploadDocument.Execute(r.Context(), dto.UploadDocumentRequest{
		Actor:       actor,
		RequestID:   chi.URLParam(r, "id"),
		TypeID:      typeID,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     content,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, resp)
}

type documentListResponse struct {
	Checklist []dto.DocumentChecklistEntry `json:"checklist"`
	Documents []dto.DocumentResponse       `json:"documents"`
}

// ListDocuments handles GET /api/v1/requests/{id}/documents.
func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}
	checklist, docs, err := h.uc.ListDocuments.Execute(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, documentListResponse{Checklist: checklist, Documents: docs})
}

// DownloadDocument handles GET /api/v1/requests/{id}/documents/{docID}.
func (h *Handler) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}
	resp, err := h.uc.DownloadDocument.Execute(r.Context(), dto.DownloadDocumentRequest{
		Actor:      actor,
		RequestID:  chi.URLParam(r, "id"),
		DocumentID: chi.URLParam(r, "docID"),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondAttachment(w, resp)
}

// DownloadDocumentBundle handles GET /api/v1/requests/{id}/documents/archive.
func (h *Handler) DownloadDocumentBundle(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}
	resp, err := h.uc.DocumentBundle.Execute(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondAttachment(w, resp)
}
