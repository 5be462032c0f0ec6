package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/bribank/origination/internal/application/dto"
	"github.com/bribank/origination/internal/domain/valueobject"
)

func jsonDecode(body io.Reader, dst any) error {
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// respondAttachment streams a downloadable artifact with a file-save hint.
func respondAttachment(w http.ResponseWriter, resp dto.ExportResponse) {
	w.Header().Set("Content-Type", resp.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resp.FileName))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(resp.Content); err != nil {
		slog.Error("failed to write attachment", "file", resp.FileName, "error", err)
	}
}

// respondError maps domain errors onto HTTP status codes. Unknown errors are
// reported as 500 without leaking internals.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, valueobject.ErrValidation):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, valueobject.ErrNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, valueobject.ErrIllegalTransition):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, valueobject.ErrPreconditionNotMet):
		status = http.StatusUnprocessableEntity
		message = err.Error()
	case errors.Is(err, valueobject.ErrUpstreamUnavailable):
		status = http.StatusBadGateway
		message = err.Error()
	default:
		slog.Error("unhandled error", "error", err)
	}

	respondJSON(w, status, errorResponse{Error: message})
}
