package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bribank/origination/internal/domain/valueobject"
)

// Document is a supporting file uploaded against a mortgage request. The set
// of uploaded mandatory categories gates the forward-to-validation transition.
type Document struct {
	ID          string
	RequestID   string
	TypeID      int
	FileName    string
	ContentType string
	Content     []byte
	UploadedBy  string
	UploadedAt  time.Time
}

// NewDocument validates and builds a document for storage.
func NewDocument(requestID string, typeID int, fileName, contentType string, content []byte, uploadedBy string, now time.Time) (Document, error) {
	if requestID == "" {
		return Document{}, fmt.Errorf("%w: request id is required", valueobject.ErrValidation)
	}
	if _, ok := valueobject.DocumentTypeByID(typeID); !ok {
		return Document{}, fmt.Errorf("%w: unknown document type %d", valueobject.ErrValidation, typeID)
	}
	if fileName == "" {
		return Document{}, fmt.Errorf("%w: file name is required", valueobject.ErrValidation)
	}
	if len(content) == 0 {
		return Document{}, fmt.Errorf("%w: empty document content", valueobject.ErrValidation)
	}

	return Document{
		ID:          uuid.New().String(),
		RequestID:   requestID,
		TypeID:      typeID,
		FileName:    fileName,
		ContentType: contentType,
		Content:     content,
		UploadedBy:  uploadedBy,
		UploadedAt:  now,
	}, nil
}
