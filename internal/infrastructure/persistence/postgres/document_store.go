package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bribank/origination/internal/domain/model"
	"github.com/bribank/origination/internal/domain/valueobject"
)

// DocumentStore implements port.DocumentStore with the document content held
// inline. A later upload of the same category replaces the previous file.
type DocumentStore struct {
	pool *pgxpool.Pool
}

// NewDocumentStore creates a new store backed by PostgreSQL.
func NewDocumentStore(pool *pgxpool.Pool) *DocumentStore {
	return &DocumentStore{pool: pool}
}

// Save persists a document, replacing any prior upload of the same category.
func (s *DocumentStore) Save(ctx context.Context, doc model.Document) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO documents (id, request_id, type_id, file_name, content_type, content, uploaded_by, uploaded_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (request_id, type_id) DO UPDATE SET
			id           = EXCLUDED.id,
			file_name    = EXCLUDED.file_name,
			content_type = EXCLUDED.content_type,
			content      = EXCLUDED.content,
			uploaded_by  = EXCLUDED.uploaded_by,
			uploaded_at  = EXCLUDED.uploaded_at
	`, doc.ID, doc.RequestID, doc.TypeID, doc.FileName, doc.ContentType, doc.Content, doc.UploadedBy, doc.UploadedAt)
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// ListUploadedTypes returns the distinct document categories uploaded for a
// request. This feeds the forward-to-validation precondition.
func (s *DocumentStore) ListUploadedTypes(ctx context.Context, requestID string) ([]int, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT DISTINCT type_id FROM documents WHERE request_id = $1 ORDER BY type_id
	`, requestID)
	if err != nil {
		return nil, fmt.Errorf("list uploaded types: %w", err)
	}
	defer rows.Close()

	var types []int
	for rows.Next() {
		var t int
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan type id: %w", err)
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

// ListByRequestID returns document metadata for a request (content omitted).
func (s *DocumentStore) ListByRequestID(ctx context.Context, requestID string) ([]model.Document, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, request_id, type_id, file_name, content_type, uploaded_by, uploaded_at
		FROM documents
		WHERE request_id = $1
		ORDER BY type_id
	`, requestID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []model.Document
	for rows.Next() {
		var d model.Document
		if err := rows.Scan(&d.ID, &d.RequestID, &d.TypeID, &d.FileName, &d.ContentType, &d.UploadedBy, &d.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// FindByID loads a full document including its content, for download.
func (s *DocumentStore) FindByID(ctx context.Context, id string) (model.Document, error) {
	var d model.Document
	err := s.pool.QueryRow(ctx, `
		SELECT id, request_id, type_id, file_name, content_type, content, uploaded_by, uploaded_at
		FROM documents
		WHERE id = $1
	`, id).Scan(&d.ID, &d.RequestID, &d.TypeID, &d.FileName, &d.ContentType, &d.Content, &d.UploadedBy, &d.UploadedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Document{}, fmt.Errorf("%w: document %s", valueobject.ErrNotFound, id)
		}
		return model.Document{}, fmt.Errorf("find document: %w", err)
	}
	return d, nil
}
