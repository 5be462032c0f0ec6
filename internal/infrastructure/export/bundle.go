package export

import (
	"archive/zip"
	"bytes"
	"fmt"

	"github.com/bribank/origination/internal/domain/model"
)

// DocumentBundle implements port.DocumentBundler as a zip archive. Entries
// are named after the document category and file name so the archive lists
// in checklist order.
type DocumentBundle struct{}

// NewDocumentBundle creates the archive bundler.
func NewDocumentBundle() *DocumentBundle {
	return &DocumentBundle{}
}

// Bundle packs the documents into a zip archive.
func (b *DocumentBundle) Bundle(requestID string, docs []model.Document) ([]byte, string, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, doc := range docs {
		entry, err := zw.Create(fmt.Sprintf("%02d_%s", doc.TypeID, doc.FileName))
		if err != nil {
			return nil, "", fmt.Errorf("archive entry %s for request %s: %w", doc.FileName, requestID, err)
		}
		if _, err := entry.Write(doc.Content); err != nil {
			return nil, "", fmt.Errorf("archive entry %s for request %s: %w", doc.FileName, requestID, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize archive for request %s: %w", requestID, err)
	}
	return buf.Bytes(), "application/zip", nil
}
