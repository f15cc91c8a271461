package documents

import (
	"encoding/json"
	"time"
)

// DocumentResponse is the outward-facing representation of a stored record.
type DocumentResponse struct {
	ID            string          `json:"id"`
	FileName      string          `json:"fileName"`
	FileSize      int64           `json:"fileSize"`
	ExtractedData json.RawMessage `json:"extractedData"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func toResponse(doc Document) DocumentResponse {
	return DocumentResponse{
		ID:            doc.ID,
		FileName:      doc.FileName,
		FileSize:      doc.FileSize,
		ExtractedData: doc.ExtractedData,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}
}
