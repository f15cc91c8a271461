package documents

import (
	"encoding/json"
	"time"
)

// Document is one extraction record owned by a user. Records are immutable
// after creation; no update or delete path exists.
type Document struct {
	ID            string
	UserID        string
	FileName      string
	FileSize      int64
	ExtractedData json.RawMessage
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
