package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"docextract-backend/internal/ai"
	"docextract-backend/internal/documents"
	"docextract-backend/internal/resume"
	"docextract-backend/internal/shared/metrics"
	"docextract-backend/internal/shared/telemetry"
)

// Service runs the extraction flow: AI call, response parsing, persistence.
type Service struct {
	AI   ai.Client
	Repo documents.Repo
}

// Extract submits the uploaded file to the AI capability, parses its
// response, persists an extraction record for the caller and returns the
// parsed payload. A response that is not valid JSON after fence stripping
// degrades to a {"raw_text"} payload, which is persisted and returned the
// same way a structured one would be.
func (s *Service) Extract(ctx context.Context, userID, fileName, mimeType string, content []byte) (json.RawMessage, error) {
	if len(content) == 0 {
		return nil, ErrNoFile
	}
	if userID == "" {
		return nil, errors.New("user id required")
	}
	if s.AI == nil {
		return nil, ErrNotConfigured
	}

	started := time.Now()
	metrics.IncExtractionStarted()
	telemetry.Info("extraction.started", map[string]any{
		"user_id":   userID,
		"file_name": fileName,
		"file_size": len(content),
		"mime_type": mimeType,
		"pdf_pages": pdfPageCount(content),
	})

	text, err := s.AI.ExtractDocument(ctx, ai.Input{
		FileName: fileName,
		MIMEType: mimeType,
		Content:  content,
	})
	if err != nil {
		metrics.IncExtractionFailed()
		if errors.Is(err, ai.ErrNotConfigured) {
			return nil, ErrNotConfigured
		}
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	payload := parseResponse(text)
	structured := !resume.IsRawTextFallback(payload)
	if !structured {
		metrics.IncExtractionFallback()
		telemetry.Warn("extraction.fallback_raw_text", map[string]any{
			"user_id":   userID,
			"file_name": fileName,
			"text_len":  len(text),
		})
	} else if _, err := resume.DecodeStrict(payload); err != nil {
		// Valid JSON outside the schema is persisted as-is; the deviation
		// is only worth a log line.
		telemetry.Warn("extraction.schema_deviation", map[string]any{
			"user_id":   userID,
			"file_name": fileName,
			"error":     err.Error(),
		})
	}

	now := time.Now().UTC()
	doc := documents.Document{
		ID:            uuid.NewString(),
		UserID:        userID,
		FileName:      fileName,
		FileSize:      int64(len(content)),
		ExtractedData: payload,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		metrics.IncExtractionFailed()
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	metrics.IncExtractionCompleted()
	metrics.ObserveExtractionDurationMs(metrics.DurationMs(started))
	telemetry.Info("extraction.completed", map[string]any{
		"user_id":     userID,
		"document_id": doc.ID,
		"structured":  structured,
		"duration_ms": metrics.DurationMs(started),
	})
	return payload, nil
}
