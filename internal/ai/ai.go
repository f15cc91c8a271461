package ai

import (
	"context"
	"errors"
)

// Input is the uploaded file handed to the AI capability.
type Input struct {
	FileName string
	MIMEType string
	Content  []byte
}

// Client abstracts the generative AI capability used for document
// extraction. Implementations return the model's textual response; parsing
// is the caller's concern.
type Client interface {
	ExtractDocument(ctx context.Context, input Input) (string, error)
}

// ErrNotConfigured is returned when no AI credential is present in the
// environment. The condition surfaces at request time, not at startup.
var ErrNotConfigured = errors.New("ai client not configured")

// PlaceholderClient is installed when GEMINI_API_KEY is absent.
type PlaceholderClient struct{}

// ExtractDocument returns ErrNotConfigured.
func (PlaceholderClient) ExtractDocument(ctx context.Context, input Input) (string, error) {
	_ = ctx
	_ = input
	return "", ErrNotConfigured
}
