package gemini

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"docextract-backend/internal/ai"
	"docextract-backend/internal/shared/telemetry"
)

// pollInterval is how often the staged file's processing status is checked.
const pollInterval = time.Second

// Client implements ai.Client against the Gemini API.
type Client struct {
	genai *genai.Client
	model string
}

// NewClient constructs a Gemini client. The API key must be non-empty;
// callers install ai.PlaceholderClient when it is not.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("GEMINI_MODEL is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Client{genai: client, model: model}, nil
}

// Close releases the underlying API client.
func (c *Client) Close() error {
	return c.genai.Close()
}

// ExtractDocument stages the file with the Files API, waits for it to be
// processed, then runs schema-constrained generation and returns the
// model's textual response.
func (c *Client) ExtractDocument(ctx context.Context, input ai.Input) (string, error) {
	file, err := c.genai.UploadFile(ctx, "", bytes.NewReader(input.Content), &genai.UploadFileOptions{
		DisplayName: input.FileName,
		MIMEType:    input.MIMEType,
	})
	if err != nil {
		return "", fmt.Errorf("gemini upload: %w", err)
	}
	defer func() {
		// Staged files expire upstream anyway; deletion is best effort.
		if err := c.genai.DeleteFile(context.WithoutCancel(ctx), file.Name); err != nil {
			telemetry.Warn("gemini.file_delete_failed", map[string]any{"file": file.Name, "error": err.Error()})
		}
	}()

	file, err = c.awaitProcessing(ctx, file)
	if err != nil {
		return "", err
	}

	model := c.genai.GenerativeModel(c.model)
	model.GenerationConfig.ResponseMIMEType = "application/json"
	model.GenerationConfig.ResponseSchema = resumeSchema()

	resp, err := model.GenerateContent(ctx,
		genai.FileData{MIMEType: file.MIMEType, URI: file.URI},
		genai.Text(extractionPrompt),
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("gemini generate: empty response")
	}
	return text, nil
}

// awaitProcessing polls the staged file at a fixed interval until it leaves
// the processing state, honoring context cancellation.
func (c *Client) awaitProcessing(ctx context.Context, file *genai.File) (*genai.File, error) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for file.State == genai.FileStateProcessing {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
		var err error
		file, err = c.genai.GetFile(ctx, file.Name)
		if err != nil {
			return nil, fmt.Errorf("gemini file status: %w", err)
		}
	}

	if file.State != genai.FileStateActive {
		return nil, fmt.Errorf("gemini file processing failed: state=%v", file.State)
	}
	if file.URI == "" || file.MIMEType == "" {
		return nil, fmt.Errorf("gemini file processed without uri or mime type")
	}
	return file, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
	}
	return strings.TrimSpace(b.String())
}

var _ ai.Client = (*Client)(nil)
