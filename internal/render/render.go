package render

import (
	"errors"

	"docextract-backend/internal/resume"
	"docextract-backend/internal/shared/metrics"
)

// Template names accepted by Render.
const (
	TemplateProfessional = "professional"
	TemplateModern       = "modern"
)

// ErrUnknownTemplate is returned for a template name outside the two variants.
var ErrUnknownTemplate = errors.New("unknown template")

// Render produces a PDF for the given data and template. Both variants share
// the same data contract and differ only in layout; sections whose list is
// empty are omitted entirely. Output content is deterministic for identical
// input.
func Render(data resume.Data, template string) ([]byte, error) {
	var (
		out []byte
		err error
	)
	switch template {
	case TemplateProfessional:
		out, err = renderProfessional(data)
	case TemplateModern:
		out, err = renderModern(data)
	default:
		return nil, ErrUnknownTemplate
	}
	if err != nil {
		return nil, err
	}
	metrics.IncRender()
	return out, nil
}
