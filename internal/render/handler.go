package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"docextract-backend/internal/documents"
	"docextract-backend/internal/resume"
	"docextract-backend/internal/shared/server/middleware"
	"docextract-backend/internal/shared/server/respond"
	"docextract-backend/internal/shared/telemetry"
)

// Handler serves PDF exports of stored documents and ad-hoc renders.
type Handler struct {
	Docs documents.Repo
}

// NewHandler constructs a Handler.
func NewHandler(docs documents.Repo) *Handler {
	return &Handler{Docs: docs}
}

// RegisterRoutes attaches render routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/documents/:id/export", h.export)
	rg.POST("/render", h.render)
}

func (h *Handler) export(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	documentID := c.Param("id")

	template := c.DefaultQuery("template", TemplateProfessional)

	doc, err := h.Docs.GetByIDForUser(c.Request.Context(), userID, documentID)
	if err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch document", nil)
		return
	}

	data, err := resume.Decode(doc.ExtractedData)
	if err != nil {
		telemetry.Error("render.decode_failed", map[string]any{
			"request_id":  middleware.RequestIDFromContext(c),
			"document_id": doc.ID,
			"error":       err.Error(),
		})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to render document", nil)
		return
	}

	out, err := Render(data, template)
	if err != nil {
		if errors.Is(err, ErrUnknownTemplate) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unknown template", nil)
			return
		}
		telemetry.Error("render.failed", map[string]any{
			"request_id":  middleware.RequestIDFromContext(c),
			"document_id": doc.ID,
			"template":    template,
			"error":       err.Error(),
		})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to render document", nil)
		return
	}

	writePDF(c, exportFileName(doc.FileName, template), out)
}

type renderRequest struct {
	Template string          `json:"template"`
	Data     json.RawMessage `json:"data"`
}

func (h *Handler) render(c *gin.Context) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if len(req.Data) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "data is required", nil)
		return
	}
	if req.Template == "" {
		req.Template = TemplateProfessional
	}

	data, err := resume.Decode(req.Data)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid resume data", nil)
		return
	}

	out, err := Render(data, req.Template)
	if err != nil {
		if errors.Is(err, ErrUnknownTemplate) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unknown template", nil)
			return
		}
		telemetry.Error("render.failed", map[string]any{
			"request_id": middleware.RequestIDFromContext(c),
			"template":   req.Template,
			"error":      err.Error(),
		})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to render document", nil)
		return
	}

	writePDF(c, exportFileName("resume", req.Template), out)
}

func writePDF(c *gin.Context, fileName string, out []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "application/pdf", out)
}

// exportFileName derives the download name from the uploaded file name,
// swapping the extension and tagging the template variant.
func exportFileName(original, template string) string {
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	if base == "" || base == "." {
		base = "resume"
	}
	return base + "-" + template + ".pdf"
}
