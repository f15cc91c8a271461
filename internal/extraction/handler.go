package extraction

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"docextract-backend/internal/shared/server/middleware"
	"docextract-backend/internal/shared/server/respond"
	"docextract-backend/internal/shared/telemetry"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires the extraction endpoint to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches extraction routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/extract", h.extract)
}

func (h *Handler) extract(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	payload, err := h.Svc.Extract(c.Request.Context(), userID, fileHeader.Filename, mimeType, content)
	if err != nil {
		telemetry.Error("extraction.failed", map[string]any{
			"request_id": middleware.RequestIDFromContext(c),
			"user_id":    userID,
			"file_name":  fileHeader.Filename,
			"error":      err.Error(),
		})
		switch {
		case errors.Is(err, ErrNoFile):
			respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		case errors.Is(err, ErrNotConfigured):
			respond.Error(c, http.StatusInternalServerError, "not_configured", "extraction is not configured", nil)
		case errors.Is(err, ErrStorage):
			respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to save extraction", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "upstream_error", "failed to process document", nil)
		}
		return
	}

	c.Data(http.StatusOK, "application/json", payload)
}
