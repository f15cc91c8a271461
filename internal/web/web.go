// Package web serves the browser pages. Pages are rendered from embedded
// templates and talk to the JSON API with small inline scripts, so the
// backend stays the single deployable.
package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler serves the HTML pages.
type Handler struct {
	templates *template.Template
}

// NewHandler parses the embedded templates.
func NewHandler() *Handler {
	return &Handler{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// Register mounts the pages on the engine.
func (h *Handler) Register(r *gin.Engine) {
	r.SetHTMLTemplate(h.templates)
	r.GET("/", h.index)
	r.GET("/history", h.history)
	r.GET("/history/:id", h.detail)
}

func (h *Handler) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"Active": "upload"})
}

func (h *Handler) history(c *gin.Context) {
	c.HTML(http.StatusOK, "history.html", gin.H{"Active": "history"})
}

func (h *Handler) detail(c *gin.Context) {
	c.HTML(http.StatusOK, "detail.html", gin.H{
		"Active":     "history",
		"DocumentID": c.Param("id"),
	})
}
