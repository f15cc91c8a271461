package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "docextract-backend/internal/auth"
	"docextract-backend/internal/documents"
	"docextract-backend/internal/extraction"
	"docextract-backend/internal/render"
	"docextract-backend/internal/sessions"
	"docextract-backend/internal/shared/config"
	"docextract-backend/internal/shared/metrics"
	"docextract-backend/internal/shared/server/middleware"
	"docextract-backend/internal/shared/server/respond"
	"docextract-backend/internal/web"
)

// Deps carries the handlers and services the router mounts. Construction of
// repositories and services lives in bootstrap; the router only assembles
// middleware and routes.
type Deps struct {
	Guard      sessions.Guard
	GoogleAuth *googleauth.GoogleService
	Documents  *documents.Handler
	Extraction *extraction.Handler
	Render     *render.Handler
	Web        *web.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	if deps.Web != nil {
		deps.Web.Register(r)
	}

	root := r.Group("")
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(root)
	}

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	authed := api.Group("",
		middleware.Auth(deps.Guard),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				middleware.ExtractionGroup: {Rate: 0.2, Burst: 3},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && c.FullPath() == "/api/extract" {
					return middleware.ExtractionGroup
				}
				return ""
			},
		}),
	)
	registerMeRoutes(authed)
	if deps.Documents != nil {
		deps.Documents.RegisterRoutes(authed)
	}
	if deps.Extraction != nil {
		deps.Extraction.RegisterRoutes(authed)
	}
	if deps.Render != nil {
		deps.Render.RegisterRoutes(authed)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
