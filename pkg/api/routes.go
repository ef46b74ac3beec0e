package api

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"district-scheduler/pkg/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

const formTemplate = "form.html"

// RouterOptions configures NewRouter
type RouterOptions struct {
	Logger         *zap.Logger
	AllowedOrigins []string
	MetricsEnabled bool
	MetricsPath    string
}

// NewRouter wires middleware and every route onto a new gin engine
func NewRouter(h *Handlers, opts RouterOptions) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(logger))
	router.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	router.GET("/", h.ShowForm)
	router.GET("/districts", h.Districts)
	router.POST("/submit", h.SubmitForm)
	router.GET("/health", h.HealthCheck)

	apiGroup := router.Group("/api", middleware.CORS(opts.AllowedOrigins...))
	apiGroup.GET("/managers", h.ListManagers)
	apiGroup.GET("/managers/:name/districts", h.ManagerDistricts)
	apiGroup.POST("/submissions", h.SubmitJSON)
	apiGroup.OPTIONS("/*path", func(c *gin.Context) {})

	if opts.MetricsEnabled {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		router.GET(path, gin.WrapH(promhttp.Handler()))
	}

	return router
}
