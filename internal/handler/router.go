package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fairway/internal/handler/api"
	"fairway/internal/handler/middleware"
	"fairway/internal/pkg/config"
	"fairway/internal/pkg/ratelimit"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, teeTimeHandler *api.TeeTimeHandler, bookkeepingHandler *api.BookkeepingHandler, limiter *ratelimit.Limiter) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, teeTimeHandler, bookkeepingHandler, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, teeTimeHandler *api.TeeTimeHandler, bookkeepingHandler *api.BookkeepingHandler, limiter *ratelimit.Limiter) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limited := middleware.RateLimitMiddleware(limiter)

	apiGroup := engine.Group("/api")
	{
		teetimes := apiGroup.Group("/teetimes")
		{
			addRoutes(teetimes, []route{
				{Method: http.MethodGet, Path: "", Handler: teeTimeHandler.Search},
				{Method: http.MethodGet, Path: "/dates", Handler: teeTimeHandler.Dates},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/scrape", Handler: teeTimeHandler.TriggerScrape, Mw: []gin.HandlerFunc{limited}},
			{Method: http.MethodPost, Path: "/course-requests", Handler: bookkeepingHandler.CreateCourseRequest, Mw: []gin.HandlerFunc{limited}},
			{Method: http.MethodGet, Path: "/course-requests", Handler: bookkeepingHandler.ListCourseRequests},
			{Method: http.MethodPost, Path: "/bug-reports", Handler: bookkeepingHandler.CreateBugReport, Mw: []gin.HandlerFunc{limited}},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
