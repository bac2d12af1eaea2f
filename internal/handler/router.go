package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"repair-storefront/internal/handler/api"
	"repair-storefront/internal/handler/middleware"
	"repair-storefront/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	catalogHandler *api.CatalogHandler,
	quoteHandler *api.QuoteHandler,
	modalHandler *api.ModalHandler,
	bookingHandler *api.BookingHandler,
	authHandler *api.AuthHandler,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, logger, catalogHandler, quoteHandler, modalHandler, bookingHandler, authHandler, sessionMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	catalogHandler *api.CatalogHandler,
	quoteHandler *api.QuoteHandler,
	modalHandler *api.ModalHandler,
	bookingHandler *api.BookingHandler,
	authHandler *api.AuthHandler,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(sessionMiddleware.EnsureSession())
	{
		catalog := apiGroup.Group("/catalog")
		{
			addRoutes(catalog, []route{
				{Method: http.MethodGet, Path: "/brands", Handler: catalogHandler.ListBrands},
				{Method: http.MethodGet, Path: "/brands/:brandId/devices", Handler: catalogHandler.ListDevices},
				{Method: http.MethodGet, Path: "/devices/:deviceId/services", Handler: catalogHandler.ListServices},
			})
		}

		quote := apiGroup.Group("/quote")
		{
			addRoutes(quote, []route{
				{Method: http.MethodGet, Path: "", Handler: quoteHandler.GetSelection},
				{Method: http.MethodPost, Path: "/toggle", Handler: quoteHandler.ToggleService},
				{Method: http.MethodPost, Path: "/clear", Handler: quoteHandler.ClearSelection},
				{Method: http.MethodPost, Path: "/request", Handler: quoteHandler.RequestQuote},
			})
		}

		modal := apiGroup.Group("/modal")
		{
			addRoutes(modal, []route{
				{Method: http.MethodGet, Path: "", Handler: modalHandler.GetActive},
				{Method: http.MethodPost, Path: "/open", Handler: modalHandler.Open},
				{Method: http.MethodPost, Path: "/close", Handler: modalHandler.Close},
			})
		}

		addRoutes(apiGroup, []route{
			{
				Method:  http.MethodPost,
				Path:    "/booking",
				Handler: bookingHandler.Submit,
				Mw:      []gin.HandlerFunc{middleware.InquiryRateLimit(cfg.RateLimit, logger)},
			},
		})

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}
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
