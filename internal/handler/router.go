package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"castle-rentals/internal/handler/api"
	"castle-rentals/internal/handler/middleware"
	"castle-rentals/internal/pkg/config"
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
	catalogHandler *api.CatalogHandler,
	cartHandler *api.CartHandler,
	quoteHandler *api.QuoteHandler,
	adminHandler *api.AdminHandler,
	logger *middleware.Logger,
	authMiddleware *middleware.AuthMiddleware,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, catalogHandler, cartHandler, quoteHandler, adminHandler, authMiddleware, sessionMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	catalogHandler *api.CatalogHandler,
	cartHandler *api.CartHandler,
	quoteHandler *api.QuoteHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		catalogGroup := apiGroup.Group("/catalog")
		{
			addRoutes(catalogGroup, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.ListItems},
				{Method: http.MethodGet, Path: "/:id", Handler: catalogHandler.GetItem},
			})
		}

		cartGroup := apiGroup.Group("/cart")
		cartGroup.Use(sessionMiddleware.Attach())
		{
			addRoutes(cartGroup, []route{
				{Method: http.MethodGet, Path: "", Handler: cartHandler.GetCart},
				{Method: http.MethodDelete, Path: "", Handler: cartHandler.ClearCart},
				{Method: http.MethodPost, Path: "/items", Handler: cartHandler.AddItem},
				{Method: http.MethodPatch, Path: "/items/:itemId", Handler: cartHandler.UpdateLine},
				{Method: http.MethodDelete, Path: "/items/:itemId", Handler: cartHandler.RemoveItem},
			})
		}

		quoteGroup := apiGroup.Group("/quote")
		quoteGroup.Use(sessionMiddleware.Attach())
		{
			addRoutes(quoteGroup, []route{
				{Method: http.MethodGet, Path: "", Handler: quoteHandler.GetDraft},
				{Method: http.MethodPost, Path: "/next", Handler: quoteHandler.NextStep},
				{Method: http.MethodPost, Path: "/back", Handler: quoteHandler.PreviousStep},
				{Method: http.MethodPut, Path: "/event", Handler: quoteHandler.SetEvent},
				{Method: http.MethodPut, Path: "/contact", Handler: quoteHandler.SetContact},
				{Method: http.MethodPatch, Path: "/items/:itemId", Handler: quoteHandler.UpdateItem},
				{Method: http.MethodPost, Path: "/submit", Handler: quoteHandler.Submit},
			})
		}

		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(authMiddleware.RequireOperator())
		{
			addRoutes(adminGroup, []route{
				{Method: http.MethodPost, Path: "/catalog/reorder", Handler: adminHandler.ReorderItems},
				{Method: http.MethodPost, Path: "/catalog/:itemId/photos/reorder", Handler: adminHandler.ReorderPhotos},
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
