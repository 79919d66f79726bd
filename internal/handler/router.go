package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rent-elegance/internal/handler/api"
	"rent-elegance/internal/handler/middleware"
	"rent-elegance/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Catalog *api.CatalogHandler
	Cart    *api.CartHandler
	Rental  *api.RentalHandler
	Device  *api.DeviceHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, handlers Handlers, deviceMiddleware *middleware.DeviceMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, deviceMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, deviceMiddleware *middleware.DeviceMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(deviceMiddleware.RequireDevice())
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/device", Handler: h.Device.Current},
			{Method: http.MethodGet, Path: "/counts", Handler: h.Cart.GetCounts},
			{Method: http.MethodGet, Path: "/checkout/summary", Handler: h.Cart.GetCheckoutSummary},
			{Method: http.MethodGet, Path: "/notification", Handler: h.Cart.GetNotification},
			{Method: http.MethodDelete, Path: "/notification", Handler: h.Cart.DismissNotification},
			{Method: http.MethodGet, Path: "/rental/quote", Handler: h.Rental.Quote},
		})

		products := apiGroup.Group("/products")
		addRoutes(products, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListProducts},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetProduct},
		})

		categories := apiGroup.Group("/categories")
		addRoutes(categories, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListCategories},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetCategory},
			{Method: http.MethodGet, Path: "/:id/products", Handler: h.Catalog.ListCategoryProducts},
		})

		cartGroup := apiGroup.Group("/cart")
		addRoutes(cartGroup, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Cart.GetCart},
			{Method: http.MethodDelete, Path: "", Handler: h.Cart.ClearCart},
			{Method: http.MethodPost, Path: "/items", Handler: h.Cart.AddItem},
			{Method: http.MethodPatch, Path: "/items/:productId", Handler: h.Cart.UpdateItem},
			{Method: http.MethodDelete, Path: "/items/:productId", Handler: h.Cart.RemoveItem},
		})

		wishlist := apiGroup.Group("/wishlist")
		addRoutes(wishlist, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Cart.GetWishlist},
			{Method: http.MethodPut, Path: "/:productId", Handler: h.Cart.AddToWishlist},
			{Method: http.MethodDelete, Path: "/:productId", Handler: h.Cart.RemoveFromWishlist},
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
