package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tour-booking-api/internal/domain/user"
	"tour-booking-api/internal/handler/api"
	"tour-booking-api/internal/handler/middleware"
	"tour-booking-api/internal/pkg/config"
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
	authHandler *api.AuthHandler,
	pricingHandler *api.PricingHandler,
	tourHandler *api.TourHandler,
	bookingHandler *api.BookingHandler,
	rateAdminHandler *api.RateAdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, pricingHandler, tourHandler, bookingHandler, rateAdminHandler, authMiddleware)
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
	authHandler *api.AuthHandler,
	pricingHandler *api.PricingHandler,
	tourHandler *api.TourHandler,
	bookingHandler *api.BookingHandler,
	rateAdminHandler *api.RateAdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		tours := apiGroup.Group("/tours")
		{
			addRoutes(tours, []route{
				{Method: http.MethodGet, Path: "", Handler: tourHandler.ListTours},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: tourHandler.CheckAvailability},
			})

			purchase := tours.Group("")
			purchase.Use(authMiddleware.RequireAuth())
			addRoutes(purchase, []route{
				{Method: http.MethodPost, Path: "/:id/tickets", Handler: tourHandler.PurchaseTicket},
			})
		}

		pricing := apiGroup.Group("/pricing")
		{
			addRoutes(pricing, []route{
				{Method: http.MethodPost, Path: "/quote", Handler: pricingHandler.Quote},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPost, Path: "/:id/deposit-intent", Handler: bookingHandler.CreateDepositIntent},
			})

			staffOnly := bookings.Group("")
			staffOnly.Use(authMiddleware.RequireRoleAtLeast(user.RoleOperator))
			addRoutes(staffOnly, []route{
				{Method: http.MethodPost, Path: "/:id/recalculate", Handler: bookingHandler.RecalculateBooking},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		admin.Use(authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/rates/:key", Handler: rateAdminHandler.GetRateConfig},
				{Method: http.MethodPut, Path: "/rates/:key", Handler: rateAdminHandler.UpdateRateConfig},
				{Method: http.MethodGet, Path: "/rates/:key/changes", Handler: rateAdminHandler.ListRateConfigChanges},
				{Method: http.MethodGet, Path: "/modifiers", Handler: rateAdminHandler.ListModifiers},
				{Method: http.MethodPost, Path: "/modifiers", Handler: rateAdminHandler.CreateModifier},
				{Method: http.MethodPatch, Path: "/modifiers/:id", Handler: rateAdminHandler.SetModifierActive},
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
