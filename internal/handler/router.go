package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stayops/internal/handler/api"
	"stayops/internal/handler/middleware"
	"stayops/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Availability *api.AvailabilityHandler
	Booking      *api.BookingHandler
	Stay         *api.StayHandler
	Reservation  *api.ReservationHandler
	FrontDesk    *api.FrontDeskHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, rdb *redis.Client, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, rdb, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, rdb *redis.Client, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		availability := apiGroup.Group("/availability")
		availability.Use(middleware.SearchRateLimit(rdb, cfg.Redis))
		availability.Use(authMiddleware.OptionalAuth())
		addRoutes(availability, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Availability.Search},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/facilities", Handler: h.FrontDesk.ListFacilities},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			staffOnly := authMiddleware.RequireStaff()
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPut, Path: "/:id/details", Handler: h.Booking.SubmitDetails},
				{Method: http.MethodPost, Path: "/:id/code", Handler: h.Booking.AssignCode},
				{Method: http.MethodPost, Path: "/:id/payment", Handler: h.Booking.ConfirmPersonalPayment},
				{Method: http.MethodPost, Path: "/:id/deposit", Handler: h.Booking.ConfirmGroupPayment},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel},
				{Method: http.MethodPost, Path: "/:id/services", Handler: h.Stay.OrderServices},
				{Method: http.MethodPost, Path: "/:id/check-in", Handler: h.Stay.CheckIn, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodPost, Path: "/:id/extend", Handler: h.Stay.Extend, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodPost, Path: "/:id/check-out", Handler: h.Stay.CheckOut, Mw: []gin.HandlerFunc{staffOnly}},
			})
		}

		frontDesk := apiGroup.Group("/front-desk")
		frontDesk.Use(authMiddleware.RequireAuth())
		frontDesk.Use(authMiddleware.RequireStaff())
		addRoutes(frontDesk, []route{
			{Method: http.MethodGet, Path: "/arrivals", Handler: h.Reservation.Arrivals},
			{Method: http.MethodGet, Path: "/in-house", Handler: h.Reservation.InHouse},
			{Method: http.MethodGet, Path: "/rooms", Handler: h.FrontDesk.RoomBoard},
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
