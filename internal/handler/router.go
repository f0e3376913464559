package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rifas-api/internal/handler/api"
	"rifas-api/internal/handler/middleware"
	"rifas-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Pool        *api.PoolHandler
	Reservation *api.ReservationHandler
	Invite      *api.InviteHandler
	Guest       *api.GuestHandler
	Checkin     *api.CheckinHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Rendered credential images.
	engine.Static(cfg.QR.PublicPrefix, cfg.QR.StorageDir)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		pools := apiGroup.Group("/pools")
		pools.Use(authMiddleware.RequireAuth())
		{
			addRoutes(pools, []route{
				{Method: http.MethodPost, Path: "/raffles", Handler: h.Pool.CreateRaffle},
				{Method: http.MethodPost, Path: "/events", Handler: h.Pool.CreateEvent},
				{Method: http.MethodGet, Path: "", Handler: h.Pool.List},
				{Method: http.MethodGet, Path: "/short/:shortName", Handler: h.Pool.GetByShortName},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Pool.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Pool.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Pool.Delete},
				{Method: http.MethodGet, Path: "/:id/progress", Handler: h.Pool.Progress},
				{Method: http.MethodPost, Path: "/:id/invite-code/rotate", Handler: h.Pool.RotateInviteCode},
				{Method: http.MethodPost, Path: "/:id/reservations", Handler: h.Reservation.Create},
				{Method: http.MethodGet, Path: "/:id/reservations", Handler: h.Reservation.ListByPool},
				{Method: http.MethodGet, Path: "/:id/invites", Handler: h.Invite.ListPending},
				{Method: http.MethodPost, Path: "/:id/guests", Handler: h.Guest.CreateGuest},
				{Method: http.MethodGet, Path: "/:id/guests", Handler: h.Guest.ListGuests},
				{Method: http.MethodPost, Path: "/:id/groups", Handler: h.Guest.CreateGroup},
				{Method: http.MethodGet, Path: "/:id/groups", Handler: h.Guest.ListGroups},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Release},
			})
		}

		invites := apiGroup.Group("/invites")
		invites.Use(authMiddleware.RequireAuth())
		{
			addRoutes(invites, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Invite.Request},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: h.Invite.Accept},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Invite.Cancel},
			})
		}

		guests := apiGroup.Group("/guests")
		guests.Use(authMiddleware.RequireAuth())
		{
			addRoutes(guests, []route{
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Guest.RevokeGuest},
			})
		}

		groups := apiGroup.Group("/groups")
		groups.Use(authMiddleware.RequireAuth())
		{
			addRoutes(groups, []route{
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Guest.UpdateGroup},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Guest.RevokeGroup},
			})
		}

		// Token possession authorizes resolve and confirm; check-in is the
		// organizer-side scan and stays behind auth.
		checkin := apiGroup.Group("/checkin")
		{
			addRoutes(checkin, []route{
				{Method: http.MethodGet, Path: "/:token", Handler: h.Checkin.Resolve},
				{Method: http.MethodPost, Path: "/:token/confirm", Handler: h.Checkin.Confirm},
				{Method: http.MethodPost, Path: "/:token/present", Handler: h.Checkin.CheckIn,
					Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
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
