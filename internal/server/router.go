package server

import (
	"net/http"

	"gig-hire/internal/auth"
	"gig-hire/services/gigs/handler"

	"github.com/gin-gonic/gin"
)

// Deps are the collaborators the router wires into handlers
type Deps struct {
	Service    handler.HiringServiceInterface
	Verifier   auth.Verifier
	CookieName string
	// AllowedOrigins may call the API from a browser on another origin
	AllowedOrigins []string
	// WebSocket handles GET /ws; nil disables the endpoint
	WebSocket gin.HandlerFunc
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(deps Deps) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(CORSMiddleware(deps.AllowedOrigins))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	gigHandler := handler.NewGigHandler(deps.Service)
	requireActor := auth.RequireActor(deps.Verifier, deps.CookieName)

	api := router.Group("/api")

	gigs := api.Group("/gigs")
	{
		gigs.GET("", gigHandler.ListGigsHandler)
		gigs.GET("/:gig_id", gigHandler.GetGigHandler)
		gigs.POST("", requireActor, gigHandler.CreateGigHandler)
	}

	bids := api.Group("/bids", requireActor)
	{
		bids.POST("", gigHandler.PlaceBidHandler)
		bids.GET("/:gig_id", gigHandler.GetBidsHandler)
		bids.PATCH("/:bid_id/hire", gigHandler.HireHandler)
	}

	if deps.WebSocket != nil {
		router.GET("/ws", deps.WebSocket)
	}

	return router
}
