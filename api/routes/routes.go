package routes

import (
	"net/http"

	"github.com/ArowuTest/lotto-tracker/internal/config"
	"github.com/ArowuTest/lotto-tracker/internal/handlers"
	"github.com/ArowuTest/lotto-tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// HandlerDependencies groups the handlers the router wires up
type HandlerDependencies struct {
	AuthHandler *handlers.AuthHandler
	DrawHandler *handlers.DrawHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(cfg))

	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		public.POST("/auth/login", deps.AuthHandler.Login)

		public.GET("/draws", deps.DrawHandler.GetDraws)
		public.POST("/draws/evaluate", deps.DrawHandler.EvaluateNumbers)
		public.POST("/fixed-sets/parse", deps.DrawHandler.ParseFixedSets)
	}

	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		protected.POST("/draws/update", deps.DrawHandler.UpdateDraws)
	}

	return router
}
