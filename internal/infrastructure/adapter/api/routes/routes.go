package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/external"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups the API handlers mounted by SetupRoutes
type Handlers struct {
	Challenge *handler.ChallengeHandler
	Money     *handler.MoneyHandler
	User      *handler.UserHandler
}

// SetupRoutes configures all the routes for the API. Everything under /api
// requires an authenticated principal.
func SetupRoutes(router *gin.Engine, handlers Handlers, accounts external.AccountProvider, logger coreport.Logger) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.Use(middleware.Auth(accounts, logger))
	{
		api.GET("/profile", handlers.User.GetProfile)
		api.GET("/balance", handlers.User.GetBalance)

		api.POST("/challenge", handlers.Challenge.CreateChallenge)
		api.POST("/challenge-accept", handlers.Challenge.AcceptChallenge)
		api.GET("/challenge/:id", handlers.Challenge.GetChallenge)
		api.GET("/challenges", handlers.Challenge.ListChallenges)

		api.POST("/invoice", handlers.Money.CreateInvoice)
		api.POST("/send-payment", handlers.Money.SendPayment)
		api.GET("/transactions", handlers.Money.ListTransactions)
		api.GET("/transactions/:id", handlers.Money.GetTransaction)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(cors.New(CORSConfig(allowedOrigins)))
}

// CORSConfig allows credentialed requests from the given origins. With no
// origins configured every origin is allowed without credentials.
func CORSConfig(allowedOrigins []string) cors.Config {
	config := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(allowedOrigins) == 0 {
		config.AllowAllOrigins = true
		return config
	}
	config.AllowOrigins = allowedOrigins
	config.AllowCredentials = true
	return config
}
