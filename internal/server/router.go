package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authH "github.com/salamtec/inventory-service/internal/auth/handler"
	ledgerH "github.com/salamtec/inventory-service/internal/ledger/handler"
	notifH "github.com/salamtec/inventory-service/internal/notification/handler"
	reportH "github.com/salamtec/inventory-service/internal/report/handler"
)

type RouterConfig struct {
	AppEnv              string
	JWTSecret           string
	AuthHandler         *authH.AuthHandler
	StockHandler        *ledgerH.StockHandler
	ReportHandler       *reportH.ReportHandler
	NotificationHandler *notifH.NotificationHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.AppEnv != "dev" && cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	router.Use(RequestMetrics())

	// Public
	router.GET("/healthcheck", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.POST("/register", cfg.AuthHandler.Register)
	router.POST("/login", cfg.AuthHandler.Login)

	// Authenticated
	api := router.Group("/api")
	api.Use(RequireAuth(cfg.JWTSecret))
	{
		api.POST("/stock/add", cfg.StockHandler.AddStock)
		api.POST("/stock/remove", cfg.StockHandler.RemoveStock)
		api.GET("/products", cfg.StockHandler.ListProducts)
		api.GET("/dashboard", cfg.ReportHandler.Dashboard)
		api.GET("/history", cfg.ReportHandler.History)

		// Admin only
		admin := api.Group("/")
		admin.Use(RequireAdmin())
		admin.GET("/notifications", cfg.NotificationHandler.List)
		admin.POST("/notifications", cfg.NotificationHandler.Push)
		admin.DELETE("/notifications", cfg.NotificationHandler.Clear)
	}

	return router
}
