package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"crypto-pulse/api/handlers"
	"crypto-pulse/api/middleware"
	"crypto-pulse/session"
	"crypto-pulse/web"
)

func New(st *session.State) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())
	r.Use(middleware.RequestLogging())

	r.SetHTMLTemplate(web.Templates())

	// Dashboard page
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", nil)
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Prometheus
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.PUT("/session/key", handlers.SetAPIKeyHandler(st))
		api.POST("/accounts", handlers.AddAccountHandler(st))
		api.GET("/accounts", handlers.ListAccountsHandler(st))
		api.GET("/posts", handlers.ListPostsHandler(st))
		api.GET("/sentiment", handlers.GetSentimentHandler(st))
	}

	return r
}
