package handler

import (
	"net/http"
	"strings"
	"time"

	"memento-backend/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, generateHandler *GenerateHandler, pageHandler *PageHandler) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(AccessLog())

	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           time.Duration(cfg.CORS.MaxAge) * time.Second,
	}
	if len(corsConfig.AllowOrigins) == 1 && corsConfig.AllowOrigins[0] == "*" {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	router.GET("/", pageHandler.Index)
	router.GET("/health", pageHandler.Health)

	// 只有站内路径才由本服务提供图像
	if imageURL := cfg.Generation.ImageURL; strings.HasPrefix(imageURL, "/") && !strings.HasPrefix(imageURL, "/api/") {
		router.GET(imageURL, pageHandler.Image)
		router.HEAD(imageURL, pageHandler.Image)
	}

	api := router.Group("/api")
	{
		api.POST("/generate-image", generateHandler.GenerateImage)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return router
}
