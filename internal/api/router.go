package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"textile-market-backend/config"
	"textile-market-backend/internal/labeler"
	"textile-market-backend/internal/mw"
	"textile-market-backend/internal/storage"
	"textile-market-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, files *storage.FileStore, l labeler.Labeler, cfg *config.ServerConfig) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 0 || cfg.CORSOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	}
	r.Use(cors.New(corsCfg))

	handler := NewHandler(s, files, l)

	// Initialize middleware
	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	respCache := mw.NewResponseCache(cfg.CacheTTL)
	caching := respCache.Middleware()

	r.GET("/", handler.GetInfo)
	r.Static("/uploads", files.Dir())

	// API group
	api := r.Group("/api")
	api.Use(rateLimiter, respCache.Invalidate())
	{
		api.POST("/upload", handler.UploadMaterial)
		api.POST("/analyze", handler.AnalyzeImage)

		api.GET("/materials", caching, handler.ListMaterials)
		api.GET("/materials/:id", handler.GetMaterial)
		api.GET("/factory/materials", caching, handler.ListFactoryMaterials)

		api.POST("/orders", handler.CreateOrder)
		api.GET("/orders", handler.ListOrders)

		api.GET("/stats", caching, handler.GetStats)
	}

	return r
}
