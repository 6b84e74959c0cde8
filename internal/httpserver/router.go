package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deps carries the services the routes dispatch to.
type Deps struct {
	ProductSvc  ProductService
	CORSOrigins []string
}

// buildRouter wires routes for the API.
func buildRouter(logger *zap.Logger, store Pinger, deps Deps) (*gin.Engine, error) {
	if deps.ProductSvc == nil {
		return nil, errors.New("httpserver: product service is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.RedirectTrailingSlash = false
	router.Use(requestLogger(logger), recovery(logger), cors.New(corsConfig(deps.CORSOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(store))

	api := router.Group("/api")
	api.GET("", rootHandler)
	api.GET("/", rootHandler)

	products := &productHandlers{svc: deps.ProductSvc, logger: logger.Named("products")}
	api.GET("/products", products.list)
	api.POST("/products", products.create)
	api.GET("/products/:id", products.get)
	api.PUT("/products/:id", products.replace)
	api.DELETE("/products/:id", products.delete)

	router.NoRoute(func(c *gin.Context) {
		writeError(c, errRouteNotFound)
	})
	router.NoMethod(func(c *gin.Context) {
		writeError(c, errMethodNotAllowed)
	})

	return router, nil
}

func rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "MusicMerchant API"})
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
