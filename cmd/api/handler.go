package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authUsecase "github.com/palloncino/storage-server-app-01/internal/auth/usecase"
	clientUsecase "github.com/palloncino/storage-server-app-01/internal/client/usecase"
	productUsecase "github.com/palloncino/storage-server-app-01/internal/product/usecase"
	userUsecase "github.com/palloncino/storage-server-app-01/internal/user/usecase"
	"github.com/palloncino/storage-server-app-01/pkg/config"
	"github.com/palloncino/storage-server-app-01/pkg/logger"
	"github.com/palloncino/storage-server-app-01/pkg/ratelimit"
	"github.com/palloncino/storage-server-app-01/pkg/storage"
)

// Handler owns the HTTP server wiring
type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	userUsecase    userUsecase.UserUsecase
	clientUsecase  clientUsecase.ClientUsecase
	productUsecase productUsecase.ProductUsecase
	images         *storage.ImageStore
	config         *config.Config
}

// NewHandler creates a new Handler
func NewHandler(authUc authUsecase.AuthUsecase, userUc userUsecase.UserUsecase, clientUc clientUsecase.ClientUsecase, productUc productUsecase.ProductUsecase, images *storage.ImageStore, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:    authUc,
		userUsecase:    userUc,
		clientUsecase:  clientUc,
		productUsecase: productUc,
		images:         images,
		config:         cfg,
	}
}

// Start builds the gin engine and serves until the listener fails.
func (h *Handler) Start(addr string) error {
	gin.SetMode(h.config.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())
	r.Use(requestLogMiddleware())
	r.Use(ratelimit.New(h.config.RateLimitRPS, h.config.RateBurst).Middleware())

	// Uploaded product images are served straight from disk.
	r.Static("/images", h.images.Dir())

	SetupRoutes(r, h)

	r.NoRoute(func(c *gin.Context) {
		logger.Log.Warnf("404 - Not Found: %s", c.Request.URL.Path)
		c.JSON(http.StatusNotFound, gin.H{"message": "Resource not found"})
	})

	return r.Run(addr)
}

// corsMiddleware allows browser clients on other origins to reach the API.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// requestLogMiddleware writes one line per completed request.
func requestLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Log.WithFields(map[string]any{
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Infof("%s %s %d", c.Request.Method, c.Request.URL.Path, c.Writer.Status())
	}
}
