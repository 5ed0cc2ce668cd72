package api

import (
	"github.com/gin-gonic/gin"

	authDelivery "github.com/palloncino/storage-server-app-01/internal/auth/delivery"
	clientDelivery "github.com/palloncino/storage-server-app-01/internal/client/delivery"
	productDelivery "github.com/palloncino/storage-server-app-01/internal/product/delivery"
	userDelivery "github.com/palloncino/storage-server-app-01/internal/user/delivery"
)

// SetupRoutes registers every endpoint on the engine.
func SetupRoutes(r *gin.Engine, h *Handler) {
	authHandler := authDelivery.NewAuthHandler(h.authUsecase)
	userHandler := userDelivery.NewUserHandler(h.userUsecase)
	clientHandler := clientDelivery.NewClientHandler(h.clientUsecase)
	productHandler := productDelivery.NewProductHandler(h.productUsecase, h.images, h.config.MaxImageSize)

	authRequired := authDelivery.AuthMiddleware(h.authUsecase)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/verify-token", authHandler.VerifyToken)
			auth.POST("/signup", authHandler.Signup)
		}

		users := api.Group("/users")
		{
			users.GET("/get-users", userHandler.GetUsers)
			users.PUT("/edit-user", authRequired, userHandler.EditUser)
			users.DELETE("/delete-users", authRequired, userHandler.DeleteUsers)
		}

		clients := api.Group("/clients")
		clients.Use(authRequired)
		{
			clients.GET("/get-clients", clientHandler.GetClients)
			clients.POST("/create-client", clientHandler.CreateClient)
			clients.PUT("/edit-client", clientHandler.EditClient)
			clients.DELETE("/delete-clients", clientHandler.DeleteClients)
		}

		products := api.Group("/products")
		products.Use(authRequired)
		{
			products.GET("/get-products", productHandler.GetProducts)
			products.POST("/create-product", productHandler.CreateProduct)
			products.PUT("/edit-product", productHandler.EditProduct)
			products.DELETE("/delete-products", productHandler.DeleteProducts)
		}
	}
}
