package main

import (
	api "github.com/palloncino/storage-server-app-01/cmd/api"
	authdomain "github.com/palloncino/storage-server-app-01/internal/auth/domain"
	authRepo "github.com/palloncino/storage-server-app-01/internal/auth/repository"
	authUsecase "github.com/palloncino/storage-server-app-01/internal/auth/usecase"
	clientdomain "github.com/palloncino/storage-server-app-01/internal/client/domain"
	clientRepo "github.com/palloncino/storage-server-app-01/internal/client/repository"
	clientUsecase "github.com/palloncino/storage-server-app-01/internal/client/usecase"
	productdomain "github.com/palloncino/storage-server-app-01/internal/product/domain"
	productRepo "github.com/palloncino/storage-server-app-01/internal/product/repository"
	productUsecase "github.com/palloncino/storage-server-app-01/internal/product/usecase"
	userUsecase "github.com/palloncino/storage-server-app-01/internal/user/usecase"
	"github.com/palloncino/storage-server-app-01/pkg/config"
	"github.com/palloncino/storage-server-app-01/pkg/database"
	"github.com/palloncino/storage-server-app-01/pkg/logger"
	"github.com/palloncino/storage-server-app-01/pkg/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Setup(cfg.LogLevel)

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &clientdomain.Client{}, &productdomain.Product{}); err != nil {
		logger.Log.Fatalf("Failed to migrate database: %v", err)
	}

	// Image folder for product uploads
	images, err := storage.NewImageStore(cfg.ImagesDir, cfg.PublicBaseURL())
	if err != nil {
		logger.Log.Fatalf("Failed to prepare images folder: %v", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	clientRepository := clientRepo.NewClientRepository(db)
	productRepository := productRepo.NewProductRepository(db)

	// Initialize use cases
	authUc := authUsecase.NewAuthUsecase(userRepository, cfg)
	userUc := userUsecase.NewUserUsecase(userRepository)
	clientUc := clientUsecase.NewClientUsecase(clientRepository)
	productUc := productUsecase.NewProductUsecase(productRepository, images)

	// Initialize HTTP handler
	handler := api.NewHandler(authUc, userUc, clientUc, productUc, images, cfg)

	logger.Log.Infof("Server running on http://0.0.0.0:%s", cfg.Port)
	if err := handler.Start("0.0.0.0:" + cfg.Port); err != nil {
		logger.Log.Fatalf("Failed to start server: %v", err)
	}
}
