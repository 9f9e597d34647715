package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"newvision/database"
	"newvision/internal/controllers"
	"newvision/internal/extractor"
	"newvision/internal/filestore"
	"newvision/internal/repository"
	"newvision/internal/services"
	"newvision/internal/utils"
	"newvision/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	backend := os.Getenv("STORAGE_BACKEND")
	if backend == "" {
		backend = "postgres"
	}
	log.Printf("Storage backend: %s", backend)

	var (
		newsRepo     repository.NewsRepository
		videoRepo    repository.VideoRepository
		postRepo     repository.FacebookPostRepository
		settingsRepo repository.SettingsRepository
		userRepo     repository.UserRepository
	)

	switch backend {
	case "file":
		dataDir := os.Getenv("DATA_DIR")
		if dataDir == "" {
			dataDir = "data"
		}
		store, err := filestore.New(dataDir)
		if err != nil {
			log.Fatalf("Failed to initialize file store: %v", err)
		}
		if newsRepo, err = repository.NewFileNewsRepository(store); err != nil {
			log.Fatalf("Failed to initialize news store: %v", err)
		}
		if videoRepo, err = repository.NewFileVideoRepository(store); err != nil {
			log.Fatalf("Failed to initialize video store: %v", err)
		}
		if postRepo, err = repository.NewFileFacebookPostRepository(store); err != nil {
			log.Fatalf("Failed to initialize Facebook post store: %v", err)
		}
		if settingsRepo, err = repository.NewFileSettingsRepository(store); err != nil {
			log.Fatalf("Failed to initialize settings store: %v", err)
		}
		if userRepo, err = repository.NewFileUserRepository(store); err != nil {
			log.Fatalf("Failed to initialize user store: %v", err)
		}
	case "postgres":
		database.ConnectDatabase()
		if err := database.MigrateDatabase(); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}
		newsRepo = repository.NewNewsRepository(database.DB)
		videoRepo = repository.NewVideoRepository(database.DB)
		postRepo = repository.NewFacebookPostRepository(database.DB)
		settingsRepo = repository.NewSettingsRepository(database.DB)
		userRepo = repository.NewUserRepository(database.DB)
	default:
		log.Fatalf("Unknown STORAGE_BACKEND %q (want file or postgres)", backend)
	}

	// The news repository gets a Redis read cache when REDIS_URL is set.
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}
		newsRepo = repository.NewCachedNewsRepository(newsRepo, redis.NewClient(opt))
		log.Println("News caching via Redis enabled")
	}

	if err := utils.SeedAdminUser(userRepo); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	ex := extractor.New()
	newsService := services.NewNewsService(newsRepo)

	newsController := controllers.NewNewsController(newsService, ex)
	videoController := controllers.NewVideoController(videoRepo, ex)
	postController := controllers.NewFacebookPostController(postRepo)
	settingsController := controllers.NewSettingsController(settingsRepo)
	authController := controllers.NewAuthController(userRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "New Vision API is running",
			"version": "1.0.0",
			"status":  "healthy",
			"storage": backend,
		})
	})

	routes.RegisterAuthRoutes(router, authController)
	routes.RegisterNewsRoutes(router, newsController)
	routes.RegisterVideoRoutes(router, videoController)
	routes.RegisterFacebookPostRoutes(router, postController)
	routes.RegisterSettingsRoutes(router, settingsController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Server starting on port %s", port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
