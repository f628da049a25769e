package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	handlerHttp "github.com/mihretgelan/TasteReel/internal/handler/http"
	redisclient "github.com/mihretgelan/TasteReel/internal/infrastructure/cache"
	"github.com/mihretgelan/TasteReel/internal/infrastructure/config"
	"github.com/mihretgelan/TasteReel/internal/infrastructure/database"
	"github.com/mihretgelan/TasteReel/internal/infrastructure/jwt"
	"github.com/mihretgelan/TasteReel/internal/infrastructure/logger"
	passwordservice "github.com/mihretgelan/TasteReel/internal/infrastructure/password_service"
	"github.com/mihretgelan/TasteReel/internal/infrastructure/repository/mongodb"
	"github.com/mihretgelan/TasteReel/internal/infrastructure/storage"
	"github.com/mihretgelan/TasteReel/internal/infrastructure/store"
	"github.com/mihretgelan/TasteReel/internal/infrastructure/uuidgen"
	"github.com/mihretgelan/TasteReel/internal/infrastructure/validator"
	"github.com/mihretgelan/TasteReel/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()
	db := mongoClient.Client.Database(dbName)

	appConfig := config.NewConfig()
	appLogger := logger.NewStdLogger()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()
	hasher := passwordservice.NewHasher()
	jwtManager := jwt.NewJWTManager(jwtSecret, appConfig.GetTokenExpiry())
	jwtService := jwt.NewJWTService(jwtManager)

	// Dependency Injection: Repositories
	userRepo := mongodb.NewUserRepository(db)
	partnerRepo := mongodb.NewFoodPartnerRepository(db)
	foodRepo := mongodb.NewFoodRepository(db)
	likeRepo := mongodb.NewLikeRepository(db)
	saveRepo := mongodb.NewSaveRepository(db)

	// The unique (user, food) indexes are the concurrency guarantee for the
	// toggle flow; refuse to start without them.
	ctx := context.Background()
	if err := likeRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to ensure like indexes: %v", err)
	}
	if err := saveRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to ensure save indexes: %v", err)
	}

	// Video object storage
	videoStorage, err := storage.NewMinioStorage(
		ctx,
		os.Getenv("MINIO_ENDPOINT"),
		os.Getenv("MINIO_ACCESS_KEY"),
		os.Getenv("MINIO_SECRET_KEY"),
		appConfig.GetVideoBucketName(),
		os.Getenv("MINIO_USE_SSL") == "true",
	)
	if err != nil {
		log.Fatalf("Failed to connect to object storage: %v", err)
	}

	// Dependency Injection: Usecases
	authUsecase := usecase.NewAuthUsecase(userRepo, partnerRepo, hasher, jwtService, uuidGenerator, appValidator, appLogger)
	foodUsecase := usecase.NewFoodUsecase(foodRepo, partnerRepo, videoStorage, uuidGenerator, appLogger)
	reactionUsecase := usecase.NewReactionUsecase(likeRepo, saveRepo, foodRepo, uuidGenerator, appLogger)

	// Optional Dependency Injection: Redis feed cache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb := redisclient.NewRedisFromURL(ctx, redisURL)
		defer redisclient.Close(rdb)
		foodUsecase.SetFeedCache(store.NewFeedCacheStore(rdb))
	}

	// Setup API routes
	router := gin.Default()
	appRouter := handlerHttp.NewRouter(authUsecase, foodUsecase, reactionUsecase, jwtService, appLogger, appConfig)
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
