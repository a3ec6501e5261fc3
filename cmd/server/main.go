package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nfg/fitness-site/internal/api"
	"nfg/fitness-site/internal/config"
	"nfg/fitness-site/internal/repository/mongo"
	"nfg/fitness-site/internal/service"
	"nfg/fitness-site/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	log.Println("Starting fitness site server...")

	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file.")
	}

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureWorkoutIndexes(ctx, appDB.Collection("workouts"))
		mongo.EnsureStyleIndexes(ctx, appDB.Collection("styles"))
		mongo.EnsureProgramIndexes(ctx, appDB)
		mongo.EnsureHomePlanIndexes(ctx, appDB.Collection("home_plans"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	var fileStorage storage.FileStorage
	switch cfg.Media.Backend {
	case "s3":
		fileStorage, err = storage.NewS3Storage(cfg.S3)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
		}
		log.Println("Using S3 media storage.")
	default:
		fileStorage = storage.NewLocalStorage(cfg.Media.Root, cfg.Media.URLPrefix)
		log.Printf("Using local media storage at %s", cfg.Media.Root)
	}

	// --- Initialize Repositories ---
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)
	styleRepo := mongo.NewMongoStyleRepository(appDB)
	recipeRepo := mongo.NewMongoRecipeRepository(appDB)
	programRepo := mongo.NewMongoProgramRepository(appDB)
	planRepo := mongo.NewMongoHomePlanRepository(appDB)

	// --- Initialize Services ---
	if cfg.Session.Secret == "" {
		log.Fatal("FATAL: SESSION_SECRET must be set")
	}
	throttle := service.NewLoginThrottle(5, 15*time.Minute)
	verifier := service.NewEnvCredentials(cfg.Admin)
	authService := service.NewAuthService(verifier, throttle, cfg.Session.Secret, cfg.Session.TTL)
	workoutService := service.NewWorkoutService(workoutRepo)
	styleService := service.NewStyleService(styleRepo)
	programService := service.NewProgramService(programRepo)
	planService := service.NewHomePlanService(planRepo)
	contentService := service.NewContentService(workoutRepo, recipeRepo, styleService)

	// Seed the default styles once, when the collection is empty.
	{
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := styleService.SeedDefaults(ctx); err != nil {
			log.Printf("WARN: seeding default styles: %v", err)
		}
		cancel()
	}

	// --- Initialize Gin Engine ---
	router := gin.Default()

	mediaPrefix, mediaRoot := "", ""
	if cfg.Media.Backend != "s3" {
		mediaPrefix, mediaRoot = cfg.Media.URLPrefix, cfg.Media.Root
	}

	pingStore := func(ctx context.Context) error {
		return mongo.Ping(ctx, dbClient)
	}

	api.SetupRoutes(
		router,
		api.NewAuthHandler(authService, cfg.Session.SecureCookie),
		api.NewContentHandler(contentService, programService, planService, pingStore),
		api.NewAdminWorkoutHandler(workoutService, fileStorage),
		api.NewAdminStyleHandler(styleService),
		api.NewAdminProgramHandler(programService, fileStorage),
		api.NewAdminHomePlanHandler(planService, fileStorage),
		authService,
		mediaPrefix, mediaRoot,
	)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
