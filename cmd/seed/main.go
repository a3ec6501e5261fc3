// Command seed installs the starter workouts and recipes into MongoDB.
// It never drops data: existing workout slugs are skipped and recipes are
// upserted by name, so it is safe to re-run.
package main

import (
	"context"
	"log"
	"time"

	"nfg/fitness-site/internal/config"
	"nfg/fitness-site/internal/repository/mongo"
	"nfg/fitness-site/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)

	workoutService := service.NewWorkoutService(mongo.NewMongoWorkoutRepository(appDB))
	recipeRepo := mongo.NewMongoRecipeRepository(appDB)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	created, upserted, err := service.SeedSampleData(ctx, workoutService, recipeRepo)
	if err != nil {
		log.Fatalf("FATAL: Seeding failed: %v", err)
	}
	log.Printf("Seeded: %d workouts created, %d recipes upserted.", created, upserted)
}
