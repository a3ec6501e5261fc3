package service

import (
	"context"
	"errors"
	"fmt"

	"nfg/fitness-site/internal/domain"
	"nfg/fitness-site/internal/repository"
)

// sampleWorkouts is the starter catalog installed by the seed command.
var sampleWorkouts = []WorkoutInput{
	{
		Name:        "Push-Up",
		Level:       "Beginner",
		BodyPart:    "Chest",
		Style:       "BodyWeight",
		IsFavorite:  true,
		Rating:      4.6,
		Tags:        "push, chest, bodyweight",
		Images:      []string{"/static/img/pushup_1.jpg", "/static/img/pushup_2.jpg"},
		MuscleImage: "/static/img/muscles_chest.png",
		Info:        "Push-ups build chest, triceps, shoulders, and core. Great for upper body endurance and stability.",
		Tips:        "Keep a straight line from head to heels.\nElbows ~45° from torso; don't flare.\nBrace core, squeeze glutes, control the descent.",
		YouTubeRaw:  "dQw4w9WgXcQ",
	},
	{
		Name:     "Goblet Squat",
		Level:    "Beginner",
		BodyPart: "Legs",
		Style:    "Dumbbell",
		Rating:   4.2,
		Tags:     "squat, legs, dumbbell",
	},
	{
		Name:     "Barbell Row",
		Level:    "Intermediate",
		BodyPart: "Back",
		Style:    "Barbell",
		Rating:   4.5,
		Tags:     "row, back, barbell, lats",
	},
	{
		Name:       "Deadlift",
		Level:      "Advanced",
		BodyPart:   "Back",
		Style:      "Barbell",
		IsFavorite: true,
		Rating:     4.9,
		Tags:       "hinge, back, hamstrings, barbell",
	},
}

var sampleRecipes = []domain.Recipe{
	{Name: "Protein Pancakes", URL: "https://example.com/protein-pancakes"},
	{Name: "Avocado Toast", URL: "https://example.com/avocado-toast"},
	{Name: "Green Smoothie Bowl", URL: "https://example.com/green-smoothie"},
}

// SeedSampleData installs the starter workouts and recipes. It is safe to run
// against a live database: workouts whose slug already exists are left alone,
// and recipes are upserted by name. Returns the number of workouts created
// and recipes upserted.
func SeedSampleData(ctx context.Context, workouts WorkoutService, recipes repository.RecipeRepository) (int, int, error) {
	created := 0
	for _, input := range sampleWorkouts {
		if _, err := workouts.Create(ctx, input); err != nil {
			if errors.Is(err, ErrSlugTaken) {
				continue
			}
			return created, 0, fmt.Errorf("seed workout %q: %w", input.Name, err)
		}
		created++
	}

	upserted := 0
	for i := range sampleRecipes {
		recipe := sampleRecipes[i]
		if err := recipes.Upsert(ctx, &recipe); err != nil {
			return created, upserted, fmt.Errorf("seed recipe %q: %w", recipe.Name, err)
		}
		upserted++
	}
	return created, upserted, nil
}
