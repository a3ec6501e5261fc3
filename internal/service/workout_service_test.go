package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestWorkoutCreateNormalizesInput(t *testing.T) {
	repo := newFakeWorkoutRepo()
	svc := NewWorkoutService(repo)

	workout, err := svc.Create(context.Background(), WorkoutInput{
		Name:       "  Bench Press  ",
		Level:      "Intermediate",
		Style:      "Barbell",
		BodyParts:  "Chest, Triceps",
		Tags:       "push\nstrength",
		YouTubeRaw: "https://youtu.be/dQw4w9WgXcQ",
		Rating:     4.5,
	})
	require.NoError(t, err)

	assert.Equal(t, "Bench Press", workout.Name)
	assert.Equal(t, "bench-press", workout.Slug)
	assert.Equal(t, []string{"Chest", "Triceps"}, workout.BodyParts)
	assert.Equal(t, "Chest", workout.BodyPart)
	assert.Equal(t, []string{"push", "strength"}, workout.Tags)
	assert.Equal(t, "dQw4w9WgXcQ", workout.YouTubeID)
	assert.False(t, workout.ID.IsZero())
}

func TestWorkoutCreateRequiresName(t *testing.T) {
	svc := NewWorkoutService(newFakeWorkoutRepo())

	_, err := svc.Create(context.Background(), WorkoutInput{Name: "   "})
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestWorkoutCreateRejectsTakenSlug(t *testing.T) {
	repo := newFakeWorkoutRepo()
	svc := NewWorkoutService(repo)

	_, err := svc.Create(context.Background(), WorkoutInput{Name: "Bench Press"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), WorkoutInput{Name: "Other", Slug: "bench-press"})
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestWorkoutUpdateKeepsCreatedAt(t *testing.T) {
	repo := newFakeWorkoutRepo()
	svc := NewWorkoutService(repo)

	created, err := svc.Create(context.Background(), WorkoutInput{Name: "Bench Press"})
	require.NoError(t, err)

	// Pretend the record is old.
	stored := repo.workouts[created.ID]
	stored.CreatedAt = time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)

	updated, err := svc.Update(context.Background(), created.ID, WorkoutInput{Name: "Incline Bench Press"})
	require.NoError(t, err)

	assert.Equal(t, "Incline Bench Press", updated.Name)
	assert.Equal(t, "incline-bench-press", updated.Slug)
	assert.Equal(t, stored.CreatedAt, updated.CreatedAt)
}

func TestWorkoutUpdateAllowsOwnSlug(t *testing.T) {
	repo := newFakeWorkoutRepo()
	svc := NewWorkoutService(repo)

	created, err := svc.Create(context.Background(), WorkoutInput{Name: "Bench Press"})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, WorkoutInput{Name: "Bench Press", Slug: "bench-press", Rating: 5})
	assert.NoError(t, err)
}

func TestWorkoutUpdateMissing(t *testing.T) {
	svc := NewWorkoutService(newFakeWorkoutRepo())

	_, err := svc.Update(context.Background(), primitive.NewObjectID(), WorkoutInput{Name: "Anything"})
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
}

func TestWorkoutDelete(t *testing.T) {
	repo := newFakeWorkoutRepo()
	svc := NewWorkoutService(repo)

	created, err := svc.Create(context.Background(), WorkoutInput{Name: "Bench Press"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), ErrWorkoutNotFound)
}

func TestWorkoutLegacySingleBodyPart(t *testing.T) {
	svc := NewWorkoutService(newFakeWorkoutRepo())

	workout, err := svc.Create(context.Background(), WorkoutInput{Name: "Plank", BodyPart: "Core"})
	require.NoError(t, err)

	assert.Equal(t, "Core", workout.BodyPart)
	assert.Empty(t, workout.BodyParts)
}
