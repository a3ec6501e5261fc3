package service

import (
	"context"
	"testing"

	"nfg/fitness-site/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// buildHierarchy creates one program with two weeks and three items spread
// across them, returning the program.
func buildHierarchy(t *testing.T, svc ProgramService) *domain.Program {
	t.Helper()
	ctx := context.Background()

	program, err := svc.Create(ctx, ProgramInput{Title: "12 Week Strength", Active: true})
	require.NoError(t, err)

	week1, err := svc.AddWeek(ctx, program.ID, 1, 0)
	require.NoError(t, err)
	week2, err := svc.AddWeek(ctx, program.ID, 2, 1)
	require.NoError(t, err)

	workoutID := primitive.NewObjectID()
	_, err = svc.AddItem(ctx, week1.ID, &workoutID, 0)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, week1.ID, nil, 1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, week2.ID, &workoutID, 0)
	require.NoError(t, err)

	return program
}

func TestProgramDeleteCascades(t *testing.T) {
	repo := newFakeProgramRepo()
	svc := NewProgramService(repo)
	program := buildHierarchy(t, svc)

	require.NoError(t, svc.Delete(context.Background(), program.ID))

	assert.Empty(t, repo.programs)
	assert.Empty(t, repo.weeks)
	assert.Empty(t, repo.items)
	// Items must go before weeks, weeks before the program document.
	assert.Equal(t, []string{"delete_items", "delete_weeks", "delete_program"}, repo.ops)
}

func TestProgramDeleteMissing(t *testing.T) {
	svc := NewProgramService(newFakeProgramRepo())
	err := svc.Delete(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrProgramNotFound)
}

func TestProgramDetailLoadsHierarchy(t *testing.T) {
	repo := newFakeProgramRepo()
	svc := NewProgramService(repo)
	program := buildHierarchy(t, svc)

	detail, err := svc.Detail(context.Background(), program.Slug)
	require.NoError(t, err)

	assert.Equal(t, "12 Week Strength", detail.Program.Title)
	require.Len(t, detail.Weeks, 2)

	var items int
	for _, week := range detail.Weeks {
		items += len(week.Items)
	}
	assert.Equal(t, 3, items)
}

func TestProgramDetailUnknownSlug(t *testing.T) {
	svc := NewProgramService(newFakeProgramRepo())
	_, err := svc.Detail(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrProgramNotFound)
}

func TestProgramCreateDerivesSlug(t *testing.T) {
	svc := NewProgramService(newFakeProgramRepo())

	program, err := svc.Create(context.Background(), ProgramInput{Title: "Summer Shred 2.0"})
	require.NoError(t, err)
	assert.Equal(t, "summer-shred-2-0", program.Slug)
}

func TestProgramCreateRequiresTitle(t *testing.T) {
	svc := NewProgramService(newFakeProgramRepo())
	_, err := svc.Create(context.Background(), ProgramInput{Title: " "})
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestProgramSlugCollision(t *testing.T) {
	svc := NewProgramService(newFakeProgramRepo())

	_, err := svc.Create(context.Background(), ProgramInput{Title: "Strength"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), ProgramInput{Title: "Other", Slug: "strength"})
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestProgramToggles(t *testing.T) {
	repo := newFakeProgramRepo()
	svc := NewProgramService(repo)

	program, err := svc.Create(context.Background(), ProgramInput{Title: "Strength", Active: true})
	require.NoError(t, err)

	toggled, err := svc.ToggleActive(context.Background(), program.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Active)

	toggled, err = svc.ToggleShowOnHome(context.Background(), program.ID)
	require.NoError(t, err)
	assert.True(t, toggled.ShowOnHome)

	toggled, err = svc.ToggleShowOnHome(context.Background(), program.ID)
	require.NoError(t, err)
	assert.False(t, toggled.ShowOnHome)
}

func TestDeleteWeekRemovesItsItems(t *testing.T) {
	repo := newFakeProgramRepo()
	svc := NewProgramService(repo)
	program := buildHierarchy(t, svc)

	weeks, err := repo.ListWeeks(context.Background(), program.ID)
	require.NoError(t, err)
	require.Len(t, weeks, 2)

	var week1 domain.ProgramWeek
	for _, w := range weeks {
		if w.WeekNumber == 1 {
			week1 = w
		}
	}
	require.NoError(t, svc.DeleteWeek(context.Background(), week1.ID))

	assert.Len(t, repo.weeks, 1)
	assert.Len(t, repo.items, 1) // only week 2's item survives
}

func TestAddItemRequiresWeek(t *testing.T) {
	svc := NewProgramService(newFakeProgramRepo())
	_, err := svc.AddItem(context.Background(), primitive.NewObjectID(), nil, 0)
	assert.ErrorIs(t, err, ErrWeekNotFound)
}
