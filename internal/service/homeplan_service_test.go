package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestHomePlanCreate(t *testing.T) {
	svc := NewHomePlanService(newFakeHomePlanRepo())

	plan, err := svc.Create(context.Background(), HomePlanInput{
		Title:    "  30 Day Kickstart  ",
		CTALabel: "Start now",
		CTAURL:   "https://example.com/kickstart",
		Active:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, "30 Day Kickstart", plan.Title)
	assert.Equal(t, "30-day-kickstart", plan.Slug)
	assert.Equal(t, "Start now", plan.CTALabel)
}

func TestHomePlanCreateRequiresTitle(t *testing.T) {
	svc := NewHomePlanService(newFakeHomePlanRepo())
	_, err := svc.Create(context.Background(), HomePlanInput{})
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestHomePlanSlugCollision(t *testing.T) {
	svc := NewHomePlanService(newFakeHomePlanRepo())

	_, err := svc.Create(context.Background(), HomePlanInput{Title: "Kickstart"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), HomePlanInput{Title: "Different", Slug: "kickstart"})
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestHomePlanToggle(t *testing.T) {
	repo := newFakeHomePlanRepo()
	svc := NewHomePlanService(repo)

	plan, err := svc.Create(context.Background(), HomePlanInput{Title: "Kickstart", Active: true})
	require.NoError(t, err)

	toggled, err := svc.Toggle(context.Background(), plan.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Active)

	active, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestHomePlanDeleteMissing(t *testing.T) {
	svc := NewHomePlanService(newFakeHomePlanRepo())
	err := svc.Delete(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrHomePlanNotFound)
}
