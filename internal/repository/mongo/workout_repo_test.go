package mongo

import (
	"testing"

	"nfg/fitness-site/internal/domain"
	"nfg/fitness-site/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBrowseQueryEmpty(t *testing.T) {
	q := browseQuery(repository.WorkoutFilter{})
	assert.Equal(t, bson.M{}, q)
}

func TestBrowseQueryCombinesWithAnd(t *testing.T) {
	q := browseQuery(repository.WorkoutFilter{Level: "Beginner", Style: "Barbell", Body: "Chest"})

	and, ok := q["$and"].([]bson.M)
	require.True(t, ok)
	require.Len(t, and, 3)
	assert.Contains(t, and, bson.M{"level": "Beginner"})
	assert.Contains(t, and, bson.M{"style": "Barbell"})
	assert.Contains(t, and, bson.M{"$or": []bson.M{
		{"body_part": "Chest"},
		{"body_parts": "Chest"},
	}})
}

func TestBrowseQueryFreeText(t *testing.T) {
	q := browseQuery(repository.WorkoutFilter{Query: "push"})

	and, ok := q["$and"].([]bson.M)
	require.True(t, ok)
	require.Len(t, and, 1)
	or, ok := and[0]["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 6)

	rx := primitive.Regex{Pattern: "push", Options: "i"}
	assert.Contains(t, or, bson.M{"name": rx})
	assert.Contains(t, or, bson.M{"tags": rx})
}

func TestBrowseQueryFavoritesFlag(t *testing.T) {
	q := browseQuery(repository.WorkoutFilter{Sort: "favorites"})

	and, ok := q["$and"].([]bson.M)
	require.True(t, ok)
	assert.Contains(t, and, bson.M{"is_favorite": true})
}

func TestBrowseSort(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "created_at", Value: -1}}, browseSort("recent"))
	assert.Equal(t, bson.D{{Key: "rating", Value: -1}, {Key: "name", Value: 1}}, browseSort("rating"))
	assert.Equal(t, bson.D{{Key: "name", Value: 1}}, browseSort("name"))
	assert.Equal(t, bson.D{{Key: "name", Value: 1}}, browseSort("bogus"))
}

func TestRelatedQuerySharedAttributes(t *testing.T) {
	w := &domain.Workout{
		Slug:      "bench-press",
		Style:     "Barbell",
		BodyParts: []string{"Chest", "Triceps"},
	}
	q := relatedQuery(w)

	and, ok := q["$and"].([]bson.M)
	require.True(t, ok)
	require.Len(t, and, 2)
	assert.Equal(t, bson.M{"slug": bson.M{"$ne": "bench-press"}}, and[0])

	or, ok := and[1]["$or"].([]bson.M)
	require.True(t, ok)
	assert.Contains(t, or, bson.M{"body_parts": bson.M{"$in": []string{"Chest", "Triceps"}}})
	assert.Contains(t, or, bson.M{"style": "Barbell"})
}

func TestRelatedQueryLegacySingleBodyPart(t *testing.T) {
	w := &domain.Workout{Slug: "plank", BodyPart: "Core"}
	q := relatedQuery(w)

	and, ok := q["$and"].([]bson.M)
	require.True(t, ok)
	or, ok := and[1]["$or"].([]bson.M)
	require.True(t, ok)
	assert.Equal(t, []bson.M{{"body_parts": bson.M{"$in": []string{"Core"}}}}, or)
}

func TestRelatedQueryDegeneratesToAnyOther(t *testing.T) {
	w := &domain.Workout{Slug: "mystery"}
	assert.Equal(t, bson.M{"slug": bson.M{"$ne": "mystery"}}, relatedQuery(w))
}
