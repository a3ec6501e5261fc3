package mongo

import (
	"context"

	"nfg/fitness-site/internal/domain"
	"nfg/fitness-site/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const recipeCollectionName = "recipes"

// mongoRecipeRepository implements repository.RecipeRepository.
type mongoRecipeRepository struct {
	collection *mongo.Collection
}

// NewMongoRecipeRepository creates a new Recipe repository backed by MongoDB.
func NewMongoRecipeRepository(db *mongo.Database) repository.RecipeRepository {
	return &mongoRecipeRepository{
		collection: db.Collection(recipeCollectionName),
	}
}

func (r *mongoRecipeRepository) find(ctx context.Context, filter bson.M) ([]domain.Recipe, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var recipes []domain.Recipe
	if err = cursor.All(ctx, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *mongoRecipeRepository) List(ctx context.Context) ([]domain.Recipe, error) {
	return r.find(ctx, bson.M{})
}

// Search matches recipe names case-insensitively, for the site-wide search page.
func (r *mongoRecipeRepository) Search(ctx context.Context, query string) ([]domain.Recipe, error) {
	rx := primitive.Regex{Pattern: query, Options: "i"}
	return r.find(ctx, bson.M{"name": rx})
}

// Upsert inserts or replaces a recipe keyed by name. Used by seeding only.
func (r *mongoRecipeRepository) Upsert(ctx context.Context, recipe *domain.Recipe) error {
	filter := bson.M{"name": recipe.Name}
	update := bson.M{"$set": bson.M{"name": recipe.Name, "url": recipe.URL}}
	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}
