package mongo

import (
	"context"
	"errors"

	"nfg/fitness-site/internal/domain"
	"nfg/fitness-site/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const styleCollectionName = "styles"

var styleSort = bson.D{{Key: "order", Value: 1}, {Key: "name", Value: 1}}

// mongoStyleRepository implements repository.StyleRepository.
type mongoStyleRepository struct {
	collection *mongo.Collection
}

// NewMongoStyleRepository creates a new Style repository backed by MongoDB.
func NewMongoStyleRepository(db *mongo.Database) repository.StyleRepository {
	return &mongoStyleRepository{
		collection: db.Collection(styleCollectionName),
	}
}

func (r *mongoStyleRepository) Create(ctx context.Context, style *domain.Style) (primitive.ObjectID, error) {
	if style.Name == "" || style.Slug == "" {
		return primitive.NilObjectID, errors.New("style name and slug are required")
	}

	style.ID = primitive.NewObjectID()
	result, err := r.collection.InsertOne(ctx, style)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicateSlug
		}
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

func (r *mongoStyleRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Style, error) {
	var style domain.Style
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&style)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &style, nil
}

func (r *mongoStyleRepository) GetBySlug(ctx context.Context, slug string) (*domain.Style, error) {
	var style domain.Style
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&style)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &style, nil
}

func (r *mongoStyleRepository) list(ctx context.Context, filter bson.M) ([]domain.Style, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(styleSort))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var styles []domain.Style
	if err = cursor.All(ctx, &styles); err != nil {
		return nil, err
	}
	return styles, nil
}

func (r *mongoStyleRepository) List(ctx context.Context) ([]domain.Style, error) {
	return r.list(ctx, bson.M{})
}

// ListActive excludes styles explicitly deactivated. Documents without the
// active flag count as active, matching historical data.
func (r *mongoStyleRepository) ListActive(ctx context.Context) ([]domain.Style, error) {
	return r.list(ctx, bson.M{"active": bson.M{"$ne": false}})
}

func (r *mongoStyleRepository) SetActive(ctx context.Context, id primitive.ObjectID, active bool) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"active": active}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoStyleRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoStyleRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// EnsureStyleIndexes creates the unique slug index for styles.
func EnsureStyleIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		// Retried on next startup.
	}
}
