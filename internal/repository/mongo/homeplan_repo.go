package mongo

import (
	"context"
	"errors"
	"time"

	"nfg/fitness-site/internal/domain"
	"nfg/fitness-site/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const homePlanCollectionName = "home_plans"

// mongoHomePlanRepository implements repository.HomePlanRepository for the
// legacy flat plans.
type mongoHomePlanRepository struct {
	collection *mongo.Collection
}

// NewMongoHomePlanRepository creates a new HomePlan repository backed by MongoDB.
func NewMongoHomePlanRepository(db *mongo.Database) repository.HomePlanRepository {
	return &mongoHomePlanRepository{
		collection: db.Collection(homePlanCollectionName),
	}
}

func (r *mongoHomePlanRepository) Create(ctx context.Context, plan *domain.HomePlan) (primitive.ObjectID, error) {
	if plan.Title == "" || plan.Slug == "" {
		return primitive.NilObjectID, errors.New("home plan title and slug are required")
	}

	plan.ID = primitive.NewObjectID()
	plan.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, plan)
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

func (r *mongoHomePlanRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.HomePlan, error) {
	var plan domain.HomePlan
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *mongoHomePlanRepository) GetBySlug(ctx context.Context, slug string) (*domain.HomePlan, error) {
	var plan domain.HomePlan
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *mongoHomePlanRepository) Update(ctx context.Context, plan *domain.HomePlan) error {
	if plan.ID == primitive.NilObjectID {
		return errors.New("home plan ID is required for update")
	}

	update := bson.M{
		"$set": bson.M{
			"title":          plan.Title,
			"slug":           plan.Slug,
			"category":       plan.Category,
			"duration_label": plan.DurationLabel,
			"summary":        plan.Summary,
			"cover_image":    plan.CoverImage,
			"cta_label":      plan.CTALabel,
			"cta_url":        plan.CTAURL,
			"order":          plan.Order,
			"active":         plan.Active,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": plan.ID}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateSlug
		}
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoHomePlanRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoHomePlanRepository) List(ctx context.Context, activeOnly bool) ([]domain.HomePlan, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}

	sortDoc := bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: -1}}
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(sortDoc))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []domain.HomePlan
	if err = cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *mongoHomePlanRepository) SetActive(ctx context.Context, id primitive.ObjectID, active bool) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"active": active}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureHomePlanIndexes creates the unique slug index for home plans.
func EnsureHomePlanIndexes(ctx context.Context, collection *mongo.Collection) {
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
