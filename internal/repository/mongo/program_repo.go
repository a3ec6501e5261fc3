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

const (
	programCollectionName     = "programs"
	programWeekCollectionName = "program_weeks"
	programItemCollectionName = "program_items"
)

// mongoProgramRepository implements repository.ProgramRepository over the
// three hierarchy collections. No transaction spans them; the service layer
// orders the cascade items -> weeks -> program.
type mongoProgramRepository struct {
	programs *mongo.Collection
	weeks    *mongo.Collection
	items    *mongo.Collection
}

// NewMongoProgramRepository creates a new Program repository backed by MongoDB.
func NewMongoProgramRepository(db *mongo.Database) repository.ProgramRepository {
	return &mongoProgramRepository{
		programs: db.Collection(programCollectionName),
		weeks:    db.Collection(programWeekCollectionName),
		items:    db.Collection(programItemCollectionName),
	}
}

// --- Programs ---

func (r *mongoProgramRepository) Create(ctx context.Context, program *domain.Program) (primitive.ObjectID, error) {
	if program.Title == "" || program.Slug == "" {
		return primitive.NilObjectID, errors.New("program title and slug are required")
	}

	program.ID = primitive.NewObjectID()
	program.CreatedAt = time.Now().UTC()

	result, err := r.programs.InsertOne(ctx, program)
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

func (r *mongoProgramRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Program, error) {
	var program domain.Program
	err := r.programs.FindOne(ctx, bson.M{"_id": id}).Decode(&program)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &program, nil
}

func (r *mongoProgramRepository) GetBySlug(ctx context.Context, slug string) (*domain.Program, error) {
	var program domain.Program
	err := r.programs.FindOne(ctx, bson.M{"slug": slug}).Decode(&program)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &program, nil
}

// Update rewrites the mutable fields; created_at stays untouched.
func (r *mongoProgramRepository) Update(ctx context.Context, program *domain.Program) error {
	if program.ID == primitive.NilObjectID {
		return errors.New("program ID is required for update")
	}

	update := bson.M{
		"$set": bson.M{
			"title":          program.Title,
			"slug":           program.Slug,
			"category":       program.Category,
			"duration_label": program.DurationLabel,
			"summary":        program.Summary,
			"cover_image":    program.CoverImage,
			"order":          program.Order,
			"active":         program.Active,
			"show_on_home":   program.ShowOnHome,
		},
	}

	result, err := r.programs.UpdateOne(ctx, bson.M{"_id": program.ID}, update)
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

func (r *mongoProgramRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.programs.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoProgramRepository) listPrograms(ctx context.Context, filter bson.M) ([]domain.Program, error) {
	sortDoc := bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: -1}}
	cursor, err := r.programs.Find(ctx, filter, options.Find().SetSort(sortDoc))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var programs []domain.Program
	if err = cursor.All(ctx, &programs); err != nil {
		return nil, err
	}
	return programs, nil
}

func (r *mongoProgramRepository) List(ctx context.Context, activeOnly bool) ([]domain.Program, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	return r.listPrograms(ctx, filter)
}

// ListHome returns the active programs curated for the landing page.
func (r *mongoProgramRepository) ListHome(ctx context.Context) ([]domain.Program, error) {
	return r.listPrograms(ctx, bson.M{"active": true, "show_on_home": true})
}

func (r *mongoProgramRepository) setFlag(ctx context.Context, id primitive.ObjectID, field string, value bool) error {
	result, err := r.programs.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoProgramRepository) SetActive(ctx context.Context, id primitive.ObjectID, active bool) error {
	return r.setFlag(ctx, id, "active", active)
}

func (r *mongoProgramRepository) SetShowOnHome(ctx context.Context, id primitive.ObjectID, show bool) error {
	return r.setFlag(ctx, id, "show_on_home", show)
}

// --- Weeks ---

func (r *mongoProgramRepository) CreateWeek(ctx context.Context, week *domain.ProgramWeek) (primitive.ObjectID, error) {
	if week.ProgramID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("week program ID is required")
	}

	week.ID = primitive.NewObjectID()
	result, err := r.weeks.InsertOne(ctx, week)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

func (r *mongoProgramRepository) GetWeekByID(ctx context.Context, id primitive.ObjectID) (*domain.ProgramWeek, error) {
	var week domain.ProgramWeek
	err := r.weeks.FindOne(ctx, bson.M{"_id": id}).Decode(&week)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &week, nil
}

func (r *mongoProgramRepository) ListWeeks(ctx context.Context, programID primitive.ObjectID) ([]domain.ProgramWeek, error) {
	sortDoc := bson.D{{Key: "order", Value: 1}, {Key: "week_number", Value: 1}}
	cursor, err := r.weeks.Find(ctx, bson.M{"program_id": programID}, options.Find().SetSort(sortDoc))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var weeks []domain.ProgramWeek
	if err = cursor.All(ctx, &weeks); err != nil {
		return nil, err
	}
	return weeks, nil
}

func (r *mongoProgramRepository) DeleteWeek(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.weeks.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoProgramRepository) DeleteWeeksByProgram(ctx context.Context, programID primitive.ObjectID) (int64, error) {
	result, err := r.weeks.DeleteMany(ctx, bson.M{"program_id": programID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// --- Items ---

func (r *mongoProgramRepository) CreateItem(ctx context.Context, item *domain.ProgramItem) (primitive.ObjectID, error) {
	if item.WeekID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("item week ID is required")
	}

	item.ID = primitive.NewObjectID()
	item.CreatedAt = time.Now().UTC()

	result, err := r.items.InsertOne(ctx, item)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

func (r *mongoProgramRepository) ListItems(ctx context.Context, weekID primitive.ObjectID) ([]domain.ProgramItem, error) {
	sortDoc := bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: 1}}
	cursor, err := r.items.Find(ctx, bson.M{"week_id": weekID}, options.Find().SetSort(sortDoc))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []domain.ProgramItem
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mongoProgramRepository) DeleteItem(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.items.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoProgramRepository) DeleteItemsByWeeks(ctx context.Context, weekIDs []primitive.ObjectID) (int64, error) {
	if len(weekIDs) == 0 {
		return 0, nil
	}
	result, err := r.items.DeleteMany(ctx, bson.M{"week_id": bson.M{"$in": weekIDs}})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// EnsureProgramIndexes creates indexes for the program hierarchy collections.
func EnsureProgramIndexes(ctx context.Context, db *mongo.Database) {
	programIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
		{Keys: bson.D{{Key: "active", Value: 1}, {Key: "show_on_home", Value: 1}}},
		{Keys: bson.D{{Key: "order", Value: 1}}},
	}
	weekIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "program_id", Value: 1}}},
	}
	itemIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "week_id", Value: 1}}},
	}

	if _, err := db.Collection(programCollectionName).Indexes().CreateMany(ctx, programIndexes); err != nil {
		// Retried on next startup.
	}
	if _, err := db.Collection(programWeekCollectionName).Indexes().CreateMany(ctx, weekIndexes); err != nil {
		// Retried on next startup.
	}
	if _, err := db.Collection(programItemCollectionName).Indexes().CreateMany(ctx, itemIndexes); err != nil {
		// Retried on next startup.
	}
}
