package mongo

import (
	"context"
	"errors"
	"sort"
	"time"

	"nfg/fitness-site/internal/domain"
	"nfg/fitness-site/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const workoutCollectionName = "workouts"

// mongoWorkoutRepository implements repository.WorkoutRepository.
type mongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a new Workout repository backed by MongoDB.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(workoutCollectionName),
	}
}

// browseQuery builds the compound filter document for Browse. All active
// filters are ANDed; the free-text query ORs a case-insensitive regex across
// the searchable fields. An empty filter matches everything.
func browseQuery(f repository.WorkoutFilter) bson.M {
	var and []bson.M
	if f.Level != "" {
		and = append(and, bson.M{"level": f.Level})
	}
	if f.Style != "" {
		and = append(and, bson.M{"style": f.Style})
	}
	if f.Body != "" {
		and = append(and, bson.M{"$or": []bson.M{
			{"body_part": f.Body},
			{"body_parts": f.Body},
		}})
	}
	if f.Sort == "favorites" {
		and = append(and, bson.M{"is_favorite": true})
	}
	if f.Query != "" {
		rx := primitive.Regex{Pattern: f.Query, Options: "i"}
		and = append(and, bson.M{"$or": []bson.M{
			{"name": rx}, {"level": rx}, {"body_part": rx},
			{"body_parts": rx}, {"style": rx}, {"tags": rx},
		}})
	}
	if len(and) == 0 {
		return bson.M{}
	}
	return bson.M{"$and": and}
}

// browseSort maps the sort key to a sort document. Rating ties break on name
// ascending; "recent" has no explicit tie-break (stable by insertion order).
func browseSort(key string) bson.D {
	switch key {
	case "recent":
		return bson.D{{Key: "created_at", Value: -1}}
	case "rating":
		return bson.D{{Key: "rating", Value: -1}, {Key: "name", Value: 1}}
	default: // name, favorites
		return bson.D{{Key: "name", Value: 1}}
	}
}

// relatedQuery matches workouts sharing a body part or style with w, excluding
// w itself. A workout with neither body parts nor a style degenerates to "any
// other workout" on purpose.
func relatedQuery(w *domain.Workout) bson.M {
	parts := w.BodyParts
	if len(parts) == 0 && w.BodyPart != "" {
		parts = []string{w.BodyPart}
	}

	var or []bson.M
	if len(parts) > 0 {
		or = append(or, bson.M{"body_parts": bson.M{"$in": parts}})
	}
	if w.Style != "" {
		or = append(or, bson.M{"style": w.Style})
	}
	if len(or) == 0 {
		return bson.M{"slug": bson.M{"$ne": w.Slug}}
	}
	return bson.M{"$and": []bson.M{
		{"slug": bson.M{"$ne": w.Slug}},
		{"$or": or},
	}}
}

var relatedSort = bson.D{
	{Key: "rating", Value: -1},
	{Key: "created_at", Value: -1},
	{Key: "name", Value: 1},
}

// Create inserts a new workout, stamping created_at exactly once.
func (r *mongoWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	if workout.Name == "" || workout.Slug == "" {
		return primitive.NilObjectID, errors.New("workout name and slug are required")
	}

	workout.ID = primitive.NewObjectID()
	workout.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, workout)
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

func (r *mongoWorkoutRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	var workout domain.Workout
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

func (r *mongoWorkoutRepository) GetBySlug(ctx context.Context, slug string) (*domain.Workout, error) {
	var workout domain.Workout
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// Update rewrites every mutable field. created_at is deliberately left out of
// the $set document so it survives edits unchanged.
func (r *mongoWorkoutRepository) Update(ctx context.Context, workout *domain.Workout) error {
	if workout.ID == primitive.NilObjectID {
		return errors.New("workout ID is required for update")
	}

	update := bson.M{
		"$set": bson.M{
			"name":         workout.Name,
			"slug":         workout.Slug,
			"level":        workout.Level,
			"body_part":    workout.BodyPart,
			"body_parts":   workout.BodyParts,
			"style":        workout.Style,
			"tags":         workout.Tags,
			"images":       workout.Images,
			"muscle_image": workout.MuscleImage,
			"info":         workout.Info,
			"tips":         workout.Tips,
			"youtube_id":   workout.YouTubeID,
			"is_favorite":  workout.IsFavorite,
			"rating":       workout.Rating,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": workout.ID}, update)
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

func (r *mongoWorkoutRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Browse runs the compound query and returns the requested page plus the
// total match count for page-count display.
func (r *mongoWorkoutRepository) Browse(ctx context.Context, filter repository.WorkoutFilter) ([]domain.Workout, int64, error) {
	filter.Normalize()
	query := browseQuery(filter)

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSort(browseSort(filter.Sort)).
		SetSkip(int64(filter.Offset())).
		SetLimit(int64(filter.PerPage))

	cursor, err := r.collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var workouts []domain.Workout
	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, 0, err
	}
	return workouts, total, nil
}

func (r *mongoWorkoutRepository) Related(ctx context.Context, w *domain.Workout, limit int) ([]domain.Workout, error) {
	if limit <= 0 {
		limit = 6
	}
	findOptions := options.Find().SetSort(relatedSort).SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, relatedQuery(w), findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var workouts []domain.Workout
	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (r *mongoWorkoutRepository) list(ctx context.Context, filter bson.M, sortDoc bson.D, limit int) ([]domain.Workout, error) {
	findOptions := options.Find().SetSort(sortDoc)
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var workouts []domain.Workout
	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (r *mongoWorkoutRepository) ListAll(ctx context.Context) ([]domain.Workout, error) {
	return r.list(ctx, bson.M{}, bson.D{{Key: "name", Value: 1}}, 0)
}

func (r *mongoWorkoutRepository) ListFavorites(ctx context.Context) ([]domain.Workout, error) {
	return r.list(ctx, bson.M{"is_favorite": true}, bson.D{{Key: "name", Value: 1}}, 0)
}

func (r *mongoWorkoutRepository) ListRecent(ctx context.Context, limit int) ([]domain.Workout, error) {
	return r.list(ctx, bson.M{}, bson.D{{Key: "created_at", Value: -1}}, limit)
}

func (r *mongoWorkoutRepository) ListTopRated(ctx context.Context, limit int) ([]domain.Workout, error) {
	return r.list(ctx, bson.M{}, bson.D{{Key: "rating", Value: -1}, {Key: "name", Value: 1}}, limit)
}

// ListNewestFirst backs the admin index.
func (r *mongoWorkoutRepository) ListNewestFirst(ctx context.Context) ([]domain.Workout, error) {
	return r.list(ctx, bson.M{}, bson.D{{Key: "created_at", Value: -1}}, 0)
}

func (r *mongoWorkoutRepository) CountByStyle(ctx context.Context, style string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"style": style})
}

func (r *mongoWorkoutRepository) CountByBodyPart(ctx context.Context, part string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"$or": []bson.M{
		{"body_part": part},
		{"body_parts": part},
	}})
}

// DistinctBodyParts unions the legacy single field with the list field.
func (r *mongoWorkoutRepository) DistinctBodyParts(ctx context.Context) ([]string, error) {
	single, err := r.collection.Distinct(ctx, "body_part", bson.M{})
	if err != nil {
		return nil, err
	}
	multi, err := r.collection.Distinct(ctx, "body_parts", bson.M{})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var parts []string
	for _, raw := range append(single, multi...) {
		s, ok := raw.(string)
		if !ok || s == "" || seen[s] {
			continue
		}
		seen[s] = true
		parts = append(parts, s)
	}
	sort.Strings(parts)
	return parts, nil
}

// EnsureWorkoutIndexes creates the indexes backing slug uniqueness and the
// browse filters/sorts.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "level", Value: 1}}},
		{Keys: bson.D{{Key: "body_part", Value: 1}}},
		{Keys: bson.D{{Key: "style", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "rating", Value: -1}}},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		// Index creation is retried on next startup; queries still work unindexed.
	}
}
