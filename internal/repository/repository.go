package repository

import (
	"context"

	"nfg/fitness-site/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound      = RepositoryError("not found")
	ErrDuplicateSlug = RepositoryError("duplicate slug")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// WorkoutFilter carries the optional browse/search parameters. All active
// filters combine with logical AND; Query expands to a case-insensitive
// substring match across name, level, body parts, style and tags.
type WorkoutFilter struct {
	Level   string
	Body    string
	Style   string
	Query   string
	Sort    string // name | recent | rating | favorites
	Page    int
	PerPage int
}

// Normalize clamps pagination: page minimum 1, per-page within [1,100].
func (f *WorkoutFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = 1
	}
	if f.PerPage > 100 {
		f.PerPage = 100
	}
}

// Offset is the number of documents skipped for the current page.
func (f *WorkoutFilter) Offset() int {
	return (f.Page - 1) * f.PerPage
}

// WorkoutRepository defines the interface for interacting with workout data.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Workout, error)
	Update(ctx context.Context, workout *domain.Workout) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Browse returns one page of matches plus the total match count.
	Browse(ctx context.Context, filter WorkoutFilter) ([]domain.Workout, int64, error)
	// Related returns up to limit workouts sharing a body part or style with w,
	// excluding w itself, ranked rating desc, created_at desc, name asc.
	Related(ctx context.Context, w *domain.Workout, limit int) ([]domain.Workout, error)

	ListAll(ctx context.Context) ([]domain.Workout, error)
	ListFavorites(ctx context.Context) ([]domain.Workout, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Workout, error)
	ListTopRated(ctx context.Context, limit int) ([]domain.Workout, error)
	ListNewestFirst(ctx context.Context) ([]domain.Workout, error)

	CountByStyle(ctx context.Context, style string) (int64, error)
	CountByBodyPart(ctx context.Context, part string) (int64, error)
	// DistinctBodyParts unions the legacy single field and the list field.
	DistinctBodyParts(ctx context.Context) ([]string, error)
}

// StyleRepository defines the interface for interacting with style data.
type StyleRepository interface {
	Create(ctx context.Context, style *domain.Style) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Style, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Style, error)
	List(ctx context.Context) ([]domain.Style, error)
	ListActive(ctx context.Context) ([]domain.Style, error)
	SetActive(ctx context.Context, id primitive.ObjectID, active bool) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// RecipeRepository defines the interface for interacting with recipe data.
// Recipes are read-only from the application's perspective; Upsert exists for
// the seeding path only.
type RecipeRepository interface {
	List(ctx context.Context) ([]domain.Recipe, error)
	Search(ctx context.Context, query string) ([]domain.Recipe, error)
	Upsert(ctx context.Context, recipe *domain.Recipe) error
}

// ProgramRepository covers the program hierarchy: programs own weeks, weeks
// own items. The bulk delete methods exist for the cascade on program delete;
// ordering across them is enforced by the service layer.
type ProgramRepository interface {
	Create(ctx context.Context, program *domain.Program) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Program, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Program, error)
	Update(ctx context.Context, program *domain.Program) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, activeOnly bool) ([]domain.Program, error)
	ListHome(ctx context.Context) ([]domain.Program, error)
	SetActive(ctx context.Context, id primitive.ObjectID, active bool) error
	SetShowOnHome(ctx context.Context, id primitive.ObjectID, show bool) error

	CreateWeek(ctx context.Context, week *domain.ProgramWeek) (primitive.ObjectID, error)
	GetWeekByID(ctx context.Context, id primitive.ObjectID) (*domain.ProgramWeek, error)
	ListWeeks(ctx context.Context, programID primitive.ObjectID) ([]domain.ProgramWeek, error)
	DeleteWeek(ctx context.Context, id primitive.ObjectID) error
	DeleteWeeksByProgram(ctx context.Context, programID primitive.ObjectID) (int64, error)

	CreateItem(ctx context.Context, item *domain.ProgramItem) (primitive.ObjectID, error)
	ListItems(ctx context.Context, weekID primitive.ObjectID) ([]domain.ProgramItem, error)
	DeleteItem(ctx context.Context, id primitive.ObjectID) error
	DeleteItemsByWeeks(ctx context.Context, weekIDs []primitive.ObjectID) (int64, error)
}

// HomePlanRepository defines the interface for the legacy home plan records.
type HomePlanRepository interface {
	Create(ctx context.Context, plan *domain.HomePlan) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.HomePlan, error)
	GetBySlug(ctx context.Context, slug string) (*domain.HomePlan, error)
	Update(ctx context.Context, plan *domain.HomePlan) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, activeOnly bool) ([]domain.HomePlan, error)
	SetActive(ctx context.Context, id primitive.ObjectID, active bool) error
}
