package service

import (
	"context"
	"errors"
	"strings"

	"nfg/fitness-site/internal/domain"
	"nfg/fitness-site/internal/repository"
)

// NameCount pairs a filter value with how many workouts carry it.
type NameCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// LandingData is the payload behind the workouts landing page.
type LandingData struct {
	Levels            []string         `json:"levels"`
	FeaturedBodyParts []string         `json:"featuredBodyParts"`
	Styles            []string         `json:"styles"`
	FeaturedStyles    []string         `json:"featuredStyles"`
	Sample            []domain.Workout `json:"sample"`
}

// SearchResults holds one page of workout matches plus matching recipes.
type SearchResults struct {
	Workouts []domain.Workout `json:"workouts"`
	Total    int64            `json:"total"`
	Recipes  []domain.Recipe  `json:"recipes"`
}

// ContentService serves the public read side of the site.
type ContentService interface {
	Browse(ctx context.Context, filter repository.WorkoutFilter) ([]domain.Workout, int64, error)
	// WorkoutDetail returns the workout plus up to six related ones.
	WorkoutDetail(ctx context.Context, slug string) (*domain.Workout, []domain.Workout, error)
	Landing(ctx context.Context) (*LandingData, error)
	// QuickList backs /workouts?filter=favorites|recent|top.
	QuickList(ctx context.Context, filter string) ([]domain.Workout, error)
	AllWorkouts(ctx context.Context) ([]domain.Workout, error)
	StyleCounts(ctx context.Context) ([]NameCount, error)
	BodyPartCounts(ctx context.Context) ([]NameCount, error)
	Recipes(ctx context.Context) ([]domain.Recipe, error)
	Search(ctx context.Context, query string, page, perPage int) (*SearchResults, error)
}

type contentService struct {
	workoutRepo repository.WorkoutRepository
	recipeRepo  repository.RecipeRepository
	styles      StyleService
}

// NewContentService creates a new instance of contentService.
func NewContentService(workoutRepo repository.WorkoutRepository, recipeRepo repository.RecipeRepository, styles StyleService) ContentService {
	return &contentService{
		workoutRepo: workoutRepo,
		recipeRepo:  recipeRepo,
		styles:      styles,
	}
}

func (s *contentService) Browse(ctx context.Context, filter repository.WorkoutFilter) ([]domain.Workout, int64, error) {
	filter.Normalize()
	return s.workoutRepo.Browse(ctx, filter)
}

func (s *contentService) WorkoutDetail(ctx context.Context, slug string) (*domain.Workout, []domain.Workout, error) {
	workout, err := s.workoutRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrWorkoutNotFound
		}
		return nil, nil, err
	}

	related, err := s.workoutRepo.Related(ctx, workout, 6)
	if err != nil {
		return nil, nil, err
	}
	return workout, related, nil
}

// Landing assembles the workouts landing payload: featured body parts
// narrowed to those actually present in the store (falling back to the full
// featured list), the dynamic styles, and a small alphabetical sample.
func (s *contentService) Landing(ctx context.Context) (*LandingData, error) {
	partsInDB, err := s.workoutRepo.DistinctBodyParts(ctx)
	if err != nil {
		return nil, err
	}
	present := make(map[string]bool, len(partsInDB))
	for _, p := range partsInDB {
		present[p] = true
	}

	var featured []string
	for _, p := range domain.FeaturedBodyParts {
		if present[p] {
			featured = append(featured, p)
		}
	}
	if len(featured) == 0 {
		featured = append(featured, domain.FeaturedBodyParts...)
	}

	styles, err := s.styles.ActiveNames(ctx)
	if err != nil {
		return nil, err
	}

	sample, _, err := s.workoutRepo.Browse(ctx, repository.WorkoutFilter{Page: 1, PerPage: 3})
	if err != nil {
		return nil, err
	}

	return &LandingData{
		Levels:            domain.WorkoutLevels,
		FeaturedBodyParts: featured,
		Styles:            styles,
		FeaturedStyles:    domain.FeaturedStyles,
		Sample:            sample,
	}, nil
}

func (s *contentService) QuickList(ctx context.Context, filter string) ([]domain.Workout, error) {
	switch filter {
	case "favorites":
		return s.workoutRepo.ListFavorites(ctx)
	case "recent":
		return s.workoutRepo.ListRecent(ctx, 20)
	case "top":
		return s.workoutRepo.ListTopRated(ctx, 20)
	default:
		return s.workoutRepo.ListAll(ctx)
	}
}

func (s *contentService) AllWorkouts(ctx context.Context) ([]domain.Workout, error) {
	return s.workoutRepo.ListAll(ctx)
}

func (s *contentService) StyleCounts(ctx context.Context) ([]NameCount, error) {
	names, err := s.styles.ActiveNames(ctx)
	if err != nil {
		return nil, err
	}

	counts := make([]NameCount, 0, len(names))
	for _, name := range names {
		n, err := s.workoutRepo.CountByStyle(ctx, name)
		if err != nil {
			return nil, err
		}
		counts = append(counts, NameCount{Name: name, Count: n})
	}
	return counts, nil
}

func (s *contentService) BodyPartCounts(ctx context.Context) ([]NameCount, error) {
	counts := make([]NameCount, 0, len(domain.BodyPartsMaster))
	for _, part := range domain.BodyPartsMaster {
		n, err := s.workoutRepo.CountByBodyPart(ctx, part)
		if err != nil {
			return nil, err
		}
		counts = append(counts, NameCount{Name: part, Count: n})
	}
	return counts, nil
}

func (s *contentService) Recipes(ctx context.Context) ([]domain.Recipe, error) {
	return s.recipeRepo.List(ctx)
}

// Search runs the free-text query across workouts (paginated) and recipes.
// A blank query is treated as no search at all, not a match-everything scan.
func (s *contentService) Search(ctx context.Context, query string, page, perPage int) (*SearchResults, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return &SearchResults{}, nil
	}

	filter := repository.WorkoutFilter{Query: query, Sort: "name", Page: page, PerPage: perPage}
	filter.Normalize()

	workouts, total, err := s.workoutRepo.Browse(ctx, filter)
	if err != nil {
		return nil, err
	}

	recipes, err := s.recipeRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	return &SearchResults{Workouts: workouts, Total: total, Recipes: recipes}, nil
}
