package service

import (
	"context"
	"errors"
	"strings"

	"nfg/fitness-site/internal/domain"
	"nfg/fitness-site/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrValidationFailed = errors.New("name is required")
	ErrSlugTaken        = errors.New("slug is already used by another record")
)

// WorkoutInput carries the raw admin form values. Multi-value fields arrive
// as comma- or newline-separated text; Images arrive already resolved to URLs
// by the upload layer.
type WorkoutInput struct {
	Name        string
	Slug        string
	Level       string
	Style       string
	BodyPart    string // legacy single value, used when the list is empty
	BodyParts   string
	Tags        string
	Images      []string
	MuscleImage string
	Info        string
	Tips        string
	YouTubeRaw  string
	IsFavorite  bool
	Rating      float64
}

// WorkoutService handles admin workout CRUD.
type WorkoutService interface {
	Create(ctx context.Context, input WorkoutInput) (*domain.Workout, error)
	Update(ctx context.Context, id primitive.ObjectID, input WorkoutInput) (*domain.Workout, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	ListNewestFirst(ctx context.Context) ([]domain.Workout, error)
}

type workoutService struct {
	workoutRepo repository.WorkoutRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{workoutRepo: workoutRepo}
}

// buildWorkout validates and normalizes the form input into a domain object.
func buildWorkout(input WorkoutInput) (*domain.Workout, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrValidationFailed
	}

	bodyParts := SplitList(input.BodyParts)
	bodyPart := strings.TrimSpace(input.BodyPart)
	if len(bodyParts) > 0 {
		bodyPart = bodyParts[0]
	}

	return &domain.Workout{
		Name:        name,
		Slug:        DeriveSlug(input.Slug, name),
		Level:       strings.TrimSpace(input.Level),
		BodyPart:    bodyPart,
		BodyParts:   bodyParts,
		Style:       strings.TrimSpace(input.Style),
		Tags:        SplitList(input.Tags),
		Images:      input.Images,
		MuscleImage: strings.TrimSpace(input.MuscleImage),
		Info:        strings.TrimSpace(input.Info),
		Tips:        SplitList(input.Tips),
		YouTubeID:   ExtractYouTubeID(input.YouTubeRaw),
		IsFavorite:  input.IsFavorite,
		Rating:      input.Rating,
	}, nil
}

// checkSlugFree rejects a slug already owned by a different workout. The
// unique index backstops the race between this check and the write.
func (s *workoutService) checkSlugFree(ctx context.Context, slug string, selfID primitive.ObjectID) error {
	existing, err := s.workoutRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return ErrSlugTaken
	}
	return nil
}

func (s *workoutService) Create(ctx context.Context, input WorkoutInput) (*domain.Workout, error) {
	workout, err := buildWorkout(input)
	if err != nil {
		return nil, err
	}
	if err := s.checkSlugFree(ctx, workout.Slug, primitive.NilObjectID); err != nil {
		return nil, err
	}

	id, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	workout.ID = id
	return workout, nil
}

func (s *workoutService) Update(ctx context.Context, id primitive.ObjectID, input WorkoutInput) (*domain.Workout, error) {
	existing, err := s.workoutRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	workout, err := buildWorkout(input)
	if err != nil {
		return nil, err
	}
	if err := s.checkSlugFree(ctx, workout.Slug, id); err != nil {
		return nil, err
	}

	workout.ID = id
	workout.CreatedAt = existing.CreatedAt // immutable after creation

	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateSlug):
			return nil, ErrSlugTaken
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

// Delete hard-deletes the workout. Program items referencing it are left
// alone and keep their reference, which dangles from then on.
func (s *workoutService) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := s.workoutRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrWorkoutNotFound
	}
	return err
}

func (s *workoutService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

func (s *workoutService) ListNewestFirst(ctx context.Context) ([]domain.Workout, error) {
	return s.workoutRepo.ListNewestFirst(ctx)
}
