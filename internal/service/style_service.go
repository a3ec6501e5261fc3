package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"nfg/fitness-site/internal/domain"
	"nfg/fitness-site/internal/repository"

	gosimpleslug "github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrStyleNotFound = errors.New("style not found")

// StyleService handles admin style CRUD and the startup seed.
type StyleService interface {
	Add(ctx context.Context, name string, order int) (*domain.Style, error)
	Toggle(ctx context.Context, id primitive.ObjectID) (*domain.Style, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context) ([]domain.Style, error)
	// ActiveNames backs the dynamic style filter list; it falls back to the
	// static defaults when the collection has no active styles.
	ActiveNames(ctx context.Context) ([]string, error)
	// SeedDefaults inserts the default styles once, when the collection is empty.
	SeedDefaults(ctx context.Context) error
}

type styleService struct {
	styleRepo repository.StyleRepository
}

// NewStyleService creates a new instance of styleService.
func NewStyleService(styleRepo repository.StyleRepository) StyleService {
	return &styleService{styleRepo: styleRepo}
}

func (s *styleService) Add(ctx context.Context, name string, order int) (*domain.Style, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrValidationFailed
	}

	style := &domain.Style{
		Name:   name,
		Slug:   gosimpleslug.Make(name),
		Order:  order,
		Active: true,
	}

	if _, err := s.styleRepo.GetBySlug(ctx, style.Slug); err == nil {
		return nil, ErrSlugTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	id, err := s.styleRepo.Create(ctx, style)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	style.ID = id
	return style, nil
}

// Toggle flips the active flag in place and returns the updated style.
func (s *styleService) Toggle(ctx context.Context, id primitive.ObjectID) (*domain.Style, error) {
	style, err := s.styleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStyleNotFound
		}
		return nil, err
	}

	style.Active = !style.Active
	if err := s.styleRepo.SetActive(ctx, id, style.Active); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStyleNotFound
		}
		return nil, err
	}
	return style, nil
}

// Delete hard-deletes the style. Workouts using its name keep the orphaned
// string; nothing is reassigned.
func (s *styleService) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := s.styleRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrStyleNotFound
	}
	return err
}

func (s *styleService) List(ctx context.Context) ([]domain.Style, error) {
	return s.styleRepo.List(ctx)
}

func (s *styleService) ActiveNames(ctx context.Context) ([]string, error) {
	styles, err := s.styleRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(styles) == 0 {
		return domain.DefaultWorkoutStyles, nil
	}

	names := make([]string, len(styles))
	for i, st := range styles {
		names[i] = st.Name
	}
	return names, nil
}

func (s *styleService) SeedDefaults(ctx context.Context) error {
	count, err := s.styleRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i, name := range domain.DefaultWorkoutStyles {
		style := &domain.Style{
			Name:   name,
			Slug:   gosimpleslug.Make(name),
			Order:  i,
			Active: true,
		}
		if _, err := s.styleRepo.Create(ctx, style); err != nil {
			// A competing instance may have seeded the same slug first.
			if errors.Is(err, repository.ErrDuplicateSlug) {
				continue
			}
			log.Printf("WARN: style seed skipped: %v", err)
			return err
		}
	}
	return nil
}
