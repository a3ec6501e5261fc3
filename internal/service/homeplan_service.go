package service

import (
	"context"
	"errors"
	"strings"

	"nfg/fitness-site/internal/domain"
	"nfg/fitness-site/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrHomePlanNotFound = errors.New("home plan not found")

// HomePlanInput carries the raw admin form values for a legacy home plan.
type HomePlanInput struct {
	Title         string
	Slug          string
	Category      string
	DurationLabel string
	Summary       string
	CoverImage    string
	CTALabel      string
	CTAURL        string
	Order         int
	Active        bool
}

// HomePlanService handles the legacy home plan CRUD.
type HomePlanService interface {
	Create(ctx context.Context, input HomePlanInput) (*domain.HomePlan, error)
	Update(ctx context.Context, id primitive.ObjectID, input HomePlanInput) (*domain.HomePlan, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.HomePlan, error)
	List(ctx context.Context, activeOnly bool) ([]domain.HomePlan, error)
	Toggle(ctx context.Context, id primitive.ObjectID) (*domain.HomePlan, error)
}

type homePlanService struct {
	planRepo repository.HomePlanRepository
}

// NewHomePlanService creates a new instance of homePlanService.
func NewHomePlanService(planRepo repository.HomePlanRepository) HomePlanService {
	return &homePlanService{planRepo: planRepo}
}

func buildHomePlan(input HomePlanInput) (*domain.HomePlan, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrValidationFailed
	}
	return &domain.HomePlan{
		Title:         title,
		Slug:          DeriveSlug(input.Slug, title),
		Category:      strings.TrimSpace(input.Category),
		DurationLabel: strings.TrimSpace(input.DurationLabel),
		Summary:       strings.TrimSpace(input.Summary),
		CoverImage:    strings.TrimSpace(input.CoverImage),
		CTALabel:      strings.TrimSpace(input.CTALabel),
		CTAURL:        strings.TrimSpace(input.CTAURL),
		Order:         input.Order,
		Active:        input.Active,
	}, nil
}

func (s *homePlanService) checkSlugFree(ctx context.Context, slug string, selfID primitive.ObjectID) error {
	existing, err := s.planRepo.GetBySlug(ctx, slug)
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

func (s *homePlanService) Create(ctx context.Context, input HomePlanInput) (*domain.HomePlan, error) {
	plan, err := buildHomePlan(input)
	if err != nil {
		return nil, err
	}
	if err := s.checkSlugFree(ctx, plan.Slug, primitive.NilObjectID); err != nil {
		return nil, err
	}

	id, err := s.planRepo.Create(ctx, plan)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	plan.ID = id
	return plan, nil
}

func (s *homePlanService) Update(ctx context.Context, id primitive.ObjectID, input HomePlanInput) (*domain.HomePlan, error) {
	existing, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrHomePlanNotFound
		}
		return nil, err
	}

	plan, err := buildHomePlan(input)
	if err != nil {
		return nil, err
	}
	if err := s.checkSlugFree(ctx, plan.Slug, id); err != nil {
		return nil, err
	}

	plan.ID = id
	plan.CreatedAt = existing.CreatedAt

	if err := s.planRepo.Update(ctx, plan); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateSlug):
			return nil, ErrSlugTaken
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrHomePlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

func (s *homePlanService) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := s.planRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrHomePlanNotFound
	}
	return err
}

func (s *homePlanService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.HomePlan, error) {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrHomePlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

func (s *homePlanService) List(ctx context.Context, activeOnly bool) ([]domain.HomePlan, error) {
	return s.planRepo.List(ctx, activeOnly)
}

func (s *homePlanService) Toggle(ctx context.Context, id primitive.ObjectID) (*domain.HomePlan, error) {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrHomePlanNotFound
		}
		return nil, err
	}

	plan.Active = !plan.Active
	if err := s.planRepo.SetActive(ctx, id, plan.Active); err != nil {
		return nil, err
	}
	return plan, nil
}
