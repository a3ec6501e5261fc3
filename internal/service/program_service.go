package service

import (
	"context"
	"errors"
	"strings"

	"nfg/fitness-site/internal/domain"
	"nfg/fitness-site/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrProgramNotFound = errors.New("program not found")
	ErrWeekNotFound    = errors.New("program week not found")
)

// ProgramInput carries the raw admin form values for a program.
type ProgramInput struct {
	Title         string
	Slug          string
	Category      string
	DurationLabel string
	Summary       string
	CoverImage    string
	Order         int
	Active        bool
	ShowOnHome    bool
}

// ProgramDetail is a program with its full week/item hierarchy loaded.
type ProgramDetail struct {
	Program domain.Program
	Weeks   []WeekDetail
}

type WeekDetail struct {
	Week  domain.ProgramWeek
	Items []domain.ProgramItem
}

// ProgramService handles the program hierarchy, including the one real
// cascade in the system: program delete removes items, then weeks, then the
// program itself.
type ProgramService interface {
	Create(ctx context.Context, input ProgramInput) (*domain.Program, error)
	Update(ctx context.Context, id primitive.ObjectID, input ProgramInput) (*domain.Program, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Program, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Program, error)
	ListHome(ctx context.Context) ([]domain.Program, error)
	ToggleActive(ctx context.Context, id primitive.ObjectID) (*domain.Program, error)
	ToggleShowOnHome(ctx context.Context, id primitive.ObjectID) (*domain.Program, error)
	Detail(ctx context.Context, slug string) (*ProgramDetail, error)

	AddWeek(ctx context.Context, programID primitive.ObjectID, weekNumber, order int) (*domain.ProgramWeek, error)
	DeleteWeek(ctx context.Context, weekID primitive.ObjectID) error
	AddItem(ctx context.Context, weekID primitive.ObjectID, workoutID *primitive.ObjectID, order int) (*domain.ProgramItem, error)
	DeleteItem(ctx context.Context, itemID primitive.ObjectID) error
}

type programService struct {
	programRepo repository.ProgramRepository
}

// NewProgramService creates a new instance of programService.
func NewProgramService(programRepo repository.ProgramRepository) ProgramService {
	return &programService{programRepo: programRepo}
}

func buildProgram(input ProgramInput) (*domain.Program, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrValidationFailed
	}
	return &domain.Program{
		Title:         title,
		Slug:          DeriveSlug(input.Slug, title),
		Category:      strings.TrimSpace(input.Category),
		DurationLabel: strings.TrimSpace(input.DurationLabel),
		Summary:       strings.TrimSpace(input.Summary),
		CoverImage:    strings.TrimSpace(input.CoverImage),
		Order:         input.Order,
		Active:        input.Active,
		ShowOnHome:    input.ShowOnHome,
	}, nil
}

func (s *programService) checkSlugFree(ctx context.Context, slug string, selfID primitive.ObjectID) error {
	existing, err := s.programRepo.GetBySlug(ctx, slug)
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

func (s *programService) Create(ctx context.Context, input ProgramInput) (*domain.Program, error) {
	program, err := buildProgram(input)
	if err != nil {
		return nil, err
	}
	if err := s.checkSlugFree(ctx, program.Slug, primitive.NilObjectID); err != nil {
		return nil, err
	}

	id, err := s.programRepo.Create(ctx, program)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	program.ID = id
	return program, nil
}

func (s *programService) Update(ctx context.Context, id primitive.ObjectID, input ProgramInput) (*domain.Program, error) {
	existing, err := s.programRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}

	program, err := buildProgram(input)
	if err != nil {
		return nil, err
	}
	if err := s.checkSlugFree(ctx, program.Slug, id); err != nil {
		return nil, err
	}

	program.ID = id
	program.CreatedAt = existing.CreatedAt

	if err := s.programRepo.Update(ctx, program); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateSlug):
			return nil, ErrSlugTaken
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return program, nil
}

// Delete cascades: items of every owned week first, then the weeks, then the
// program, so a failure partway never leaves children without a parent that
// still has dangling grandchildren. The cascade is not transactional; a
// partial failure leaves already-deleted children gone.
func (s *programService) Delete(ctx context.Context, id primitive.ObjectID) error {
	weeks, err := s.programRepo.ListWeeks(ctx, id)
	if err != nil {
		return err
	}

	weekIDs := make([]primitive.ObjectID, len(weeks))
	for i, w := range weeks {
		weekIDs[i] = w.ID
	}

	if _, err := s.programRepo.DeleteItemsByWeeks(ctx, weekIDs); err != nil {
		return err
	}
	if _, err := s.programRepo.DeleteWeeksByProgram(ctx, id); err != nil {
		return err
	}

	err = s.programRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrProgramNotFound
	}
	return err
}

func (s *programService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Program, error) {
	program, err := s.programRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return program, nil
}

func (s *programService) List(ctx context.Context, activeOnly bool) ([]domain.Program, error) {
	return s.programRepo.List(ctx, activeOnly)
}

func (s *programService) ListHome(ctx context.Context) ([]domain.Program, error) {
	return s.programRepo.ListHome(ctx)
}

func (s *programService) toggle(ctx context.Context, id primitive.ObjectID, home bool) (*domain.Program, error) {
	program, err := s.programRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}

	if home {
		program.ShowOnHome = !program.ShowOnHome
		err = s.programRepo.SetShowOnHome(ctx, id, program.ShowOnHome)
	} else {
		program.Active = !program.Active
		err = s.programRepo.SetActive(ctx, id, program.Active)
	}
	if err != nil {
		return nil, err
	}
	return program, nil
}

func (s *programService) ToggleActive(ctx context.Context, id primitive.ObjectID) (*domain.Program, error) {
	return s.toggle(ctx, id, false)
}

func (s *programService) ToggleShowOnHome(ctx context.Context, id primitive.ObjectID) (*domain.Program, error) {
	return s.toggle(ctx, id, true)
}

// Detail loads a program by slug with all weeks and their items.
func (s *programService) Detail(ctx context.Context, slug string) (*ProgramDetail, error) {
	program, err := s.programRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}

	weeks, err := s.programRepo.ListWeeks(ctx, program.ID)
	if err != nil {
		return nil, err
	}

	detail := &ProgramDetail{Program: *program, Weeks: make([]WeekDetail, 0, len(weeks))}
	for _, week := range weeks {
		items, err := s.programRepo.ListItems(ctx, week.ID)
		if err != nil {
			return nil, err
		}
		detail.Weeks = append(detail.Weeks, WeekDetail{Week: week, Items: items})
	}
	return detail, nil
}

func (s *programService) AddWeek(ctx context.Context, programID primitive.ObjectID, weekNumber, order int) (*domain.ProgramWeek, error) {
	if _, err := s.programRepo.GetByID(ctx, programID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}

	week := &domain.ProgramWeek{
		ProgramID:  programID,
		WeekNumber: weekNumber,
		Order:      order,
	}
	id, err := s.programRepo.CreateWeek(ctx, week)
	if err != nil {
		return nil, err
	}
	week.ID = id
	return week, nil
}

// DeleteWeek removes a week and its items (items first).
func (s *programService) DeleteWeek(ctx context.Context, weekID primitive.ObjectID) error {
	if _, err := s.programRepo.DeleteItemsByWeeks(ctx, []primitive.ObjectID{weekID}); err != nil {
		return err
	}
	err := s.programRepo.DeleteWeek(ctx, weekID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrWeekNotFound
	}
	return err
}

// AddItem attaches a workout reference to a week. The reference is loose:
// deleting the workout later leaves it dangling.
func (s *programService) AddItem(ctx context.Context, weekID primitive.ObjectID, workoutID *primitive.ObjectID, order int) (*domain.ProgramItem, error) {
	if _, err := s.programRepo.GetWeekByID(ctx, weekID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWeekNotFound
		}
		return nil, err
	}

	item := &domain.ProgramItem{
		WeekID:    weekID,
		WorkoutID: workoutID,
		Order:     order,
	}
	id, err := s.programRepo.CreateItem(ctx, item)
	if err != nil {
		return nil, err
	}
	item.ID = id
	return item, nil
}

func (s *programService) DeleteItem(ctx context.Context, itemID primitive.ObjectID) error {
	return s.programRepo.DeleteItem(ctx, itemID)
}
