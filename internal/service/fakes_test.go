package service

import (
	"context"
	"strings"

	"nfg/fitness-site/internal/domain"
	"nfg/fitness-site/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes. They implement just enough semantics for the
// service tests: slug lookups scan, deletes record what ran for the cascade
// assertions, and Browse ignores filters it does not need.

type fakeWorkoutRepo struct {
	workouts map[primitive.ObjectID]*domain.Workout
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{workouts: make(map[primitive.ObjectID]*domain.Workout)}
}

func (r *fakeWorkoutRepo) Create(_ context.Context, w *domain.Workout) (primitive.ObjectID, error) {
	for _, existing := range r.workouts {
		if existing.Slug == w.Slug {
			return primitive.NilObjectID, repository.ErrDuplicateSlug
		}
	}
	id := primitive.NewObjectID()
	clone := *w
	clone.ID = id
	r.workouts[id] = &clone
	return id, nil
}

func (r *fakeWorkoutRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	w, ok := r.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *w
	return &clone, nil
}

func (r *fakeWorkoutRepo) GetBySlug(_ context.Context, slug string) (*domain.Workout, error) {
	for _, w := range r.workouts {
		if w.Slug == slug {
			clone := *w
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeWorkoutRepo) Update(_ context.Context, w *domain.Workout) error {
	if _, ok := r.workouts[w.ID]; !ok {
		return repository.ErrNotFound
	}
	clone := *w
	r.workouts[w.ID] = &clone
	return nil
}

func (r *fakeWorkoutRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.workouts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.workouts, id)
	return nil
}

func (r *fakeWorkoutRepo) all() []domain.Workout {
	out := make([]domain.Workout, 0, len(r.workouts))
	for _, w := range r.workouts {
		out = append(out, *w)
	}
	return out
}

func (r *fakeWorkoutRepo) Browse(_ context.Context, f repository.WorkoutFilter) ([]domain.Workout, int64, error) {
	var out []domain.Workout
	for _, w := range r.workouts {
		if f.Query != "" && !strings.Contains(strings.ToLower(w.Name), strings.ToLower(f.Query)) {
			continue
		}
		out = append(out, *w)
	}
	return out, int64(len(out)), nil
}

func (r *fakeWorkoutRepo) Related(_ context.Context, w *domain.Workout, limit int) ([]domain.Workout, error) {
	var out []domain.Workout
	for _, other := range r.workouts {
		if other.Slug == w.Slug {
			continue
		}
		out = append(out, *other)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeWorkoutRepo) ListAll(_ context.Context) ([]domain.Workout, error) { return r.all(), nil }
func (r *fakeWorkoutRepo) ListNewestFirst(_ context.Context) ([]domain.Workout, error) {
	return r.all(), nil
}

func (r *fakeWorkoutRepo) ListFavorites(_ context.Context) ([]domain.Workout, error) {
	var out []domain.Workout
	for _, w := range r.workouts {
		if w.IsFavorite {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (r *fakeWorkoutRepo) ListRecent(_ context.Context, limit int) ([]domain.Workout, error) {
	out := r.all()
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeWorkoutRepo) ListTopRated(_ context.Context, limit int) ([]domain.Workout, error) {
	return r.ListRecent(nil, limit)
}

func (r *fakeWorkoutRepo) CountByStyle(_ context.Context, style string) (int64, error) {
	var n int64
	for _, w := range r.workouts {
		if w.Style == style {
			n++
		}
	}
	return n, nil
}

func (r *fakeWorkoutRepo) CountByBodyPart(_ context.Context, part string) (int64, error) {
	var n int64
	for _, w := range r.workouts {
		for _, p := range w.BodyParts {
			if p == part {
				n++
				break
			}
		}
	}
	return n, nil
}

func (r *fakeWorkoutRepo) DistinctBodyParts(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, w := range r.workouts {
		for _, p := range append([]string{w.BodyPart}, w.BodyParts...) {
			if p != "" && !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	return out, nil
}

type fakeStyleRepo struct {
	styles map[primitive.ObjectID]*domain.Style
}

func newFakeStyleRepo() *fakeStyleRepo {
	return &fakeStyleRepo{styles: make(map[primitive.ObjectID]*domain.Style)}
}

func (r *fakeStyleRepo) Create(_ context.Context, s *domain.Style) (primitive.ObjectID, error) {
	for _, existing := range r.styles {
		if existing.Slug == s.Slug {
			return primitive.NilObjectID, repository.ErrDuplicateSlug
		}
	}
	id := primitive.NewObjectID()
	clone := *s
	clone.ID = id
	r.styles[id] = &clone
	return id, nil
}

func (r *fakeStyleRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Style, error) {
	s, ok := r.styles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *fakeStyleRepo) GetBySlug(_ context.Context, slug string) (*domain.Style, error) {
	for _, s := range r.styles {
		if s.Slug == slug {
			clone := *s
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeStyleRepo) List(_ context.Context) ([]domain.Style, error) {
	out := make([]domain.Style, 0, len(r.styles))
	for _, s := range r.styles {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeStyleRepo) ListActive(_ context.Context) ([]domain.Style, error) {
	var out []domain.Style
	for _, s := range r.styles {
		if s.Active {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeStyleRepo) SetActive(_ context.Context, id primitive.ObjectID, active bool) error {
	s, ok := r.styles[id]
	if !ok {
		return repository.ErrNotFound
	}
	s.Active = active
	return nil
}

func (r *fakeStyleRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.styles[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.styles, id)
	return nil
}

func (r *fakeStyleRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.styles)), nil
}

type fakeProgramRepo struct {
	programs map[primitive.ObjectID]*domain.Program
	weeks    map[primitive.ObjectID]*domain.ProgramWeek
	items    map[primitive.ObjectID]*domain.ProgramItem
	ops      []string // delete call order, for cascade assertions
}

func newFakeProgramRepo() *fakeProgramRepo {
	return &fakeProgramRepo{
		programs: make(map[primitive.ObjectID]*domain.Program),
		weeks:    make(map[primitive.ObjectID]*domain.ProgramWeek),
		items:    make(map[primitive.ObjectID]*domain.ProgramItem),
	}
}

func (r *fakeProgramRepo) Create(_ context.Context, p *domain.Program) (primitive.ObjectID, error) {
	for _, existing := range r.programs {
		if existing.Slug == p.Slug {
			return primitive.NilObjectID, repository.ErrDuplicateSlug
		}
	}
	id := primitive.NewObjectID()
	clone := *p
	clone.ID = id
	r.programs[id] = &clone
	return id, nil
}

func (r *fakeProgramRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Program, error) {
	p, ok := r.programs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *fakeProgramRepo) GetBySlug(_ context.Context, slug string) (*domain.Program, error) {
	for _, p := range r.programs {
		if p.Slug == slug {
			clone := *p
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeProgramRepo) Update(_ context.Context, p *domain.Program) error {
	if _, ok := r.programs[p.ID]; !ok {
		return repository.ErrNotFound
	}
	clone := *p
	r.programs[p.ID] = &clone
	return nil
}

func (r *fakeProgramRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.programs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.programs, id)
	r.ops = append(r.ops, "delete_program")
	return nil
}

func (r *fakeProgramRepo) List(_ context.Context, activeOnly bool) ([]domain.Program, error) {
	var out []domain.Program
	for _, p := range r.programs {
		if activeOnly && !p.Active {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProgramRepo) ListHome(_ context.Context) ([]domain.Program, error) {
	var out []domain.Program
	for _, p := range r.programs {
		if p.Active && p.ShowOnHome {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProgramRepo) SetActive(_ context.Context, id primitive.ObjectID, active bool) error {
	p, ok := r.programs[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.Active = active
	return nil
}

func (r *fakeProgramRepo) SetShowOnHome(_ context.Context, id primitive.ObjectID, show bool) error {
	p, ok := r.programs[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.ShowOnHome = show
	return nil
}

func (r *fakeProgramRepo) CreateWeek(_ context.Context, w *domain.ProgramWeek) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	clone := *w
	clone.ID = id
	r.weeks[id] = &clone
	return id, nil
}

func (r *fakeProgramRepo) GetWeekByID(_ context.Context, id primitive.ObjectID) (*domain.ProgramWeek, error) {
	w, ok := r.weeks[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *w
	return &clone, nil
}

func (r *fakeProgramRepo) ListWeeks(_ context.Context, programID primitive.ObjectID) ([]domain.ProgramWeek, error) {
	var out []domain.ProgramWeek
	for _, w := range r.weeks {
		if w.ProgramID == programID {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (r *fakeProgramRepo) DeleteWeek(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.weeks[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.weeks, id)
	r.ops = append(r.ops, "delete_week")
	return nil
}

func (r *fakeProgramRepo) DeleteWeeksByProgram(_ context.Context, programID primitive.ObjectID) (int64, error) {
	var n int64
	for id, w := range r.weeks {
		if w.ProgramID == programID {
			delete(r.weeks, id)
			n++
		}
	}
	r.ops = append(r.ops, "delete_weeks")
	return n, nil
}

func (r *fakeProgramRepo) CreateItem(_ context.Context, item *domain.ProgramItem) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	clone := *item
	clone.ID = id
	r.items[id] = &clone
	return id, nil
}

func (r *fakeProgramRepo) ListItems(_ context.Context, weekID primitive.ObjectID) ([]domain.ProgramItem, error) {
	var out []domain.ProgramItem
	for _, item := range r.items {
		if item.WeekID == weekID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeProgramRepo) DeleteItem(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	r.ops = append(r.ops, "delete_item")
	return nil
}

func (r *fakeProgramRepo) DeleteItemsByWeeks(_ context.Context, weekIDs []primitive.ObjectID) (int64, error) {
	want := make(map[primitive.ObjectID]bool, len(weekIDs))
	for _, id := range weekIDs {
		want[id] = true
	}
	var n int64
	for id, item := range r.items {
		if want[item.WeekID] {
			delete(r.items, id)
			n++
		}
	}
	r.ops = append(r.ops, "delete_items")
	return n, nil
}

type fakeHomePlanRepo struct {
	plans map[primitive.ObjectID]*domain.HomePlan
}

func newFakeHomePlanRepo() *fakeHomePlanRepo {
	return &fakeHomePlanRepo{plans: make(map[primitive.ObjectID]*domain.HomePlan)}
}

func (r *fakeHomePlanRepo) Create(_ context.Context, p *domain.HomePlan) (primitive.ObjectID, error) {
	for _, existing := range r.plans {
		if existing.Slug == p.Slug {
			return primitive.NilObjectID, repository.ErrDuplicateSlug
		}
	}
	id := primitive.NewObjectID()
	clone := *p
	clone.ID = id
	r.plans[id] = &clone
	return id, nil
}

func (r *fakeHomePlanRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.HomePlan, error) {
	p, ok := r.plans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *fakeHomePlanRepo) GetBySlug(_ context.Context, slug string) (*domain.HomePlan, error) {
	for _, p := range r.plans {
		if p.Slug == slug {
			clone := *p
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeHomePlanRepo) Update(_ context.Context, p *domain.HomePlan) error {
	if _, ok := r.plans[p.ID]; !ok {
		return repository.ErrNotFound
	}
	clone := *p
	r.plans[p.ID] = &clone
	return nil
}

func (r *fakeHomePlanRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.plans[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.plans, id)
	return nil
}

func (r *fakeHomePlanRepo) List(_ context.Context, activeOnly bool) ([]domain.HomePlan, error) {
	var out []domain.HomePlan
	for _, p := range r.plans {
		if activeOnly && !p.Active {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeHomePlanRepo) SetActive(_ context.Context, id primitive.ObjectID, active bool) error {
	p, ok := r.plans[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.Active = active
	return nil
}

type fakeRecipeRepo struct {
	recipes []domain.Recipe
}

func (r *fakeRecipeRepo) List(_ context.Context) ([]domain.Recipe, error) {
	return r.recipes, nil
}

func (r *fakeRecipeRepo) Search(_ context.Context, query string) ([]domain.Recipe, error) {
	var out []domain.Recipe
	for _, rec := range r.recipes {
		if strings.Contains(strings.ToLower(rec.Name), strings.ToLower(query)) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeRecipeRepo) Upsert(_ context.Context, recipe *domain.Recipe) error {
	for i, rec := range r.recipes {
		if rec.Name == recipe.Name {
			r.recipes[i] = *recipe
			return nil
		}
	}
	r.recipes = append(r.recipes, *recipe)
	return nil
}
