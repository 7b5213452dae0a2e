package muscleexercise_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"strength-api/internal/domain/apperror"
	"strength-api/internal/domain/shared"
	"strength-api/internal/domain/workout"
	repo "strength-api/internal/repository/interfaces"
	meuc "strength-api/internal/usecase/muscleexercise"
)

type fakeLinkRepo struct {
	existing []*workout.MuscleExercise
	getErr   error

	inserted  []*workout.MuscleExercise
	createErr error
	createdID []uuid.UUID
}

func (r *fakeLinkRepo) GetByExerciseName(context.Context, string) ([]*workout.MuscleExercise, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.existing, nil
}

func (r *fakeLinkRepo) CreateMany(_ context.Context, links []*workout.MuscleExercise) ([]uuid.UUID, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.inserted = links
	if r.createdID != nil {
		return r.createdID, nil
	}
	ids := make([]uuid.UUID, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.ID)
	}
	return ids, nil
}

type fakeRepos struct {
	links *fakeLinkRepo
}

func (r *fakeRepos) Users() repo.UserRepository                     { return nil }
func (r *fakeRepos) Roles() repo.RoleRepository                     { return nil }
func (r *fakeRepos) UserRoles() repo.UserRoleRepository             { return nil }
func (r *fakeRepos) Muscles() repo.MuscleRepository                 { return nil }
func (r *fakeRepos) MuscleExercises() repo.MuscleExerciseRepository { return r.links }

type fakeUnitOfWork struct {
	repos repo.Repositories
	begun int
}

func (u *fakeUnitOfWork) BeginTransaction(ctx context.Context, action repo.TransactionalAction) shared.Result[shared.Unit] {
	u.begun++
	return action(ctx, u.repos)
}

func link(muscleName, exerciseName string) *workout.MuscleExercise {
	return workout.NewMuscleExercise(workout.NewMuscle(muscleName), workout.NewExercise(exerciseName, ""))
}

func newFixture(links *fakeLinkRepo) (*meuc.CreateManyHandler, *fakeUnitOfWork) {
	uow := &fakeUnitOfWork{repos: &fakeRepos{links: links}}
	return meuc.NewCreateManyHandler(links, uow), uow
}

func TestCreateMany_AllNew_Success(t *testing.T) {
	links := &fakeLinkRepo{}
	handler, uow := newFixture(links)

	result := handler.Handle(context.Background(), meuc.CreateManyCommand{
		ExerciseName: "Bench Press",
		MuscleNames:  []string{"Chest", "Triceps"},
	})

	require.True(t, result.IsSuccess())
	require.Equal(t, 1, uow.begun)
	require.Len(t, links.inserted, 2)
	require.Equal(t, "Chest", links.inserted[0].Muscle.Name)
	require.Equal(t, "Triceps", links.inserted[1].Muscle.Name)
	require.Equal(t, "Bench Press", links.inserted[0].Exercise.Name)
}

func TestCreateMany_AllPairsExist_BadRequest(t *testing.T) {
	links := &fakeLinkRepo{existing: []*workout.MuscleExercise{
		link("Chest", "Bench Press"),
	}}
	handler, uow := newFixture(links)

	// сравнение пар без учёта регистра
	result := handler.Handle(context.Background(), meuc.CreateManyCommand{
		ExerciseName: "bench press",
		MuscleNames:  []string{"CHEST"},
	})

	require.True(t, result.IsFailure())
	require.Equal(t, http.StatusBadRequest, result.StatusCode())
	require.Equal(t, []shared.CustomError{apperror.MuscleExerciseAlreadyExists}, result.Errors())
	require.Equal(t, 0, uow.begun, "nothing to insert, transaction must not start")
}

func TestCreateMany_MixedPairs_InsertsOnlyNew(t *testing.T) {
	links := &fakeLinkRepo{existing: []*workout.MuscleExercise{
		link("Chest", "Bench Press"),
	}}
	handler, _ := newFixture(links)

	result := handler.Handle(context.Background(), meuc.CreateManyCommand{
		ExerciseName: "Bench Press",
		MuscleNames:  []string{"Chest", "Triceps"},
	})

	require.True(t, result.IsSuccess())
	require.Len(t, links.inserted, 1)
	require.Equal(t, "Triceps", links.inserted[0].Muscle.Name)
}

func TestCreateMany_LookupFails_InternalError(t *testing.T) {
	links := &fakeLinkRepo{getErr: errors.New("query failed")}
	handler, _ := newFixture(links)

	result := handler.Handle(context.Background(), meuc.CreateManyCommand{
		ExerciseName: "Bench Press",
		MuscleNames:  []string{"Chest"},
	})

	require.True(t, result.IsFailure())
	require.Equal(t, http.StatusInternalServerError, result.StatusCode())
	require.Equal(t, []shared.CustomError{apperror.InternalError}, result.Errors())
}

func TestCreateMany_InsertFails_InternalError(t *testing.T) {
	links := &fakeLinkRepo{createErr: errors.New("insert failed")}
	handler, _ := newFixture(links)

	result := handler.Handle(context.Background(), meuc.CreateManyCommand{
		ExerciseName: "Bench Press",
		MuscleNames:  []string{"Chest"},
	})

	require.True(t, result.IsFailure())
	require.Equal(t, http.StatusInternalServerError, result.StatusCode())
	require.Equal(t, []shared.CustomError{apperror.InternalError}, result.Errors())
}

func TestCreateMany_NothingCreated_InternalError(t *testing.T) {
	links := &fakeLinkRepo{createdID: []uuid.UUID{}}
	handler, _ := newFixture(links)

	result := handler.Handle(context.Background(), meuc.CreateManyCommand{
		ExerciseName: "Bench Press",
		MuscleNames:  []string{"Chest"},
	})

	require.True(t, result.IsFailure())
	require.Equal(t, http.StatusInternalServerError, result.StatusCode())
	require.Equal(t, []shared.CustomError{apperror.InternalError}, result.Errors())
}

func TestCreateManyValidator(t *testing.T) {
	v := meuc.NewCreateManyValidator()

	errs := v.Validate(context.Background(), meuc.CreateManyCommand{})
	require.Len(t, errs, 2)
	require.Equal(t, "ExerciseName", errs[0].Code)
	require.Equal(t, "MuscleNames", errs[1].Code)

	errs = v.Validate(context.Background(), meuc.CreateManyCommand{
		ExerciseName: "Bench Press",
		MuscleNames:  []string{"Chest"},
	})
	require.Empty(t, errs)
}
