package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/mock"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

var (
	alice = models.Identity{UserID: 1, Username: "alice"}
	bob   = models.Identity{UserID: 2, Username: "bob"}
)

func newTestTodoSvc(t *testing.T, ctrl *gomock.Controller) (TodoService, *mock.MockTodoRepository, *mock.MockEnrichmentService) {
	t.Helper()
	repo := mock.NewMockTodoRepository(ctrl)
	enricher := mock.NewMockEnrichmentService(ctrl)
	return NewTodoService(repo, enricher, logger.Nop()), repo, enricher
}

func validFields() models.TodoFields {
	return models.TodoFields{Title: "buy milk", Description: "two litres", Priority: 3}
}

func TestTodoService_NoIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestTodoSvc(t, ctrl)
	ctx := context.Background()

	// no repository or enricher calls may happen without an identity
	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = svc.Get(ctx, 7)
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = svc.Create(ctx, validFields())
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = svc.Update(ctx, 7, validFields())
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = svc.Delete(ctx, 7)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestTodoService_List_ScopedToCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestTodoSvc(t, ctrl)
	ctx := utils.WithIdentity(context.Background(), bob)

	repo.EXPECT().ListTodos(ctx, int64(2)).Return([]models.Todo{}, nil)

	todos, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestTodoService_Create_OwnerFromIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, enricher := newTestTodoSvc(t, ctrl)
	ctx := utils.WithIdentity(context.Background(), alice)

	gomock.InOrder(
		enricher.EXPECT().Enrich(ctx, "two litres").Return("two litres of oat milk", nil),
		repo.EXPECT().CreateTodo(ctx, models.Todo{
			Title:       "buy milk",
			Description: "two litres of oat milk",
			Priority:    3,
			OwnerID:     1,
		}).DoAndReturn(func(_ context.Context, todo models.Todo) (models.Todo, error) {
			todo.ID = 7
			return todo, nil
		}),
	)

	todo, err := svc.Create(ctx, validFields())
	require.NoError(t, err)
	assert.Equal(t, int64(7), todo.ID)
	assert.Equal(t, int64(1), todo.OwnerID)
	assert.Equal(t, "two litres of oat milk", todo.Description)
}

func TestTodoService_Create_EnrichmentFailureStoresNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, enricher := newTestTodoSvc(t, ctrl)
	ctx := utils.WithIdentity(context.Background(), alice)
	upstream := errors.New("upstream 503")

	enricher.EXPECT().Enrich(gomock.Any(), gomock.Any()).Return("", upstream)

	_, err := svc.Create(ctx, validFields())
	assert.ErrorIs(t, err, ErrEnrichmentFailed)
	assert.ErrorIs(t, err, upstream)
}

func TestTodoService_Create_ShortEnrichedDescriptionStoresNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, enricher := newTestTodoSvc(t, ctrl)
	ctx := utils.WithIdentity(context.Background(), alice)

	// no CreateTodo expectation: the repository must not be reached
	enricher.EXPECT().Enrich(gomock.Any(), gomock.Any()).Return("ok", nil)

	_, err := svc.Create(ctx, validFields())
	assert.ErrorIs(t, err, ErrEnrichmentFailed)
	assert.ErrorIs(t, err, validators.ErrInvalidDescription)
}

func TestTodoService_Create_NilEnricher(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockTodoRepository(ctrl)
	svc := NewTodoService(repo, nil, logger.Nop())
	ctx := utils.WithIdentity(context.Background(), alice)

	repo.EXPECT().CreateTodo(ctx, models.NewTodo(validFields(), 1)).Return(models.Todo{ID: 1}, nil)

	_, err := svc.Create(ctx, validFields())
	require.NoError(t, err)
}

func TestTodoService_Get_OtherOwnerIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestTodoSvc(t, ctrl)
	ctx := utils.WithIdentity(context.Background(), bob)

	repo.EXPECT().GetTodo(ctx, int64(2), int64(7)).Return(models.Todo{}, store.ErrTodoNotFound)

	_, err := svc.Get(ctx, 7)
	assert.ErrorIs(t, err, store.ErrTodoNotFound)
}

func TestTodoService_Update_FullReplaceWithCallerAsOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestTodoSvc(t, ctrl)
	ctx := utils.WithIdentity(context.Background(), alice)

	fields := models.TodoFields{Title: "new", Description: "replaced", Priority: 5, Complete: true}
	want := models.Todo{ID: 7, Title: "new", Description: "replaced", Priority: 5, Complete: true, OwnerID: 1}

	repo.EXPECT().UpdateTodo(ctx, want).Return(want, nil)

	got, err := svc.Update(ctx, 7, fields)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTodoService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestTodoSvc(t, ctrl)
	ctx := utils.WithIdentity(context.Background(), alice)

	repo.EXPECT().DeleteTodo(ctx, int64(1), int64(7)).Return(models.Todo{ID: 7, OwnerID: 1}, nil)

	deleted, err := svc.Delete(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), deleted.ID)
}
