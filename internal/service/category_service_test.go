package service_test

import (
	"context"
	"testing"

	"github.com/PajaGos/To-Do-REST-API/internal/domain"
	"github.com/PajaGos/To-Do-REST-API/internal/service"
	"github.com/PajaGos/To-Do-REST-API/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_CreateCategory(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	f.category(t, alice.ID, "Home")

	err := f.categories.CreateCategory(ctx, &domain.Category{UserID: bob.ID, Name: "Home"})
	assert.Equal(t, "Category with name Home already exists.", clientMessage(t, err, service.ErrConflict))

	err = f.categories.CreateCategory(ctx, &domain.Category{UserID: 31, Name: "Garden"})
	assert.Equal(t, "User with ID 31 does not exist.", clientMessage(t, err, service.ErrReferenceNotFound))

	err = f.categories.CreateCategory(ctx, &domain.Category{UserID: bob.ID, Name: ""})
	assert.ErrorIs(t, err, domain.ErrValidation)

	categories, err := f.categories.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Home", categories[0].Name)
}

func TestCategoryService_UpdateCategory(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.user(t, "alice")
	home := f.category(t, alice.ID, "Home")
	f.category(t, alice.ID, "Work")

	assert.NoError(t, f.categories.UpdateCategory(ctx, home.ID, service.CategoryPatch{Name: ptr("Home")}))
	assert.NoError(t, f.categories.UpdateCategory(ctx, home.ID, service.CategoryPatch{}))

	err := f.categories.UpdateCategory(ctx, home.ID, service.CategoryPatch{Name: ptr("Work")})
	assert.Equal(t, "Category with name Work already exists.", clientMessage(t, err, service.ErrConflict))

	require.NoError(t, f.categories.UpdateCategory(ctx, home.ID, service.CategoryPatch{Name: ptr("House")}))
	got, err := f.categories.GetCategory(ctx, home.ID)
	require.NoError(t, err)
	assert.Equal(t, "House", got.Name)

	err = f.categories.UpdateCategory(ctx, 404, service.CategoryPatch{Name: ptr("Nope")})
	assert.ErrorIs(t, err, store.ErrCategoryNotFound)
}

func TestCategoryService_TasksAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.user(t, "alice")
	home := f.category(t, alice.ID, "Home")
	linked := f.task(t, alice.ID, "linked", home.ID)
	f.task(t, alice.ID, "unlinked")

	tasks, err := f.categories.ListCategoryTasks(ctx, home.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, linked.ID, tasks[0].ID)

	require.NoError(t, f.categories.DeleteCategory(ctx, home.ID))

	got, err := f.tasks.GetTask(ctx, linked.ID)
	require.NoError(t, err)
	assert.Empty(t, got.CategoryIDs())

	_, err = f.categories.ListCategoryTasks(ctx, home.ID)
	assert.ErrorIs(t, err, store.ErrCategoryNotFound)
	assert.ErrorIs(t, f.categories.DeleteCategory(ctx, home.ID), store.ErrCategoryNotFound)
}
