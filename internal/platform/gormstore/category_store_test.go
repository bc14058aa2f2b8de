package gormstore_test

import (
	"context"
	"testing"

	"github.com/PajaGos/To-Do-REST-API/internal/domain"
	"github.com/PajaGos/To-Do-REST-API/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryStore_CRUD(t *testing.T) {
	s := newStores(t)
	ctx := context.Background()
	alice := s.user(t, "alice")

	work := s.category(t, alice.ID, "work")
	assert.NotZero(t, work.ID)

	got, err := s.categories.GetByID(ctx, work.ID)
	require.NoError(t, err)
	assert.Equal(t, "work", got.Name)
	assert.Equal(t, alice.ID, got.UserID)

	got.Name = "office"
	require.NoError(t, s.categories.Update(ctx, got))
	got, err = s.categories.GetByID(ctx, work.ID)
	require.NoError(t, err)
	assert.Equal(t, "office", got.Name)

	s.category(t, alice.ID, "home")
	all, err := s.categories.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, s.categories.Delete(ctx, work.ID))
	_, err = s.categories.GetByID(ctx, work.ID)
	assert.ErrorIs(t, err, store.ErrCategoryNotFound)
	assert.ErrorIs(t, s.categories.Delete(ctx, work.ID), store.ErrCategoryNotFound)
	assert.ErrorIs(t,
		s.categories.Update(ctx, &domain.Category{ID: work.ID, UserID: alice.ID, Name: "x"}),
		store.ErrCategoryNotFound)
}

func TestCategoryStore_NameIsGloballyUnique(t *testing.T) {
	s := newStores(t)
	ctx := context.Background()
	alice := s.user(t, "alice")
	bob := s.user(t, "bob")
	work := s.category(t, alice.ID, "work")

	err := s.categories.Create(ctx, &domain.Category{UserID: bob.ID, Name: "work"})
	assert.ErrorIs(t, err, store.ErrCategoryNameExists)

	taken, err := s.categories.NameTaken(ctx, "work", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = s.categories.NameTaken(ctx, "work", work.ID)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestCategoryStore_CountExistingAndListByTask(t *testing.T) {
	s := newStores(t)
	ctx := context.Background()
	alice := s.user(t, "alice")
	work := s.category(t, alice.ID, "work")
	home := s.category(t, alice.ID, "home")
	s.category(t, alice.ID, "garden")

	n, err := s.categories.CountExisting(ctx, []int64{work.ID, home.ID, 999})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = s.categories.CountExisting(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	task := s.task(t, alice.ID, "report")
	require.NoError(t, s.taskCategories.Assign(ctx, task.ID, home.ID))
	require.NoError(t, s.taskCategories.Assign(ctx, task.ID, work.ID))

	linked, err := s.categories.ListByTask(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, linked, 2)
	assert.Equal(t, "work", linked[0].Name)
	assert.Equal(t, "home", linked[1].Name)

	// Deleting a category drops its links but keeps the task.
	require.NoError(t, s.categories.Delete(ctx, work.ID))
	linked, err = s.categories.ListByTask(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, linked, 1)
	ok, err := s.tasks.Exists(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}
