package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/PajaGos/To-Do-REST-API/internal/domain"
	"github.com/PajaGos/To-Do-REST-API/internal/testdb"
	"github.com/PajaGos/To-Do-REST-API/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func countUsers(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&domain.User{}).Count(&n).Error)
	return n
}

func TestRunInTransaction_Commit(t *testing.T) {
	db := testdb.New(t)

	err := store.RunInTransaction(context.Background(), db, func(ctx context.Context, tx *gorm.DB) error {
		return tx.Create(&domain.User{Username: "alice", Email: "alice@example.com"}).Error
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), countUsers(t, db))
}

func TestRunInTransaction_RollbackOnError(t *testing.T) {
	db := testdb.New(t)
	expected := errors.New("function failed")

	err := store.RunInTransaction(context.Background(), db, func(ctx context.Context, tx *gorm.DB) error {
		if err := tx.Create(&domain.User{Username: "bob", Email: "bob@example.com"}).Error; err != nil {
			return err
		}
		return expected
	})

	assert.ErrorIs(t, err, expected)
	assert.Equal(t, int64(0), countUsers(t, db))
}

func TestRunInTransaction_RollbackOnPanic(t *testing.T) {
	db := testdb.New(t)

	assert.PanicsWithValue(t, "boom", func() {
		_ = store.RunInTransaction(context.Background(), db, func(ctx context.Context, tx *gorm.DB) error {
			if err := tx.Create(&domain.User{Username: "carol", Email: "carol@example.com"}).Error; err != nil {
				return err
			}
			panic("boom")
		})
	})

	assert.Equal(t, int64(0), countUsers(t, db))
}
