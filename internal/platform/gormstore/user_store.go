package gormstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/PajaGos/To-Do-REST-API/internal/domain"
	"github.com/PajaGos/To-Do-REST-API/internal/store"
	"gorm.io/gorm"
)

// UserStore implements store.UserStore with gorm.
type UserStore struct {
	db *gorm.DB
}

// NewUserStore creates a UserStore. The caller owns the connection.
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

var _ store.UserStore = (*UserStore)(nil)

// WithTx implements store.UserStore.
func (s *UserStore) WithTx(tx *gorm.DB) store.UserStore {
	return &UserStore{db: tx}
}

// Create implements store.UserStore.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Omit("Tasks", "Categories").Create(user).Error; err != nil {
		return mapUserError(err)
	}
	return nil
}

// GetByID implements store.UserStore.
func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, mapUserError(err)
	}
	return &user, nil
}

// List implements store.UserStore.
func (s *UserStore) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, MapError(err)
	}
	return users, nil
}

// Update implements store.UserStore.
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}
	res := s.db.WithContext(ctx).
		Model(&domain.User{ID: user.ID}).
		Select("username", "email", "updated_at").
		Updates(&domain.User{
			Username:  user.Username,
			Email:     user.Email,
			UpdatedAt: s.db.NowFunc(),
		})
	if res.Error != nil {
		return mapUserError(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrUserNotFound
	}
	return nil
}

// Delete implements store.UserStore. Tasks, categories and their links are
// removed by the cascading foreign keys.
func (s *UserStore) Delete(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&domain.User{}, id)
	if res.Error != nil {
		return MapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrUserNotFound
	}
	return nil
}

// Exists implements store.UserStore.
func (s *UserStore) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(s.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id))
}

// UsernameTaken implements store.UserStore.
func (s *UserStore) UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error) {
	return s.taken(ctx, "username", username, excludeID)
}

// EmailTaken implements store.UserStore.
func (s *UserStore) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	return s.taken(ctx, "email", email, excludeID)
}

func (s *UserStore) taken(ctx context.Context, column, value string, excludeID int64) (bool, error) {
	q := s.db.WithContext(ctx).Model(&domain.User{}).Where(column+" = ?", value)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	return exists(q)
}

// mapUserError narrows generic store errors to the user-specific ones.
func mapUserError(err error) error {
	mapped := MapError(err)
	switch {
	case errors.Is(mapped, store.ErrDuplicate):
		if mentionsColumn(err, "email") {
			return fmt.Errorf("%w: %v", store.ErrEmailExists, err)
		}
		return fmt.Errorf("%w: %v", store.ErrUsernameExists, err)
	case errors.Is(mapped, store.ErrNotFound):
		return fmt.Errorf("%w: %v", store.ErrUserNotFound, err)
	default:
		return mapped
	}
}

// exists reports whether the query matches at least one row.
func exists(q *gorm.DB) (bool, error) {
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, MapError(err)
	}
	return n > 0, nil
}
