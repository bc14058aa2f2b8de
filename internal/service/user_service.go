package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/PajaGos/To-Do-REST-API/internal/domain"
	"github.com/PajaGos/To-Do-REST-API/internal/store"
	"gorm.io/gorm"
)

// UserService provides user-related operations.
type UserService interface {
	// ListUsers returns every user ordered by ID.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// GetUser retrieves a user by their ID.
	GetUser(ctx context.Context, userID int64) (*domain.User, error)

	// ListUserTasks returns the tasks owned by the user.
	// Returns store.ErrUserNotFound if the user does not exist.
	ListUserTasks(ctx context.Context, userID int64) ([]domain.Task, error)

	// CreateUser saves a new user after checking that the username and the
	// email are free.
	CreateUser(ctx context.Context, user *domain.User) error

	// UpdateUser applies the patch to an existing user. Uniqueness is checked
	// against every other user.
	UpdateUser(ctx context.Context, userID int64, patch UserPatch) error

	// DeleteUser deletes a user together with everything they own.
	DeleteUser(ctx context.Context, userID int64) error
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	db        *gorm.DB
	userStore store.UserStore
	taskStore store.TaskStore
	logger    *slog.Logger
}

var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a new UserService
func NewUserService(
	db *gorm.DB,
	userStore store.UserStore,
	taskStore store.TaskStore,
	logger *slog.Logger,
) *UserServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		db:        db,
		userStore: userStore,
		taskStore: taskStore,
		logger:    logger.With("component", "user_service"),
	}
}

// ListUsers retrieves all users
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser retrieves a user by their ID
func (s *UserServiceImpl) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to retrieve user",
				"error", err,
				"user_id", userID)
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return user, nil
}

// ListUserTasks retrieves the tasks of one user
func (s *UserServiceImpl) ListUserTasks(ctx context.Context, userID int64) ([]domain.Task, error) {
	ok, err := s.userStore.Exists(ctx, userID)
	if err != nil {
		s.logger.Error("failed to check user existence",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to list user tasks: %w", err)
	}
	if !ok {
		return nil, store.ErrUserNotFound
	}

	tasks, err := s.taskStore.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list user tasks",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to list user tasks: %w", err)
	}
	return tasks, nil
}

// CreateUser creates a new user
// Uses a transaction so the uniqueness checks and the insert see the same data
func (s *UserServiceImpl) CreateUser(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *gorm.DB) error {
		txStore := s.userStore.WithTx(tx)

		if err := checkUserUnique(ctx, txStore, user, 0); err != nil {
			return err
		}
		return translateUserConflict(txStore.Create(ctx, user), user)
	})
	if err != nil {
		logFailure(s.logger, "failed to create user", err, "username", user.Username)
		return err
	}

	s.logger.Info("user created successfully",
		"user_id", user.ID,
		"username", user.Username)
	return nil
}

// UpdateUser updates the supplied fields of a user
// Following the pattern of getting the complete user first, then applying the changes
func (s *UserServiceImpl) UpdateUser(ctx context.Context, userID int64, patch UserPatch) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *gorm.DB) error {
		txStore := s.userStore.WithTx(tx)

		user, err := txStore.GetByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to retrieve user for update: %w", err)
		}

		patch.Apply(user)
		if err := user.Validate(); err != nil {
			return err
		}
		if err := checkUserUnique(ctx, txStore, user, user.ID); err != nil {
			return err
		}
		return translateUserConflict(txStore.Update(ctx, user), user)
	})
	if err != nil {
		logFailure(s.logger, "failed to update user", err, "user_id", userID)
		return err
	}

	s.logger.Info("user updated successfully", "user_id", userID)
	return nil
}

// DeleteUser deletes a user by their ID
func (s *UserServiceImpl) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.userStore.Delete(ctx, userID); err != nil {
		logFailure(s.logger, "failed to delete user", err, "user_id", userID)
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("user deleted successfully", "user_id", userID)
	return nil
}

// checkUserUnique reports a conflict when another user (not excludeID) holds
// the username or the email.
func checkUserUnique(ctx context.Context, users store.UserStore, user *domain.User, excludeID int64) error {
	taken, err := users.UsernameTaken(ctx, user.Username, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return usernameTaken(user.Username)
	}

	taken, err = users.EmailTaken(ctx, user.Email, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return emailTaken(user.Email)
	}
	return nil
}

// translateUserConflict turns unique-index violations into the messages the
// pre-checks produce.
func translateUserConflict(err error, user *domain.User) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrUsernameExists):
		return usernameTaken(user.Username)
	case errors.Is(err, store.ErrEmailExists):
		return emailTaken(user.Email)
	default:
		return err
	}
}

// logFailure keeps client mistakes out of the error log.
func logFailure(l *slog.Logger, msg string, err error, args ...interface{}) {
	var svcErr *Error
	if errors.As(err, &svcErr) || store.IsNotFoundError(err) || errors.Is(err, domain.ErrValidation) {
		l.Debug(msg, append(args, "reason", err.Error())...)
		return
	}
	l.Error(msg, append(args, "error", err)...)
}
