package store

import (
	"context"

	"github.com/PajaGos/To-Do-REST-API/internal/domain"
	"gorm.io/gorm"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user and fills in its ID and timestamps.
	// Returns ErrUsernameExists or ErrEmailExists on a unique violation.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// List returns all users ordered by ID.
	List(ctx context.Context) ([]domain.User, error)

	// Update writes the username and email of an existing user.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user together with their tasks and categories.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id int64) error

	// Exists reports whether a user with the given ID exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// UsernameTaken reports whether another user (any ID except excludeID)
	// already uses the username. Pass 0 to check against every user.
	UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error)

	// EmailTaken reports whether another user already uses the email.
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)

	// WithTx returns a UserStore bound to the given transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *gorm.DB) UserStore
}
