package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Field limits shared by the API validation tags and the domain checks.
const (
	UsernameMinLength = 3
	UsernameMaxLength = 100
	TitleMaxLength    = 100
	NameMaxLength     = 100
)

var validate = validator.New()

// User owns tasks and categories. Deleting a user removes everything they own.
type User struct {
	ID         int64      `gorm:"primaryKey"`
	Username   string     `gorm:"size:100;not null;uniqueIndex"`
	Email      string     `gorm:"size:255;not null;uniqueIndex"`
	CreatedAt  time.Time  `gorm:"not null"`
	UpdatedAt  time.Time  `gorm:"not null"`
	Tasks      []Task     `gorm:"constraint:OnDelete:CASCADE"`
	Categories []Category `gorm:"constraint:OnDelete:CASCADE"`
}

// NewUser builds a validated User. Surrounding whitespace is trimmed.
func NewUser(username, email string) (*User, error) {
	user := &User{
		Username: strings.TrimSpace(username),
		Email:    strings.TrimSpace(email),
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// Validate checks the username length and the email format.
func (u *User) Validate() error {
	n := utf8.RuneCountInString(u.Username)
	if n == 0 {
		return NewValidationError("username", "is required", nil)
	}
	if n < UsernameMinLength || n > UsernameMaxLength {
		return NewValidationError("username", "must be between 3 and 100 characters", nil)
	}
	if u.Email == "" {
		return NewValidationError("email", "is required", nil)
	}
	if err := validate.Var(u.Email, "email"); err != nil {
		return NewValidationError("email", "is not a valid address", ErrInvalidEmail)
	}
	return nil
}
