package domain

import (
	"errors"
	"strings"
	"time"
)

// Common validation errors
var (
	ErrEmptyUserName = errors.New("user name cannot be empty")
	ErrEmptyEmail    = errors.New("email cannot be empty")
)

// User represents a registered user of the task board.
// Registration is idempotent: creating a user with an email that already
// exists is a no-op, not an error.
type User struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext password, used temporarily during registration
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	Image          string    `json:"image,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewUser creates a new User with the given name, email and optional
// plaintext password and image URL. The database generates the numeric ID.
//
// NOTE: The caller is responsible for hashing the password before storage.
func NewUser(name, email, password, image string) (*User, error) {
	user := &User{
		Name:      name,
		Email:     email,
		Password:  password,
		Image:     image,
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Name == "" {
		return ErrEmptyUserName
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	return nil
}

// validateEmailFormat performs basic validation of email format.
// Handler requests are additionally checked by the validator package's
// email tag; this guards direct store callers.
func validateEmailFormat(email string) bool {
	atIndex := strings.IndexByte(email, '@')
	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	domainPart := email[atIndex+1:]
	dotIndex := strings.IndexByte(domainPart, '.')
	return dotIndex > 0 && dotIndex < len(domainPart)-1
}
