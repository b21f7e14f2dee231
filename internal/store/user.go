package store

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store and returns the stored row with
	// its generated ID. Password hashing happens internally when a plaintext
	// password is present.
	// Returns ErrEmailExists if the email is already taken; callers that
	// provision on login treat that as an idempotent no-op.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// List returns all users in insertion order. An empty result is a
	// valid, non-error outcome.
	List(ctx context.Context) ([]*domain.User, error)
}
