package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// TaskStore defines the interface for task persistence, including the
// all-or-nothing bulk replacement of an owner's task set.
type TaskStore interface {
	// Create saves a new task and returns the stored row.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// ListByOwner returns all tasks owned by uid, ordered by insertion.
	// An empty result is a valid, non-error outcome.
	ListByOwner(ctx context.Context, uid string) ([]*domain.Task, error)

	// UpdateFields overwrites the mutable fields (deadline, description,
	// priority, title, category) of the task identified by task.ID and
	// returns the updated row.
	// Returns ErrTaskNotFound if no row matched; callers render that as an
	// empty result rather than an error response.
	UpdateFields(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// DeleteByID removes one task. Deleting a non-existent ID is not an
	// error; delete is idempotent by design.
	DeleteByID(ctx context.Context, id string) error

	// UpdateCategory updates only the category field of one task.
	// Returns ErrTaskNotFound if no row matched id.
	UpdateCategory(ctx context.Context, id, newCategory string) error

	// ReplaceAllForOwner atomically replaces the owner's entire task set:
	// delete-all then insert-all, in list order, inside a single
	// transaction. On any failure the transaction rolls back and the
	// pre-operation task set is preserved unchanged.
	ReplaceAllForOwner(ctx context.Context, uid string, tasks []*domain.Task) error

	// WithTx returns a TaskStore bound to the provided transaction so
	// multiple operations can share one transaction scope.
	WithTx(tx *sql.Tx) TaskStore
}
