package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// BoardStore defines the interface for board ("category") persistence.
type BoardStore interface {
	// Create saves a new board with its caller-supplied ID and returns the
	// stored row.
	// Returns ErrBoardExists if the ID is already taken.
	// Returns validation errors from the domain Board if data is invalid.
	Create(ctx context.Context, board *domain.Board) (*domain.Board, error)

	// ListByOwner returns all boards owned by uid, ordered by insertion.
	// An empty result is a valid, non-error outcome; surfacing 404 on empty
	// is a handler policy, not a store invariant.
	ListByOwner(ctx context.Context, uid string) ([]*domain.Board, error)

	// DeleteCascade removes the board and every task whose category equals
	// the board's name. Both deletes execute inside one transaction so a
	// crash cannot leave the board without its task cleanup. Deleting a
	// non-existent board is a no-op, not an error.
	DeleteCascade(ctx context.Context, id string) error

	// WithTx returns a BoardStore bound to the provided transaction so
	// multiple operations can share one transaction scope.
	WithTx(tx *sql.Tx) BoardStore
}
