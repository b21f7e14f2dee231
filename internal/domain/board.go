package domain

import (
	"errors"
	"time"
)

// Common validation errors
var (
	ErrEmptyBoardID   = errors.New("board ID cannot be empty")
	ErrEmptyBoardName = errors.New("board name cannot be empty")
	ErrEmptyOwnerID   = errors.New("owner ID cannot be empty")
)

// Board is a named grouping of tasks ("category") owned by one user.
// The ID is caller-supplied; BoardName doubles as a soft foreign key from
// tasks (Task.Category holds the board name, not the board ID).
type Board struct {
	ID        string    `json:"id"`
	BoardName string    `json:"boardName"`
	UID       string    `json:"uid"`
	CreatedAt time.Time `json:"created_at"`
}

// NewBoard creates a new Board with the given caller-supplied ID, name and
// owner identifier. Returns an error if validation fails.
func NewBoard(id, boardName, uid string) (*Board, error) {
	board := &Board{
		ID:        id,
		BoardName: boardName,
		UID:       uid,
		CreatedAt: time.Now().UTC(),
	}

	if err := board.Validate(); err != nil {
		return nil, err
	}

	return board, nil
}

// Validate checks if the Board has valid data.
func (b *Board) Validate() error {
	if b.ID == "" {
		return ErrEmptyBoardID
	}

	if b.BoardName == "" {
		return ErrEmptyBoardName
	}

	if b.UID == "" {
		return ErrEmptyOwnerID
	}

	return nil
}
