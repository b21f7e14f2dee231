package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Parallel()

	board, err := NewBoard("board-1", "Doing", "user-42")
	require.NoError(t, err)
	assert.Equal(t, "board-1", board.ID)
	assert.Equal(t, "Doing", board.BoardName)
	assert.Equal(t, "user-42", board.UID)
}

func TestBoardValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		board   Board
		wantErr error
	}{
		{
			name:    "missing id",
			board:   Board{BoardName: "Doing", UID: "u1"},
			wantErr: ErrEmptyBoardID,
		},
		{
			name:    "missing board name",
			board:   Board{ID: "1", UID: "u1"},
			wantErr: ErrEmptyBoardName,
		},
		{
			name:    "missing owner",
			board:   Board{ID: "1", BoardName: "Doing"},
			wantErr: ErrEmptyOwnerID,
		},
		{
			name:  "valid",
			board: Board{ID: "1", BoardName: "Doing", UID: "u1"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.board.Validate()
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
