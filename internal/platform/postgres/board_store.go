package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// BoardStore implements the store.BoardStore interface using a PostgreSQL
// database as the storage backend.
type BoardStore struct {
	db     *sql.DB // pool handle, used to open transactions
	q      store.DBTX
	logger *slog.Logger
}

// NewBoardStore creates a new PostgreSQL implementation of the BoardStore
// interface. The connection pool is initialized and managed by the caller.
func NewBoardStore(db *sql.DB, logger *slog.Logger) *BoardStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &BoardStore{
		db:     db,
		q:      db,
		logger: logger.With(slog.String("component", "board_store")),
	}
}

// Ensure BoardStore implements store.BoardStore interface
var _ store.BoardStore = (*BoardStore)(nil)

// WithTx implements store.BoardStore.WithTx.
func (s *BoardStore) WithTx(tx *sql.Tx) store.BoardStore {
	return &BoardStore{
		db:     s.db,
		q:      tx,
		logger: s.logger,
	}
}

// Create implements store.BoardStore.Create.
// Returns store.ErrBoardExists when the caller-supplied ID is taken.
func (s *BoardStore) Create(ctx context.Context, board *domain.Board) (*domain.Board, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := board.Validate(); err != nil {
		log.Warn("board validation failed during create",
			slog.String("error", err.Error()),
			slog.String("board_id", board.ID))
		return nil, err
	}

	query := `
		INSERT INTO boards (id, board_name, uid, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, board_name, uid, created_at
	`

	var stored domain.Board
	err := s.q.QueryRowContext(
		ctx,
		query,
		board.ID,
		board.BoardName,
		board.UID,
		board.CreatedAt,
	).Scan(&stored.ID, &stored.BoardName, &stored.UID, &stored.CreatedAt)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate board ID during create",
				slog.String("board_id", board.ID))
			return nil, store.ErrBoardExists
		}
		log.Error("failed to create board",
			slog.String("error", err.Error()),
			slog.String("board_id", board.ID))
		return nil, MapError(err)
	}

	log.Info("board created successfully",
		slog.String("board_id", stored.ID),
		slog.String("uid", stored.UID))
	return &stored, nil
}

// ListByOwner implements store.BoardStore.ListByOwner.
func (s *BoardStore) ListByOwner(ctx context.Context, uid string) ([]*domain.Board, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, board_name, uid, created_at
		FROM boards
		WHERE uid = $1
		ORDER BY position ASC
	`

	rows, err := s.q.QueryContext(ctx, query, uid)
	if err != nil {
		log.Error("failed to query boards by owner",
			slog.String("error", err.Error()),
			slog.String("uid", uid))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var boards []*domain.Board
	for rows.Next() {
		var board domain.Board
		if err := rows.Scan(
			&board.ID,
			&board.BoardName,
			&board.UID,
			&board.CreatedAt,
		); err != nil {
			log.Error("failed to scan board row",
				slog.String("error", err.Error()))
			return nil, err
		}
		boards = append(boards, &board)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	if boards == nil {
		boards = []*domain.Board{}
	}

	log.Debug("listed boards by owner",
		slog.String("uid", uid),
		slog.Int("count", len(boards)))
	return boards, nil
}

// DeleteCascade implements store.BoardStore.DeleteCascade.
// The task delete and the board delete share one transaction; a crash
// between the two statements cannot orphan either side.
func (s *BoardStore) DeleteCascade(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore, ok := s.WithTx(tx).(*BoardStore)
		if !ok {
			return errors.New("unexpected board store type")
		}

		// Tasks reference the board by name, not ID; resolve via subquery
		// so both statements see the same board row.
		deleteTasks := `
			DELETE FROM tasks
			WHERE category = (
				SELECT board_name FROM boards WHERE id = $1
			)
		`
		if _, err := txStore.q.ExecContext(ctx, deleteTasks, id); err != nil {
			return MapError(err)
		}

		deleteBoard := `
			DELETE FROM boards
			WHERE id = $1
		`
		result, err := txStore.q.ExecContext(ctx, deleteBoard, id)
		if err != nil {
			return MapError(err)
		}

		// Deleting a missing board is a no-op; log it and move on.
		if err := CheckRowsAffected(result, "board"); err != nil {
			log.Debug("no board matched cascade delete",
				slog.String("board_id", id))
		}
		return nil
	})

	if err != nil {
		log.Error("failed to cascade delete board",
			slog.String("error", err.Error()),
			slog.String("board_id", id))
		return err
	}

	log.Info("board and associated tasks deleted",
		slog.String("board_id", id))
	return nil
}
