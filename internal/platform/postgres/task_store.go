package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/platform/metrics"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// TaskStore implements the store.TaskStore interface using a PostgreSQL
// database as the storage backend.
type TaskStore struct {
	db     *sql.DB // pool handle, used to open transactions
	q      store.DBTX
	logger *slog.Logger
}

// NewTaskStore creates a new PostgreSQL implementation of the TaskStore
// interface. The connection pool is initialized and managed by the caller.
func NewTaskStore(db *sql.DB, logger *slog.Logger) *TaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskStore{
		db:     db,
		q:      db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// WithTx implements store.TaskStore.WithTx.
func (s *TaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &TaskStore{
		db:     s.db,
		q:      tx,
		logger: s.logger,
	}
}

const taskColumns = "id, title, COALESCE(description, ''), COALESCE(deadline, ''), COALESCE(priority, ''), COALESCE(category, ''), uid, created_at"

// scanTask reads one task row in taskColumns order.
func scanTask(row interface{ Scan(dest ...any) error }) (*domain.Task, error) {
	var task domain.Task
	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Deadline,
		&task.Priority,
		&task.Category,
		&task.UID,
		&task.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Create implements store.TaskStore.Create.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID))
		return nil, err
	}

	query := `
		INSERT INTO tasks (id, title, description, deadline, priority, category, uid, created_at)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7, $8)
		RETURNING ` + taskColumns

	stored, err := scanTask(s.q.QueryRowContext(
		ctx,
		query,
		task.ID,
		task.Title,
		task.Description,
		task.Deadline,
		task.Priority,
		task.Category,
		task.UID,
		task.CreatedAt,
	))
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate task ID during create",
				slog.String("task_id", task.ID))
			return nil, store.ErrTaskExists
		}
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID))
		return nil, MapError(err)
	}

	log.Info("task created successfully",
		slog.String("task_id", stored.ID),
		slog.String("uid", stored.UID))
	return stored, nil
}

// ListByOwner implements store.TaskStore.ListByOwner.
func (s *TaskStore) ListByOwner(ctx context.Context, uid string) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE uid = $1
		ORDER BY position ASC
	`

	rows, err := s.q.QueryContext(ctx, query, uid)
	if err != nil {
		log.Error("failed to query tasks by owner",
			slog.String("error", err.Error()),
			slog.String("uid", uid))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan task row",
				slog.String("error", err.Error()))
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	if tasks == nil {
		tasks = []*domain.Task{}
	}

	log.Debug("listed tasks by owner",
		slog.String("uid", uid),
		slog.Int("count", len(tasks)))
	return tasks, nil
}

// UpdateFields implements store.TaskStore.UpdateFields.
// All mutable fields are overwritten; returns store.ErrTaskNotFound when
// no row matched so the handler can render the empty-result contract.
func (s *TaskStore) UpdateFields(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE tasks
		SET deadline = NULLIF($1, ''),
		    description = NULLIF($2, ''),
		    priority = NULLIF($3, ''),
		    title = $4,
		    category = NULLIF($5, '')
		WHERE id = $6
		RETURNING ` + taskColumns

	updated, err := scanTask(s.q.QueryRowContext(
		ctx,
		query,
		task.Deadline,
		task.Description,
		task.Priority,
		task.Title,
		task.Category,
		task.ID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found for update",
				slog.String("task_id", task.ID))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID))
		return nil, MapError(err)
	}

	log.Info("task updated successfully",
		slog.String("task_id", updated.ID))
	return updated, nil
}

// DeleteByID implements store.TaskStore.DeleteByID.
// Zero affected rows is success; delete is idempotent by design.
func (s *TaskStore) DeleteByID(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM tasks
		WHERE id = $1
	`

	result, err := s.q.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "task"); err != nil {
		log.Debug("no task matched delete",
			slog.String("task_id", id))
		return nil
	}

	log.Info("task deleted", slog.String("task_id", id))
	return nil
}

// UpdateCategory implements store.TaskStore.UpdateCategory.
func (s *TaskStore) UpdateCategory(ctx context.Context, id, newCategory string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE tasks
		SET category = NULLIF($1, '')
		WHERE id = $2
	`

	result, err := s.q.ExecContext(ctx, query, newCategory, id)
	if err != nil {
		log.Error("failed to update task category",
			slog.String("error", err.Error()),
			slog.String("task_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "task"); err != nil {
		log.Debug("task not found for category update",
			slog.String("task_id", id))
		return store.ErrTaskNotFound
	}

	log.Info("task category updated",
		slog.String("task_id", id),
		slog.String("category", newCategory))
	return nil
}

// ReplaceAllForOwner implements store.TaskStore.ReplaceAllForOwner.
// Delete-all then insert-all in list order, inside one transaction; any
// failure rolls back the whole replacement so the pre-operation task set
// survives unchanged. The connection returns to the pool on every path.
func (s *TaskStore) ReplaceAllForOwner(ctx context.Context, uid string, tasks []*domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(tasks) == 0 {
		return fmt.Errorf("%w: task list cannot be empty", domain.ErrValidation)
	}

	start := time.Now()
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore, ok := s.WithTx(tx).(*TaskStore)
		if !ok {
			return errors.New("unexpected task store type")
		}

		deleteQuery := `
			DELETE FROM tasks
			WHERE uid = $1
		`
		if _, err := txStore.q.ExecContext(ctx, deleteQuery, uid); err != nil {
			return MapError(err)
		}

		insertQuery := `
			INSERT INTO tasks (id, title, description, deadline, priority, category, uid, created_at)
			VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7, $8)
		`
		for _, task := range tasks {
			createdAt := task.CreatedAt
			if createdAt.IsZero() {
				createdAt = time.Now().UTC()
			}
			// Every inserted row carries the path owner, whatever the
			// payload claimed.
			if _, err := txStore.q.ExecContext(
				ctx,
				insertQuery,
				task.ID,
				task.Title,
				task.Description,
				task.Deadline,
				task.Priority,
				task.Category,
				uid,
				createdAt,
			); err != nil {
				return MapError(err)
			}
		}

		return nil
	})

	if err != nil {
		metrics.ObserveBulkReplace("failed", time.Since(start))
		log.Error("bulk task replacement rolled back",
			slog.String("error", err.Error()),
			slog.String("uid", uid),
			slog.Int("task_count", len(tasks)))
		return err
	}

	metrics.ObserveBulkReplace("success", time.Since(start))
	log.Info("bulk task replacement committed",
		slog.String("uid", uid),
		slog.Int("task_count", len(tasks)))
	return nil
}
