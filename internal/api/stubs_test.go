package api

import (
	"context"
	"database/sql"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// Hand-rolled stubs keep handler tests free of a database. Each stub
// records calls so tests can assert what did (or did not) reach the store.

type stubUserStore struct {
	createFn   func(ctx context.Context, user *domain.User) (*domain.User, error)
	listFn     func(ctx context.Context) ([]*domain.User, error)
	createCall int
	listCall   int
}

func (s *stubUserStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	s.createCall++
	return s.createFn(ctx, user)
}

func (s *stubUserStore) List(ctx context.Context) ([]*domain.User, error) {
	s.listCall++
	return s.listFn(ctx)
}

var _ store.UserStore = (*stubUserStore)(nil)

type stubBoardStore struct {
	createFn  func(ctx context.Context, board *domain.Board) (*domain.Board, error)
	listFn    func(ctx context.Context, uid string) ([]*domain.Board, error)
	deleteFn  func(ctx context.Context, id string) error
	callCount int
}

func (s *stubBoardStore) Create(ctx context.Context, board *domain.Board) (*domain.Board, error) {
	s.callCount++
	return s.createFn(ctx, board)
}

func (s *stubBoardStore) ListByOwner(ctx context.Context, uid string) ([]*domain.Board, error) {
	s.callCount++
	return s.listFn(ctx, uid)
}

func (s *stubBoardStore) DeleteCascade(ctx context.Context, id string) error {
	s.callCount++
	return s.deleteFn(ctx, id)
}

func (s *stubBoardStore) WithTx(tx *sql.Tx) store.BoardStore { return s }

var _ store.BoardStore = (*stubBoardStore)(nil)

type stubTaskStore struct {
	createFn    func(ctx context.Context, task *domain.Task) (*domain.Task, error)
	listFn      func(ctx context.Context, uid string) ([]*domain.Task, error)
	updateFn    func(ctx context.Context, task *domain.Task) (*domain.Task, error)
	deleteFn    func(ctx context.Context, id string) error
	categoryFn  func(ctx context.Context, id, newCategory string) error
	replaceFn   func(ctx context.Context, uid string, tasks []*domain.Task) error
	replaceCall int
}

func (s *stubTaskStore) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	return s.createFn(ctx, task)
}

func (s *stubTaskStore) ListByOwner(ctx context.Context, uid string) ([]*domain.Task, error) {
	return s.listFn(ctx, uid)
}

func (s *stubTaskStore) UpdateFields(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	return s.updateFn(ctx, task)
}

func (s *stubTaskStore) DeleteByID(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubTaskStore) UpdateCategory(ctx context.Context, id, newCategory string) error {
	return s.categoryFn(ctx, id, newCategory)
}

func (s *stubTaskStore) ReplaceAllForOwner(ctx context.Context, uid string, tasks []*domain.Task) error {
	s.replaceCall++
	return s.replaceFn(ctx, uid, tasks)
}

func (s *stubTaskStore) WithTx(tx *sql.Tx) store.TaskStore { return s }

var _ store.TaskStore = (*stubTaskStore)(nil)
