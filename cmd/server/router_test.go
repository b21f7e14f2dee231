package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// trackingStores record whether any store method ran, so tests can prove
// the auth gate rejects requests before storage is touched.
type trackingUserStore struct{ touched *bool }

func (s trackingUserStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	*s.touched = true
	return user, nil
}

func (s trackingUserStore) List(ctx context.Context) ([]*domain.User, error) {
	*s.touched = true
	return []*domain.User{{ID: 1, Name: "A", Email: "a@b.com"}}, nil
}

type trackingBoardStore struct{ touched *bool }

func (s trackingBoardStore) Create(ctx context.Context, board *domain.Board) (*domain.Board, error) {
	*s.touched = true
	return board, nil
}

func (s trackingBoardStore) ListByOwner(ctx context.Context, uid string) ([]*domain.Board, error) {
	*s.touched = true
	return []*domain.Board{{ID: "b-1", BoardName: "todo", UID: uid}}, nil
}

func (s trackingBoardStore) DeleteCascade(ctx context.Context, id string) error {
	*s.touched = true
	return nil
}

func (s trackingBoardStore) WithTx(tx *sql.Tx) store.BoardStore { return s }

type trackingTaskStore struct{ touched *bool }

func (s trackingTaskStore) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	*s.touched = true
	return task, nil
}

func (s trackingTaskStore) ListByOwner(ctx context.Context, uid string) ([]*domain.Task, error) {
	*s.touched = true
	return []*domain.Task{}, nil
}

func (s trackingTaskStore) UpdateFields(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	*s.touched = true
	return task, nil
}

func (s trackingTaskStore) DeleteByID(ctx context.Context, id string) error {
	*s.touched = true
	return nil
}

func (s trackingTaskStore) UpdateCategory(ctx context.Context, id, newCategory string) error {
	*s.touched = true
	return nil
}

func (s trackingTaskStore) ReplaceAllForOwner(ctx context.Context, uid string, tasks []*domain.Task) error {
	*s.touched = true
	return nil
}

func (s trackingTaskStore) WithTx(tx *sql.Tx) store.TaskStore { return s }

func newTestRouter(t *testing.T, touched *bool) (http.Handler, auth.JWTService) {
	t.Helper()

	jwtService := auth.NewTestJWTService(
		"router-test-secret-key-long-enough-for-hs256",
		time.Hour,
		time.Now,
	)

	router := newRouter(routerDeps{
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		jwtService: jwtService,
		userStore:  trackingUserStore{touched: touched},
		boardStore: trackingBoardStore{touched: touched},
		taskStore:  trackingTaskStore{touched: touched},
	})
	return router, jwtService
}

func TestRouterLiveness(t *testing.T) {
	t.Parallel()

	var touched bool
	router, _ := newTestRouter(t, &touched)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DND Task Management is running...", rec.Body.String())
}

func TestProtectedRoutesRejectMissingHeader(t *testing.T) {
	t.Parallel()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/users"},
		{http.MethodPost, "/categories"},
		{http.MethodGet, "/categories/u-1"},
		{http.MethodDelete, "/categories/b-1"},
		{http.MethodPost, "/add-task"},
		{http.MethodGet, "/tasks/u-1"},
		{http.MethodDelete, "/tasks/t-1"},
		{http.MethodPut, "/tasks/update-task/t-1"},
		{http.MethodPut, "/tasks/update-task-category/u-1"},
	}

	for _, route := range routes {
		route := route
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			t.Parallel()

			var touched bool
			router, _ := newTestRouter(t, &touched)

			req := httptest.NewRequest(route.method, route.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			var resp map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, "Unauthorized access", resp["message"])
			assert.False(t, touched, "store must not be reached without a token")
		})
	}
}

func TestProtectedRouteAcceptsValidToken(t *testing.T) {
	t.Parallel()

	var touched bool
	router, jwtService := newTestRouter(t, &touched)

	token, err := jwtService.GenerateToken(context.Background(), "a@b.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, touched)
}

func TestPublicRoutesSkipTheGate(t *testing.T) {
	t.Parallel()

	var touched bool
	router, _ := newTestRouter(t, &touched)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
