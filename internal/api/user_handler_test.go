package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

func TestUserCreate(t *testing.T) {
	t.Parallel()

	t.Run("successful registration returns the row", func(t *testing.T) {
		t.Parallel()

		userStore := &stubUserStore{
			createFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
				stored := *user
				stored.ID = 7
				return &stored, nil
			},
		}
		handler := NewUserHandler(userStore)

		body := bytes.NewBufferString(`{"name":"Alice","email":"alice@example.com","image":"https://example.com/a.png"}`)
		req := httptest.NewRequest(http.MethodPost, "/users", body)
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp CreateUserResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "success", resp.Message)
		assert.NotNil(t, resp.Result)
	})

	t.Run("duplicate email is reported as success with no row", func(t *testing.T) {
		t.Parallel()

		userStore := &stubUserStore{
			createFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
				return nil, store.ErrEmailExists
			},
		}
		handler := NewUserHandler(userStore)

		body := bytes.NewBufferString(`{"name":"Alice","email":"alice@example.com"}`)
		req := httptest.NewRequest(http.MethodPost, "/users", body)
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp CreateUserResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "success", resp.Message)
		assert.Nil(t, resp.Result)
	})

	t.Run("missing required fields yields 400", func(t *testing.T) {
		t.Parallel()

		userStore := &stubUserStore{
			createFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
				t.Fatal("store must not be reached on invalid input")
				return nil, nil
			},
		}
		handler := NewUserHandler(userStore)

		body := bytes.NewBufferString(`{"name":"No Email"}`)
		req := httptest.NewRequest(http.MethodPost, "/users", body)
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, userStore.createCall)
	})
}

func TestUserList(t *testing.T) {
	t.Parallel()

	t.Run("returns the user rows", func(t *testing.T) {
		t.Parallel()

		userStore := &stubUserStore{
			listFn: func(ctx context.Context) ([]*domain.User, error) {
				return []*domain.User{
					{ID: 1, Name: "Alice", Email: "alice@example.com"},
					{ID: 2, Name: "Bob", Email: "bob@example.com"},
				}, nil
			},
		}
		handler := NewUserHandler(userStore)

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		rec := httptest.NewRecorder()

		handler.List(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var users []map[string]interface{}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&users))
		assert.Len(t, users, 2)
	})

	t.Run("empty table yields 404", func(t *testing.T) {
		t.Parallel()

		userStore := &stubUserStore{
			listFn: func(ctx context.Context) ([]*domain.User, error) {
				return []*domain.User{}, nil
			},
		}
		handler := NewUserHandler(userStore)

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		rec := httptest.NewRecorder()

		handler.List(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp map[string]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "No users found", resp["message"])
	})
}
