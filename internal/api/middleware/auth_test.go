package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskboard-api/internal/service/auth"
)

const testSecret = "test-secret-key-thats-long-enough-for-hs256"

// spyJWTService counts validation calls so tests can prove the gate
// rejects header-less requests before any token work happens.
type spyJWTService struct {
	inner         auth.JWTService
	validateCalls int
}

func (s *spyJWTService) GenerateToken(ctx context.Context, email string) (string, error) {
	return s.inner.GenerateToken(ctx, email)
}

func (s *spyJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	s.validateCalls++
	return s.inner.ValidateToken(ctx, tokenString)
}

func newGate(t *testing.T) (*spyJWTService, http.Handler, *bool) {
	t.Helper()

	spy := &spyJWTService{inner: auth.NewTestJWTService(testSecret, time.Hour, time.Now)}
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})
	return spy, NewAuthMiddleware(spy).Authenticate(next), &reached
}

func assertUnauthorized(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Unauthorized access", resp["message"])
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	t.Run("missing header is rejected before token verification", func(t *testing.T) {
		t.Parallel()

		spy, gate, reached := newGate(t)

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		rec := httptest.NewRecorder()
		gate.ServeHTTP(rec, req)

		assertUnauthorized(t, rec)
		assert.Zero(t, spy.validateCalls, "verify must not run when the header is absent")
		assert.False(t, *reached)
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		t.Parallel()

		for _, header := range []string{"just-a-token", "Basic dXNlcjpwYXNz", "Bearer a b"} {
			_, gate, reached := newGate(t)

			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			req.Header.Set("Authorization", header)
			rec := httptest.NewRecorder()
			gate.ServeHTTP(rec, req)

			assertUnauthorized(t, rec)
			assert.False(t, *reached)
		}
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		t.Parallel()

		_, gate, reached := newGate(t)

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		rec := httptest.NewRecorder()
		gate.ServeHTTP(rec, req)

		assertUnauthorized(t, rec)
		assert.False(t, *reached)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		t.Parallel()

		// Issue a token from two hours in the past with a one-hour lifetime.
		past := time.Now().Add(-2 * time.Hour)
		issuer := auth.NewTestJWTService(testSecret, time.Hour, func() time.Time { return past })
		token, err := issuer.GenerateToken(context.Background(), "a@b.com")
		require.NoError(t, err)

		_, gate, reached := newGate(t)

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		gate.ServeHTTP(rec, req)

		assertUnauthorized(t, rec)
		assert.False(t, *reached)
	})

	t.Run("valid token passes and claims land in the context", func(t *testing.T) {
		t.Parallel()

		spy := &spyJWTService{inner: auth.NewTestJWTService(testSecret, time.Hour, time.Now)}
		token, err := spy.GenerateToken(context.Background(), "a@b.com")
		require.NoError(t, err)

		var gotClaims *auth.Claims
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaims(r)
			require.True(t, ok)
			gotClaims = claims
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		NewAuthMiddleware(spy).Authenticate(next).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, gotClaims)
		assert.Equal(t, "a@b.com", gotClaims.Email)
	})
}
