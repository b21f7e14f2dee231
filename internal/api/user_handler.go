package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// UserHandler handles user registration and listing.
type UserHandler struct {
	userStore store.UserStore
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore) *UserHandler {
	return &UserHandler{
		userStore: userStore,
	}
}

// Create handles POST /users. Registration is idempotent: a duplicate
// email is answered with the same success message as a fresh insert, and
// no second row is created. The first registration wins.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "name and email are required")
		return
	}

	user, err := domain.NewUser(req.Name, req.Email, req.Password, req.Image)
	if err != nil {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "name and email are required")
		return
	}

	stored, err := h.userStore.Create(r.Context(), user)
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithJSON(w, r, http.StatusOK, CreateUserResponse{Message: "success"})
			return
		}
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CreateUserResponse{
		Result:  stored,
		Message: "success",
	})
}

// List handles GET /users. An empty table is rendered as 404, matching
// the read-expected-to-be-non-empty contract.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if len(users) == 0 {
		shared.RespondWithMessage(w, r, http.StatusNotFound, "No users found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, users)
}
