package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// BoardHandler handles board ("category") endpoints.
type BoardHandler struct {
	boardStore store.BoardStore
}

// NewBoardHandler creates a new BoardHandler with the given dependencies.
func NewBoardHandler(boardStore store.BoardStore) *BoardHandler {
	return &BoardHandler{
		boardStore: boardStore,
	}
}

// Create handles POST /categories. The board ID is caller-supplied; all
// three fields are required.
func (h *BoardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBoardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "id, boardName, and uid are required")
		return
	}

	if req.ID == "" || req.BoardName == "" || req.UID == "" {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "id, boardName, and uid are required")
		return
	}

	board, err := domain.NewBoard(req.ID, req.BoardName, req.UID)
	if err != nil {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "id, boardName, and uid are required")
		return
	}

	stored, err := h.boardStore.Create(r.Context(), board)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, stored)
}

// ListByOwner handles GET /categories/{uid}. An owner with no boards is
// rendered as 404.
func (h *BoardHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	boards, err := h.boardStore.ListByOwner(r.Context(), uid)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if len(boards) == 0 {
		shared.RespondWithMessage(w, r, http.StatusNotFound, "No categories found for this UID")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, boards)
}

// DeleteCascade handles DELETE /categories/{id}. The board and every task
// on it go in one transaction; a missing board still reports success.
func (h *BoardHandler) DeleteCascade(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.boardStore.DeleteCascade(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithMessage(w, r, http.StatusOK, "Board and associated tasks deleted successfully")
}
