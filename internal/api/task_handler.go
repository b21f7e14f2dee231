package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// TaskHandler handles task endpoints, including the bulk replacement used
// for drag-and-drop reordering.
type TaskHandler struct {
	taskStore store.TaskStore
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskStore store.TaskStore) *TaskHandler {
	return &TaskHandler{
		taskStore: taskStore,
	}
}

// Create handles POST /add-task. The server generates the task ID.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "Invalid task data provided")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "Invalid task data provided")
		return
	}

	task, err := domain.NewTask(req.Title, req.Description, req.Deadline, req.Priority, req.Category, req.UID)
	if err != nil {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "Invalid task data provided")
		return
	}

	stored, err := h.taskStore.Create(r.Context(), task)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AddTaskResponse{
		Message: "Successfully Added!",
		Data:    stored,
	})
}

// ListByOwner handles GET /tasks/{uid}. An owner with no tasks gets an
// empty array, not a 404.
func (h *TaskHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	tasks, err := h.taskStore.ListByOwner(r.Context(), uid)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasks)
}

// Delete handles DELETE /tasks/{id}. Deleting a task that does not exist
// still reports success.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.taskStore.DeleteByID(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithMessage(w, r, http.StatusOK, "Deleted Successfully!")
}

// Update handles PUT /tasks/update-task/{id}. Every mutable field is
// overwritten with the payload. A missing task yields 200 with a null
// body, mirroring an update that matched no row.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "Invalid task data provided")
		return
	}

	updated, err := h.taskStore.UpdateFields(r.Context(), &domain.Task{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
		Priority:    req.Priority,
		Category:    req.Category,
	})
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			shared.RespondWithJSON(w, r, http.StatusOK, nil)
			return
		}
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, updated)
}

// ReplaceAll handles PUT /tasks/update-task-category/{uid}, the bulk
// replacement behind drag-and-drop. The payload must be a non-empty array;
// the whole swap is transactional and any failure leaves the previous task
// set intact.
func (h *TaskHandler) ReplaceAll(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	var req BulkReplaceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "Invalid task data provided")
		return
	}

	if len(req.NewTasks) == 0 {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "Invalid task data provided")
		return
	}

	tasks := make([]*domain.Task, 0, len(req.NewTasks))
	for _, t := range req.NewTasks {
		tasks = append(tasks, &domain.Task{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Category:    t.Category,
			Priority:    t.Priority,
			Deadline:    t.Deadline,
			UID:         uid,
		})
	}

	if err := h.taskStore.ReplaceAllForOwner(r.Context(), uid, tasks); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithMessage(w, r, http.StatusOK, "Tasks updated successfully")
}
