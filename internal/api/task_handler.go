package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/taskwell/taskwell-api/internal/api/shared"
	"github.com/taskwell/taskwell-api/internal/domain"
	"github.com/taskwell/taskwell-api/internal/platform/logger"
	"github.com/taskwell/taskwell-api/internal/store"
)

// TaskHandler handles task CRUD HTTP requests. Every operation resolves
// the caller from the auth-guard context first and scopes the store
// call by that owner id.
type TaskHandler struct {
	taskStore store.TaskStore
	validator *validator.Validate
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskStore store.TaskStore) *TaskHandler {
	return &TaskHandler{
		taskStore: taskStore,
		validator: validator.New(),
	}
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := shared.UserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	task, err := domain.NewTask(userID, req.Title, req.Description, req.Status)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task data: "+err.Error())
		return
	}

	if err := h.taskStore.Create(r.Context(), task); err != nil {
		statusCode := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, statusCode, GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("task created", "task_id", task.ID, "user_id", userID)
	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// List handles GET /api/tasks.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := shared.UserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	tasks, err := h.taskStore.ListByOwner(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to list tasks", err)
		return
	}

	response := TaskListResponse{Tasks: make([]TaskResponse, 0, len(tasks))}
	for _, task := range tasks {
		response.Tasks = append(response.Tasks, taskToResponse(task))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// Get handles GET /api/tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := shared.UserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	taskID, ok := taskIDFromURL(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	task, err := h.taskStore.GetForOwner(r.Context(), taskID, userID)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, statusCode, GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// Update handles PUT /api/tasks/{id}. Fields absent from the payload
// are left untouched.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := shared.UserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	taskID, ok := taskIDFromURL(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	update := domain.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	}
	if err := update.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task data: "+err.Error())
		return
	}

	task, err := h.taskStore.UpdateForOwner(r.Context(), taskID, userID, update)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, statusCode, GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("task updated", "task_id", taskID, "user_id", userID)
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := shared.UserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	taskID, ok := taskIDFromURL(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	if err := h.taskStore.DeleteForOwner(r.Context(), taskID, userID); err != nil {
		statusCode := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, statusCode, GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("task deleted", "task_id", taskID, "user_id", userID)
	w.WriteHeader(http.StatusNoContent)
}

// taskIDFromURL parses the {id} path parameter. A non-numeric id is
// treated as a task that cannot exist, not as a client error, to keep
// the not-found surface uniform.
func taskIDFromURL(r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
