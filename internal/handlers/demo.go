package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/tasknest/apiserver/internal/store"
)

// DemoHandler provides the unauthenticated single-tenant task API.
type DemoHandler struct {
	store *store.DemoTaskStore
}

func NewDemoHandler(taskStore *store.DemoTaskStore) *DemoHandler {
	return &DemoHandler{store: taskStore}
}

// DemoRouter registers the demo task routes on the given router.
func DemoRouter(r chi.Router, taskStore *store.DemoTaskStore) {
	handler := NewDemoHandler(taskStore)

	r.Get("/", handler.ListTasks)
	r.Post("/", handler.CreateTask)
	r.Delete("/", handler.DeleteAllTasks)
	r.Route("/{taskID}", func(r chi.Router) {
		r.Get("/", handler.GetTask)
		r.Put("/", handler.UpdateTask)
		r.Delete("/", handler.DeleteTask)
	})
}

func (h *DemoHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.List())
}

func (h *DemoHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req DemoTaskCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	writeJSON(w, http.StatusCreated, h.store.Create(req.Title))
}

func (h *DemoHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseTaskID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	task, err := h.store.Get(id)
	if err != nil {
		writeDemoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *DemoHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseTaskID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req DemoTaskUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	task, err := h.store.Update(id, req.Title, req.Completed)
	if err != nil {
		writeDemoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *DemoHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseTaskID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.Delete(id); err != nil {
		writeDemoError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *DemoHandler) DeleteAllTasks(w http.ResponseWriter, r *http.Request) {
	h.store.DeleteAll()
	w.WriteHeader(http.StatusNoContent)
}

type DemoTaskCreateRequest struct {
	Title string `json:"title"`
}

type DemoTaskUpdateRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

func writeDemoError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}
	writeError(w, http.StatusInternalServerError, "task operation failed")
}
