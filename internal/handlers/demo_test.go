package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasknest/apiserver/internal/store"
	"github.com/tasknest/apiserver/types"
)

func newDemoRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Get("/", Root)
	router.Route("/tasks", func(r chi.Router) {
		DemoRouter(r, store.NewDemoTaskStore())
	})
	return router
}

func doDemo(t *testing.T, router *chi.Mux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestDemoTaskLifecycle(t *testing.T) {
	router := newDemoRouter()

	// No auth header anywhere in this variant.
	rec := doDemo(t, router, http.MethodPost, "/tasks", map[string]string{"title": "buy milk"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created types.DemoTask
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, 1, created.ID)
	assert.False(t, created.Completed)

	rec = doDemo(t, router, http.MethodGet, "/tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var tasks []types.DemoTask
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&tasks))
	assert.Len(t, tasks, 1)

	rec = doDemo(t, router, http.MethodPut, "/tasks/1", map[string]bool{"completed": true})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated types.DemoTask
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
	assert.True(t, updated.Completed)
	assert.Equal(t, "buy milk", updated.Title)

	assert.Equal(t, http.StatusNoContent, doDemo(t, router, http.MethodDelete, "/tasks/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, doDemo(t, router, http.MethodDelete, "/tasks/1", nil).Code)
}

func TestDemoValidation(t *testing.T) {
	router := newDemoRouter()

	assert.Equal(t, http.StatusBadRequest, doDemo(t, router, http.MethodPost, "/tasks", map[string]string{}).Code)
	assert.Equal(t, http.StatusNotFound, doDemo(t, router, http.MethodGet, "/tasks/42", nil).Code)
	assert.Equal(t, http.StatusBadRequest, doDemo(t, router, http.MethodGet, "/tasks/abc", nil).Code)
}

func TestDemoDeleteAll(t *testing.T) {
	router := newDemoRouter()

	doDemo(t, router, http.MethodPost, "/tasks", map[string]string{"title": "one"})
	doDemo(t, router, http.MethodPost, "/tasks", map[string]string{"title": "two"})

	assert.Equal(t, http.StatusNoContent, doDemo(t, router, http.MethodDelete, "/tasks", nil).Code)

	rec := doDemo(t, router, http.MethodGet, "/tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var tasks []types.DemoTask
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&tasks))
	assert.Empty(t, tasks)
}
