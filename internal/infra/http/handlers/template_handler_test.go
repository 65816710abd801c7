package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/leadboard/internal/entity"
	"github.com/xavierca1/leadboard/internal/infra/http/handlers"
	"github.com/xavierca1/leadboard/internal/infra/memory"
	"github.com/xavierca1/leadboard/internal/usecase"
)

func newTemplateRouter(repo entity.EmailTemplateRepository) http.Handler {
	templates := handlers.NewTemplateHandler(usecase.NewTemplateService(repo), nil)
	email := handlers.NewEmailHandler(usecase.NewSendEmailUseCase(repo, nil, nil), nil)

	r := chi.NewRouter()
	r.Mount("/templates", templates.Routes())
	r.Post("/send-email", email.Send)
	return r
}

// TestTemplateCRUD - create, update, list and hard delete
func TestTemplateCRUD(t *testing.T) {
	router := newTemplateRouter(memory.NewEmailTemplateRepository())

	w := do(t, router, http.MethodPost, "/templates", []byte(`{"title":"Welcome","content":"Hi there"}`), "application/json")
	require.Equal(t, http.StatusCreated, w.Code)

	var created entity.EmailTemplate
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	target := "/templates/" + jsonID(created.ID)

	w = do(t, router, http.MethodPut, target, []byte(`{"title":"Welcome back","content":"Hi again"}`), "application/json")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodGet, "/templates", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []entity.EmailTemplate
	require.NoError(t, json.NewDecoder(w.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "Welcome back", list[0].Title)

	w = do(t, router, http.MethodDelete, target, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodDelete, target, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Template not found", errorMessage(t, w))
}

// TestTemplateValidation - missing fields and bad ids answer 400
func TestTemplateValidation(t *testing.T) {
	router := newTemplateRouter(memory.NewEmailTemplateRepository())

	w := do(t, router, http.MethodPost, "/templates", []byte(`{"title":"Welcome"}`), "application/json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Title and content are required", errorMessage(t, w))

	w = do(t, router, http.MethodPut, "/templates/x", []byte(`{"title":"a","content":"b"}`), "application/json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid template ID", errorMessage(t, w))

	w = do(t, router, http.MethodPut, "/templates/77", []byte(`{"title":"a","content":"b"}`), "application/json")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestSendEmail - resolves the template, delivers nothing
func TestSendEmail(t *testing.T) {
	repo := memory.NewEmailTemplateRepository()
	router := newTemplateRouter(repo)

	w := do(t, router, http.MethodPost, "/templates", []byte(`{"title":"Welcome","content":"Hi"}`), "application/json")
	require.Equal(t, http.StatusCreated, w.Code)
	var created entity.EmailTemplate
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))

	body := `{"templateId":` + jsonID(created.ID) + `,"email":"lead@acme.test"}`
	w = do(t, router, http.MethodPost, "/send-email", []byte(body), "application/json")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = do(t, router, http.MethodPost, "/send-email", []byte(`{"templateId":999,"email":"lead@acme.test"}`), "application/json")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, router, http.MethodPost, "/send-email", []byte(`{"templateId":1}`), "application/json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
