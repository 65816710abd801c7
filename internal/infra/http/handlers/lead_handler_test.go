package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/leadboard/internal/entity"
	"github.com/xavierca1/leadboard/internal/infra/http/handlers"
	"github.com/xavierca1/leadboard/internal/infra/memory"
	"github.com/xavierca1/leadboard/internal/usecase"
)

// brokenLeadRepository fails every read so the 500 path can be exercised.
type brokenLeadRepository struct {
	*memory.LeadRepository
}

func (brokenLeadRepository) List(context.Context, bool) ([]entity.Lead, error) {
	return nil, errors.New("pq: connection refused to 10.0.0.5")
}

func newLeadRouter(repo entity.LeadRepository) http.Handler {
	h := handlers.NewLeadHandler(usecase.NewLeadService(repo, nil, nil), nil)
	r := chi.NewRouter()
	r.Mount("/leads", h.Routes())
	return r
}

func do(t *testing.T, h http.Handler, method, target string, body []byte, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func postForm(t *testing.T, h http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	return do(t, h, http.MethodPost, "/leads", []byte(form.Encode()), "application/x-www-form-urlencoded")
}

func decodeLead(t *testing.T, w *httptest.ResponseRecorder) entity.Lead {
	t.Helper()
	var lead entity.Lead
	require.NoError(t, json.NewDecoder(w.Body).Decode(&lead))
	return lead
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body["error"]
}

// TestCreateLeadFromForm - the dashboard form path with a UI status label
func TestCreateLeadFromForm(t *testing.T) {
	router := newLeadRouter(memory.NewLeadRepository())

	w := postForm(t, router, url.Values{
		"name":    {"Acme"},
		"country": {"BR"},
		"status":  {"WARM"},
		"website": {""},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	lead := decodeLead(t, w)
	assert.NotZero(t, lead.ID)
	assert.Equal(t, "Acme", lead.Name)
	assert.Equal(t, entity.StatusProgress, lead.Status)
	require.NotNil(t, lead.Country)
	assert.Equal(t, "BR", *lead.Country)
	assert.Nil(t, lead.Website)
	assert.False(t, lead.Deleted)
}

// TestCreateLeadFromMultipart - multipart bodies are read like urlencoded ones
func TestCreateLeadFromMultipart(t *testing.T) {
	router := newLeadRouter(memory.NewLeadRepository())

	body := "--XYZ\r\n" +
		"Content-Disposition: form-data; name=\"name\"\r\n\r\n" +
		"Globex\r\n" +
		"--XYZ\r\n" +
		"Content-Disposition: form-data; name=\"status\"\r\n\r\n" +
		"COLD\r\n" +
		"--XYZ--\r\n"

	w := do(t, router, http.MethodPost, "/leads", []byte(body), "multipart/form-data; boundary=XYZ")

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, entity.StatusDisqualified, decodeLead(t, w).Status)
}

// TestCreateLeadFromJSON - default status is HOT
func TestCreateLeadFromJSON(t *testing.T) {
	router := newLeadRouter(memory.NewLeadRepository())

	w := do(t, router, http.MethodPost, "/leads", []byte(`{"name":"Initech"}`), "application/json")

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, entity.StatusHot, decodeLead(t, w).Status)
}

// TestCreateLeadMissingName - 400 and nothing stored
func TestCreateLeadMissingName(t *testing.T) {
	repo := memory.NewLeadRepository()
	router := newLeadRouter(repo)

	w := postForm(t, router, url.Values{"name": {"  "}, "status": {"HOT"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Name is required", errorMessage(t, w))

	leads, err := repo.List(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, leads)
}

// TestLeadInvalidID - non-integer ids never reach the service
func TestLeadInvalidID(t *testing.T) {
	router := newLeadRouter(memory.NewLeadRepository())

	for _, tc := range []struct{ method, target string }{
		{http.MethodGet, "/leads/abc"},
		{http.MethodPut, "/leads/abc"},
		{http.MethodDelete, "/leads/abc"},
		{http.MethodPost, "/leads/abc/restore"},
	} {
		w := do(t, router, tc.method, tc.target, []byte(`{}`), "application/json")
		assert.Equal(t, http.StatusBadRequest, w.Code, tc.method+" "+tc.target)
		assert.Equal(t, "Invalid id", errorMessage(t, w))
	}
}

// TestLeadNotFound - missing ids answer 404 on every single-lead route
func TestLeadNotFound(t *testing.T) {
	router := newLeadRouter(memory.NewLeadRepository())

	update := []byte(`{"name":"Acme","status":"HOT"}`)
	for _, tc := range []struct{ method, target string }{
		{http.MethodGet, "/leads/42"},
		{http.MethodPut, "/leads/42"},
		{http.MethodDelete, "/leads/42"},
		{http.MethodPost, "/leads/42/restore"},
	} {
		w := do(t, router, tc.method, tc.target, update, "application/json")
		assert.Equal(t, http.StatusNotFound, w.Code, tc.method+" "+tc.target)
		assert.Equal(t, "Lead not found", errorMessage(t, w))
	}
}

// TestUpdateLead - storage statuses only, blanks become null
func TestUpdateLead(t *testing.T) {
	router := newLeadRouter(memory.NewLeadRepository())

	created := decodeLead(t, postForm(t, router, url.Values{"name": {"Acme"}, "country": {"BR"}}))
	target := "/leads/" + jsonID(created.ID)

	w := do(t, router, http.MethodPut, target, []byte(`{"name":"Acme Corp","status":"WARM"}`), "application/json")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, router, http.MethodPut, target, []byte(`not json`), "application/json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid JSON", errorMessage(t, w))

	w = do(t, router, http.MethodPut, target,
		[]byte(`{"name":"Acme Corp","status":"PROGRESS","country":"","notes":"call back"}`), "application/json")
	require.Equal(t, http.StatusOK, w.Code)

	updated := decodeLead(t, w)
	assert.Equal(t, "Acme Corp", updated.Name)
	assert.Equal(t, entity.StatusProgress, updated.Status)
	assert.Nil(t, updated.Country)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "call back", *updated.Notes)
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))
}

// TestDeleteRestoreFlow - soft-deleted leads move between the two lists
func TestDeleteRestoreFlow(t *testing.T) {
	router := newLeadRouter(memory.NewLeadRepository())

	first := decodeLead(t, postForm(t, router, url.Values{"name": {"First"}}))
	second := decodeLead(t, postForm(t, router, url.Values{"name": {"Second"}}))

	w := do(t, router, http.MethodDelete, "/leads/"+jsonID(first.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	active := listLeads(t, router, "/leads")
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)

	deleted := listLeads(t, router, "/leads/deleted")
	require.Len(t, deleted, 1)
	assert.Equal(t, first.ID, deleted[0].ID)
	assert.True(t, deleted[0].Deleted)

	// the row is still readable by id after a soft delete
	w = do(t, router, http.MethodGet, "/leads/"+jsonID(first.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeLead(t, w).Deleted)

	w = do(t, router, http.MethodPost, "/leads/"+jsonID(first.ID)+"/restore", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Len(t, listLeads(t, router, "/leads"), 2)
	assert.Empty(t, listLeads(t, router, "/leads/deleted"))
}

// TestListLeadsNewestFirst - active list is ordered by creation time, newest first
func TestListLeadsNewestFirst(t *testing.T) {
	router := newLeadRouter(memory.NewLeadRepository())

	for _, name := range []string{"A", "B", "C"} {
		require.Equal(t, http.StatusCreated, postForm(t, router, url.Values{"name": {name}}).Code)
	}

	leads := listLeads(t, router, "/leads")
	require.Len(t, leads, 3)
	assert.Equal(t, []string{"C", "B", "A"}, []string{leads[0].Name, leads[1].Name, leads[2].Name})
}

// TestListLeadsStorageFailure - the client sees a generic message only
func TestListLeadsStorageFailure(t *testing.T) {
	router := newLeadRouter(brokenLeadRepository{memory.NewLeadRepository()})

	w := do(t, router, http.MethodGet, "/leads", nil, "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Failed to load leads")
	assert.False(t, strings.Contains(body, "10.0.0.5"))
}

func listLeads(t *testing.T, h http.Handler, target string) []entity.Lead {
	t.Helper()
	w := do(t, h, http.MethodGet, target, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var leads []entity.Lead
	require.NoError(t, json.NewDecoder(w.Body).Decode(&leads))
	return leads
}

func jsonID(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}
