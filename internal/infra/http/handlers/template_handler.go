package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/xavierca1/leadboard/internal/usecase"
)

type TemplateHandler struct {
	Service *usecase.TemplateService
	Log     *zap.SugaredLogger
}

func NewTemplateHandler(service *usecase.TemplateService, log *zap.SugaredLogger) *TemplateHandler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &TemplateHandler{Service: service, Log: log}
}

// Routes is mounted at /templates.
func (h *TemplateHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.Service.List(r.Context())
	if err != nil {
		writeUseCaseError(w, h.Log, "GET /templates", err)
		return
	}
	writeJSON(w, http.StatusOK, templates)
}

func (h *TemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.TemplateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	t, err := h.Service.Create(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, h.Log, "POST /templates", err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (h *TemplateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid template ID")
		return
	}

	var input usecase.TemplateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	t, err := h.Service.Update(r.Context(), id, input)
	if err != nil {
		writeUseCaseError(w, h.Log, "PUT /templates/{id}", err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *TemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid template ID")
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeUseCaseError(w, h.Log, "DELETE /templates/{id}", err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
