package handlers

import (
	"encoding/json"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/xavierca1/leadboard/internal/usecase"
)

const maxFormMemory = 10 << 20

type LeadHandler struct {
	Service *usecase.LeadService
	Log     *zap.SugaredLogger
}

func NewLeadHandler(service *usecase.LeadService, log *zap.SugaredLogger) *LeadHandler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &LeadHandler{Service: service, Log: log}
}

// Routes is mounted at /leads.
func (h *LeadHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/deleted", h.ListDeleted)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Post("/{id}/restore", h.Restore)
	return r
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Service.List(r.Context())
	if err != nil {
		writeUseCaseError(w, h.Log, "GET /leads", err)
		return
	}
	h.Log.Debugw("loaded leads", "count", len(leads))
	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) ListDeleted(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Service.ListDeleted(r.Context())
	if err != nil {
		writeUseCaseError(w, h.Log, "GET /leads/deleted", err)
		return
	}
	h.Log.Debugw("loaded deleted leads", "count", len(leads))
	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid id")
		return
	}

	lead, err := h.Service.Get(r.Context(), id)
	if err != nil {
		writeUseCaseError(w, h.Log, "GET /leads/{id}", err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

// Create accepts the dashboard's form post (urlencoded or multipart) and
// JSON bodies.
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, err := decodeCreateLead(r)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	lead, err := h.Service.Create(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, h.Log, "POST /leads", err)
		return
	}
	h.Log.Infow("lead created", "id", lead.ID, "status", lead.Status)
	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	lead, err := h.Service.Update(r.Context(), id, input)
	if err != nil {
		writeUseCaseError(w, h.Log, "PUT /leads/{id}", err)
		return
	}
	h.Log.Infow("lead updated", "id", lead.ID)
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeUseCaseError(w, h.Log, "DELETE /leads/{id}", err)
		return
	}
	h.Log.Infow("lead soft-deleted", "id", id)
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *LeadHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.Service.Restore(r.Context(), id); err != nil {
		writeUseCaseError(w, h.Log, "POST /leads/{id}/restore", err)
		return
	}
	h.Log.Infow("lead restored", "id", id)
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func decodeCreateLead(r *http.Request) (usecase.CreateLeadInput, error) {
	var input usecase.CreateLeadInput

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		err := json.NewDecoder(r.Body).Decode(&input)
		return input, err
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			return input, err
		}
	default:
		if err := r.ParseForm(); err != nil {
			return input, err
		}
	}

	input.Name = r.PostFormValue("name")
	input.Country = r.PostFormValue("country")
	input.Status = r.PostFormValue("status")
	input.PhoneNumber = r.PostFormValue("phoneNumber")
	input.WhatsappNumber = r.PostFormValue("whatsappNumber")
	input.Website = r.PostFormValue("website")
	input.Email = r.PostFormValue("email")
	input.Notes = r.PostFormValue("notes")
	return input, nil
}
