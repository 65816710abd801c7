package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/xavierca1/leadboard/internal/usecase"
)

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorResponse(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeUseCaseError maps use-case errors onto status codes. The cause of a
// technical error is logged under route and never sent to the client.
func writeUseCaseError(w http.ResponseWriter, log *zap.SugaredLogger, route string, err error) {
	var de *usecase.DomainError
	if errors.As(err, &de) {
		switch de.Code {
		case usecase.CodeNotFound:
			log.Warnw(de.Message, "route", route)
			writeErrorResponse(w, http.StatusNotFound, de.Message)
		default:
			log.Warnw("rejected input", "route", route, "reason", de.Message)
			writeErrorResponse(w, http.StatusBadRequest, de.Message)
		}
		return
	}

	var te *usecase.TechnicalError
	if errors.As(err, &te) {
		log.Errorw(te.Message, "route", route, "code", te.Code, "err", te.Err)
		writeErrorResponse(w, http.StatusInternalServerError, te.Message)
		return
	}

	log.Errorw("unexpected error", "route", route, "err", err)
	writeErrorResponse(w, http.StatusInternalServerError, "Internal server error")
}

// idParam reads the {id} route parameter. ok is false when it is not an
// integer.
func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
