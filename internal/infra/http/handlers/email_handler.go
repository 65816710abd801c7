package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/leadboard/internal/usecase"
)

type EmailHandler struct {
	SendEmail *usecase.SendEmailUseCase
	Log       *zap.SugaredLogger
}

func NewEmailHandler(uc *usecase.SendEmailUseCase, log *zap.SugaredLogger) *EmailHandler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &EmailHandler{SendEmail: uc, Log: log}
}

func (h *EmailHandler) Send(w http.ResponseWriter, r *http.Request) {
	var input usecase.SendEmailInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.SendEmail.Execute(r.Context(), input); err != nil {
		writeUseCaseError(w, h.Log, "POST /send-email", err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
