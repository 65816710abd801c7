package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/xavierca1/leadboard/internal/metrics"
	"github.com/xavierca1/leadboard/internal/session"
	"github.com/xavierca1/leadboard/internal/usecase"
)

type AuthHandler struct {
	Auth          usecase.Authenticator
	SecureCookies bool
	Log           *zap.SugaredLogger
	// LoginLimiter, when set, guards POST /login.
	LoginLimiter func(http.Handler) http.Handler
}

func NewAuthHandler(auth usecase.Authenticator, secureCookies bool, log *zap.SugaredLogger) *AuthHandler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &AuthHandler{Auth: auth, SecureCookies: secureCookies, Log: log}
}

// Routes is mounted at /auth.
func (h *AuthHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/check", h.Check)
	r.Post("/logout", h.Logout)
	if h.LoginLimiter != nil {
		r.With(h.LoginLimiter).Post("/login", h.Login)
	} else {
		r.Post("/login", h.Login)
	}
	return r
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds usecase.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	token, err := h.Auth.Authenticate(r.Context(), creds)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			metrics.RecordLogin("rejected")
			h.Log.Warnw("login rejected", "username", creds.Username)
			writeErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		metrics.RecordLogin("error")
		h.Log.Errorw("login failed", "err", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Login failed")
		return
	}

	metrics.RecordLogin("ok")
	session.Login(w, string(token), h.SecureCookies)
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *AuthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if !session.Present(r) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"authenticated": true})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session.Logout(w, h.SecureCookies)
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
