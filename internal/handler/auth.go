package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/mithaqhq/mithaq/internal/model"
	"github.com/mithaqhq/mithaq/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	err := decodeJSON(r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.Register(req.Email, req.Password)
	if errors.Is(err, service.ErrEmailAlreadyExists) {
		writeError(w, http.StatusConflict, "email already registered")
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.issueSession(w, user)
	writeJSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	err := decodeJSON(r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if err != nil {
		slog.Error("login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	h.issueSession(w, user)
	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearJWTCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) issueSession(w http.ResponseWriter, user *model.User) {
	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to generate session token", "error", err, "user_id", user.ID)
		return
	}

	h.authService.SetJWTCookie(w, token, time.Now().Add(h.authService.JWTExpiry()))
}
