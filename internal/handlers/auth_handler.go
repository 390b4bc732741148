package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/eshabeddings/catalog-service/internal/session"
)

// AuthHandler handles admin login and logout. Credentials are two static
// strings compared exactly; success issues a session token that the admin
// surface's middleware checks on every request.
type AuthHandler struct {
	sessions *session.Manager
	username string
	password string
	logger   *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessions *session.Manager, username, password string, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		username: username,
		password: password,
		logger:   logger,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/admin/login
// - 200: {"token": ...}
// - 401: credential mismatch
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Username != h.username || req.Password != h.password {
		h.logger.Warn("admin login failed", "username", req.Username)
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.sessions.Issue(req.Username)
	if err != nil {
		h.logger.Error("failed to issue session token", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.logger.Info("admin logged in", "username", req.Username)
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Logout handles POST /api/admin/logout
// Revokes the Bearer token so it no longer passes the session middleware.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.sessions.Revoke(token); err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	h.logger.Info("admin logged out")
	writeMessage(w, http.StatusOK, "Logged out")
}
