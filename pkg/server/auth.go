package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/silaspuma/rogen/pkg/model"
	"github.com/silaspuma/rogen/pkg/repository"
	"github.com/silaspuma/rogen/pkg/session"
)

type authHandler struct {
	logger  *slog.Logger
	gateway repository.Gateway
	session *session.Session
	policy  model.Policy
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (h *authHandler) decode(w http.ResponseWriter, r *http.Request) (*credentialsRequest, bool) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed. Use POST.", "")
		return nil, false
	}

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", "Expected JSON with email and password")
		return nil, false
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required", "")
		return nil, false
	}

	return &req, true
}

func (h *authHandler) signup(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	// The length policy is enforced before the identity service is called.
	if len(req.Password) < h.policy.MinPasswordLen {
		writeError(w, http.StatusBadRequest, "Password is too short", "")
		return
	}

	if err := h.gateway.SignUp(r.Context(), req.Email, req.Password); err != nil {
		h.logger.Warn("sign up failed", "email", req.Email, "error", err)
		writeError(w, http.StatusBadRequest, "Sign up failed", "")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

func (h *authHandler) signin(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	user, err := h.gateway.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Warn("sign in failed", "email", req.Email, "error", err)
		writeError(w, http.StatusUnauthorized, "Invalid email or password", "")
		return
	}

	// Later generations in this process persist as this user.
	h.session.Set(user)

	writeJSON(w, http.StatusOK, map[string]userResponse{
		"user": {ID: user.ID, Email: user.Email},
	})
}

func (h *authHandler) signout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed. Use POST.", "")
		return
	}

	if err := h.gateway.SignOut(r.Context()); err != nil {
		h.logger.Warn("sign out failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Sign out failed", "")
		return
	}

	h.session.Set(nil)

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
