package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mvdcruz/invitation-rsvp/internal/domain"
)

// anonymousResponse is the body for a freshly issued guest identity.
type anonymousResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

// adminLoginRequest carries the dashboard password.
type adminLoginRequest struct {
	Password string `json:"password"`
}

// adminLoginResponse is the body for a granted admin session.
type adminLoginResponse struct {
	Token string `json:"token"`
}

// PostAnonymous handles POST /api/auth/anonymous.
// It is the server-side half of the page's identity bootstrap: one attempt,
// no retry. On failure the page keeps running in a degraded read-only state;
// all this endpoint owes it is a descriptive error.
func (s *Server) PostAnonymous(w http.ResponseWriter, r *http.Request) {
	token, userID, err := s.auth.Anonymous()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, anonymousResponse{Token: token, UserID: userID})
}

// PostAdminLogin handles POST /api/admin/login.
// A wrong password is a plain 401 — no detail, no lockout, no rate limit.
func (s *Server) PostAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.requestError(w, "request body is required")
		return
	}

	token, err := s.auth.AdminLogin(req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			s.writeJSON(w, http.StatusUnauthorized, errorResponse{
				Error: errorDetail{Code: "unauthorized", Message: "incorrect password"},
			})
			return
		}
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, adminLoginResponse{Token: token})
}
