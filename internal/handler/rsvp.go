package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mvdcruz/invitation-rsvp/internal/domain"
)

// submitRsvpRequest is the invitation form payload.
// Attending is a pointer so an omitted choice is distinguishable from an
// explicit decline — the form forces a choice, the API does too.
type submitRsvpRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Contact   string `json:"contact"`
	Attending *bool  `json:"attending"`
	Dietary   string `json:"dietary"`
}

// rsvpResponse is the wire shape of a stored record. Timestamp is the
// display string the dashboard renders ("N/A" when the instant is missing);
// CreatedAt stays machine-readable for clients that re-sort.
type rsvpResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Contact   string    `json:"contact"`
	Attending bool      `json:"attending"`
	Dietary   string    `json:"dietary,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Timestamp string    `json:"timestamp"`
}

// bulkDeleteRequest lists the record ids to remove.
type bulkDeleteRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

// PostRsvp handles POST /api/rsvps.
// Guests see either the stored record (success) or a status-only failure;
// storage details never reach the submitter.
func (s *Server) PostRsvp(w http.ResponseWriter, r *http.Request) {
	var req submitRsvpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.requestError(w, "request body is required")
		return
	}
	if req.Attending == nil {
		s.requestError(w, "attending choice is required")
		return
	}

	created, err := s.rsvps.Submit(r.Context(), domain.Rsvp{
		Name:      req.Name,
		Email:     req.Email,
		Contact:   req.Contact,
		Attending: *req.Attending,
		Dietary:   req.Dietary,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, rsvpToResponse(created))
}

// ListRsvps handles GET /api/rsvps. Records come back newest first.
func (s *Server) ListRsvps(w http.ResponseWriter, r *http.Request) {
	rsvps, err := s.rsvps.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rsvpsToResponse(rsvps))
}

// GetSummary handles GET /api/rsvps/summary.
func (s *Server) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.rsvps.Summary(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, summary)
}

// DeleteRsvp handles DELETE /api/rsvps/{id}.
// Deleting an id that no longer exists is a 204 like any other: the caller
// asked for the record to be gone, and it is.
func (s *Server) DeleteRsvp(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.requestError(w, "invalid record id")
		return
	}

	if err := s.rsvps.Delete(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// BulkDeleteRsvps handles POST /api/rsvps/bulk-delete.
// Always 200 with per-id outcomes; a partially failed batch is not an error
// at the HTTP level because the successes are already permanent.
func (s *Server) BulkDeleteRsvps(w http.ResponseWriter, r *http.Request) {
	var req bulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.requestError(w, "request body is required")
		return
	}
	if len(req.IDs) == 0 {
		s.requestError(w, "ids is required")
		return
	}

	result, err := s.rsvps.DeleteMany(r.Context(), req.IDs)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

// --- mapping helpers --------------------------------------------------------

// rsvpToResponse converts a domain record to its wire shape.
func rsvpToResponse(rec domain.Rsvp) rsvpResponse {
	return rsvpResponse{
		ID:        rec.ID,
		Name:      rec.Name,
		Email:     rec.Email,
		Contact:   rec.Contact,
		Attending: rec.Attending,
		Dietary:   rec.Dietary,
		CreatedAt: rec.CreatedAt,
		Timestamp: formatTimestamp(rec.CreatedAt),
	}
}

func rsvpsToResponse(rsvps []domain.Rsvp) []rsvpResponse {
	out := make([]rsvpResponse, len(rsvps))
	for i, rec := range rsvps {
		out[i] = rsvpToResponse(rec)
	}
	return out
}

// formatTimestamp renders an instant the way the dashboard displays it.
// A zero instant (a record written before the timestamp column existed, or
// a snapshot taken mid-write) renders as the "N/A" placeholder.
func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("1/2/2006, 3:04:05 PM")
}
