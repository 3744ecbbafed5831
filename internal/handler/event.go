package handler

import "net/http"

// eventResponse is the invitation view's data: the event facts plus the
// prebuilt calendar quick-add link.
type eventResponse struct {
	Title       string `json:"title"`
	Details     string `json:"details"`
	Location    string `json:"location"`
	DressCode   string `json:"dress_code"`
	MapURL      string `json:"map_url,omitempty"`
	Start       string `json:"start"`
	End         string `json:"end"`
	CalendarURL string `json:"calendar_url"`
}

// GetEvent handles GET /api/event. Public — the invitation page needs it
// before any identity exists.
func (s *Server) GetEvent(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, eventResponse{
		Title:       s.event.Title,
		Details:     s.event.Details,
		Location:    s.event.Location,
		DressCode:   s.event.DressCode,
		MapURL:      s.event.MapURL,
		Start:       s.event.Start,
		End:         s.event.End,
		CalendarURL: s.event.CalendarURL(),
	})
}
