package domain

// Summary holds the dashboard's aggregate counts.
// Accepts + Declines always equals Total: every record carries an explicit
// attending choice, there is no third state.
type Summary struct {
	Total    int `json:"total"`
	Accepts  int `json:"accepts"`
	Declines int `json:"declines"`
}

// Summarize derives the aggregate counts from a record set.
func Summarize(rsvps []Rsvp) Summary {
	s := Summary{Total: len(rsvps)}
	for _, r := range rsvps {
		if r.Attending {
			s.Accepts++
		} else {
			s.Declines++
		}
	}
	return s
}
