// Package domain contains the core data types for the invitation RSVP service.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler).
package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Rsvp is one guest's response to the invitation.
// Records are immutable once stored — they are only ever created or deleted.
// CreatedAt is assigned by the database at insert time and determines the
// dashboard display order (newest first).
type Rsvp struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Contact   string    `json:"contact"`
	Attending bool      `json:"attending"`
	Dietary   string    `json:"dietary,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SortNewestFirst orders rsvps by CreatedAt descending, in place.
// The store already returns rows in this order; consumers that merge or
// receive snapshots re-sort anyway so the display order is deterministic.
func SortNewestFirst(rsvps []Rsvp) {
	sort.SliceStable(rsvps, func(i, j int) bool {
		return rsvps[i].CreatedAt.After(rsvps[j].CreatedAt)
	})
}
