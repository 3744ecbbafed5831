package domain

import "github.com/google/uuid"

// BulkDeleteFailure records one id that could not be deleted and why.
type BulkDeleteFailure struct {
	ID     uuid.UUID `json:"id"`
	Reason string    `json:"reason"`
}

// BulkDeleteResult aggregates the outcome of a fan-out bulk delete.
// Bulk deletion is not transactional: deletes that succeed stay deleted
// even when others in the same batch fail.
type BulkDeleteResult struct {
	Deleted []uuid.UUID         `json:"deleted"`
	Failed  []BulkDeleteFailure `json:"failed"`
}
