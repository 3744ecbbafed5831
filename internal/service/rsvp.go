// Package service contains the business logic for the invitation RSVP service.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/mvdcruz/invitation-rsvp/internal/domain"
	"github.com/mvdcruz/invitation-rsvp/internal/repo"
)

// Notifier is told whenever the stored record set changes, so live
// subscribers can receive a fresh snapshot. *Feed implements it.
type Notifier interface {
	Notify(ctx context.Context)
}

// RsvpService implements business logic for RSVP operations.
type RsvpService struct {
	repo repo.RsvpRepo
	feed Notifier
	log  *slog.Logger
}

// NewRsvpService constructs an RsvpService backed by the provided repo.
// feed may be nil when no live subscribers exist (e.g. in tests).
func NewRsvpService(r repo.RsvpRepo, feed Notifier, log *slog.Logger) *RsvpService {
	if log == nil {
		log = slog.Default()
	}
	return &RsvpService{repo: r, feed: feed, log: log}
}

// Submit validates and persists a new RSVP record.
// The required set mirrors the invitation form: name, email, and contact
// must be non-blank. Attending is a bool and therefore always a choice.
func (s *RsvpService) Submit(ctx context.Context, rsvp domain.Rsvp) (domain.Rsvp, error) {
	rsvp.Name = strings.TrimSpace(rsvp.Name)
	rsvp.Email = strings.TrimSpace(rsvp.Email)
	rsvp.Contact = strings.TrimSpace(rsvp.Contact)
	rsvp.Dietary = strings.TrimSpace(rsvp.Dietary)

	for field, value := range map[string]string{
		"name":    rsvp.Name,
		"email":   rsvp.Email,
		"contact": rsvp.Contact,
	} {
		if value == "" {
			return domain.Rsvp{}, fmt.Errorf("service.RsvpService.Submit: %w: %s is required", domain.ErrValidation, field)
		}
	}

	created, err := s.repo.Create(ctx, rsvp)
	if err != nil {
		return domain.Rsvp{}, fmt.Errorf("service.RsvpService.Submit: %w", err)
	}

	s.notify(ctx)
	return created, nil
}

// List returns all records, newest first.
func (s *RsvpService) List(ctx context.Context) ([]domain.Rsvp, error) {
	rsvps, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.RsvpService.List: %w", err)
	}
	domain.SortNewestFirst(rsvps)
	if rsvps == nil {
		rsvps = []domain.Rsvp{}
	}
	return rsvps, nil
}

// Summary returns the aggregate accept/decline counts.
func (s *RsvpService) Summary(ctx context.Context) (domain.Summary, error) {
	rsvps, err := s.List(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summarize(rsvps), nil
}

// Delete removes a single record. Deleting an id that does not exist is a
// no-op, not an error: the record set ends up in the requested state either
// way, and a concurrent duplicate delete must not surface a failure.
func (s *RsvpService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Delete(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("service.RsvpService.Delete: %w", err)
	}
	s.notify(ctx)
	return nil
}

// DeleteMany fans out one delete per id concurrently and reports per-id
// outcomes. There is no rollback: partial completion is the accepted
// failure mode. Each failure is logged; none aborts the rest.
//
// A WaitGroup (not errgroup) joins the fan-out on purpose — first-error
// cancellation would contradict the per-id independence.
func (s *RsvpService) DeleteMany(ctx context.Context, ids []uuid.UUID) (domain.BulkDeleteResult, error) {
	type outcome struct {
		id  uuid.UUID
		err error
	}

	outcomes := make([]outcome, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.repo.Delete(ctx, id)
			if errors.Is(err, domain.ErrNotFound) {
				err = nil // already gone counts as done
			}
			outcomes[i] = outcome{id: id, err: err}
		}()
	}
	wg.Wait()

	result := domain.BulkDeleteResult{
		Deleted: []uuid.UUID{},
		Failed:  []domain.BulkDeleteFailure{},
	}
	for _, o := range outcomes {
		if o.err != nil {
			s.log.Warn("bulk delete: record failed", "id", o.id, "error", o.err)
			result.Failed = append(result.Failed, domain.BulkDeleteFailure{ID: o.id, Reason: o.err.Error()})
			continue
		}
		result.Deleted = append(result.Deleted, o.id)
	}

	s.notify(ctx)
	return result, nil
}

// notify pushes a fresh snapshot to live subscribers, if any.
func (s *RsvpService) notify(ctx context.Context) {
	if s.feed != nil {
		s.feed.Notify(ctx)
	}
}
