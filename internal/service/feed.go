package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mvdcruz/invitation-rsvp/internal/domain"
	"github.com/mvdcruz/invitation-rsvp/internal/repo"
)

// Feed is the live-subscription hub for the dashboard.
//
// It models the store's push contract: every change to the record set
// re-delivers the ENTIRE current set to every subscriber, in newest-first
// order. Consumers re-derive whatever they need from each snapshot instead
// of patching incrementally.
//
// Each subscriber channel is buffered with capacity 1 and a pending stale
// snapshot is replaced rather than queued — only the latest snapshot
// matters, and a slow consumer must never block the writer.
type Feed struct {
	repo repo.RsvpRepo
	log  *slog.Logger

	mu   sync.Mutex
	subs map[int]chan []domain.Rsvp
	next int
}

// NewFeed constructs a Feed reading snapshots from the provided repo.
func NewFeed(r repo.RsvpRepo, log *slog.Logger) *Feed {
	if log == nil {
		log = slog.Default()
	}
	return &Feed{
		repo: r,
		log:  log,
		subs: make(map[int]chan []domain.Rsvp),
	}
}

// Subscribe registers a live subscriber and delivers the current snapshot
// immediately. The returned cancel func MUST be called when the consumer is
// done; after it returns, no further snapshots are delivered and the channel
// is closed. Calling cancel more than once is safe.
func (f *Feed) Subscribe(ctx context.Context) (<-chan []domain.Rsvp, func(), error) {
	initial, err := f.snapshot(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("service.Feed.Subscribe: %w", err)
	}

	ch := make(chan []domain.Rsvp, 1)
	ch <- initial

	f.mu.Lock()
	id := f.next
	f.next++
	f.subs[id] = ch
	f.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs, id)
			f.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel, nil
}

// Notify reloads the record set and pushes it to every subscriber.
// A failed reload is logged and skipped — subscribers keep their last
// snapshot and will catch up on the next change.
func (f *Feed) Notify(ctx context.Context) {
	snap, err := f.snapshot(ctx)
	if err != nil {
		f.log.Error("feed: reload snapshot", "error", err)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.subs {
		// Drop the stale pending snapshot, then offer the fresh one.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}

// SubscriberCount reports the number of live subscribers.
func (f *Feed) SubscriberCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

func (f *Feed) snapshot(ctx context.Context) ([]domain.Rsvp, error) {
	rsvps, err := f.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	domain.SortNewestFirst(rsvps)
	if rsvps == nil {
		rsvps = []domain.Rsvp{}
	}
	return rsvps, nil
}
