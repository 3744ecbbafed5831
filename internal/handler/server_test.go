package handler_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/mvdcruz/invitation-rsvp/internal/domain"
	"github.com/mvdcruz/invitation-rsvp/internal/handler"
	"github.com/mvdcruz/invitation-rsvp/internal/service"
)

// Fixed tokens the mock auth service recognises. Handler tests exercise the
// route guards with these instead of real signed tokens.
const (
	guestToken = "test-guest-token"
	adminToken = "test-admin-token"
)

// mockRsvpServicer implements handler.RsvpServicer with function fields so each
// test can define exactly the behavior it needs.
type mockRsvpServicer struct {
	SubmitFunc     func(ctx context.Context, rsvp domain.Rsvp) (domain.Rsvp, error)
	ListFunc       func(ctx context.Context) ([]domain.Rsvp, error)
	SummaryFunc    func(ctx context.Context) (domain.Summary, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error
	DeleteManyFunc func(ctx context.Context, ids []uuid.UUID) (domain.BulkDeleteResult, error)
}

var _ handler.RsvpServicer = (*mockRsvpServicer)(nil)

func (m *mockRsvpServicer) Submit(ctx context.Context, rsvp domain.Rsvp) (domain.Rsvp, error) {
	return m.SubmitFunc(ctx, rsvp)
}

func (m *mockRsvpServicer) List(ctx context.Context) ([]domain.Rsvp, error) {
	return m.ListFunc(ctx)
}

func (m *mockRsvpServicer) Summary(ctx context.Context) (domain.Summary, error) {
	return m.SummaryFunc(ctx)
}

func (m *mockRsvpServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

func (m *mockRsvpServicer) DeleteMany(ctx context.Context, ids []uuid.UUID) (domain.BulkDeleteResult, error) {
	return m.DeleteManyFunc(ctx, ids)
}

// mockAuthServicer implements handler.AuthServicer. Verify has a sensible
// default (the fixed tokens above) so most tests only care about the guards,
// not the token plumbing.
type mockAuthServicer struct {
	AnonymousFunc  func() (string, string, error)
	AdminLoginFunc func(password string) (string, error)
	VerifyFunc     func(token string) (service.Identity, error)
}

var _ handler.AuthServicer = (*mockAuthServicer)(nil)

func (m *mockAuthServicer) Anonymous() (string, string, error) {
	return m.AnonymousFunc()
}

func (m *mockAuthServicer) AdminLogin(password string) (string, error) {
	return m.AdminLoginFunc(password)
}

func (m *mockAuthServicer) Verify(token string) (service.Identity, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token)
	}
	switch token {
	case guestToken:
		return service.Identity{UserID: "guest-1", Role: service.RoleGuest}, nil
	case adminToken:
		return service.Identity{UserID: "admin-1", Role: service.RoleAdmin}, nil
	}
	return service.Identity{}, domain.ErrUnauthorized
}

// mockFeed implements handler.SnapshotFeed.
type mockFeed struct {
	SubscribeFunc func(ctx context.Context) (<-chan []domain.Rsvp, func(), error)
}

var _ handler.SnapshotFeed = (*mockFeed)(nil)

func (m *mockFeed) Subscribe(ctx context.Context) (<-chan []domain.Rsvp, func(), error) {
	return m.SubscribeFunc(ctx)
}

// testEvent is the event configuration used across handler tests.
var testEvent = domain.Event{
	Title:     "Avelina's 60th Birthday Celebration",
	Details:   "Join us as we celebrate Avelina's Diamond Jubilee!",
	Location:  "The Emerald Events Place, Antipolo, Rizal",
	DressCode: "Semi-formal Attire",
	Start:     "20260208T150000",
	End:       "20260208T200000",
}

// newTestServer wires the mocks into a full route tree so tests go through
// the same routing and middleware as production requests.
func newTestServer(t *testing.T, rsvps *mockRsvpServicer, auth *mockAuthServicer, feed *mockFeed) http.Handler {
	t.Helper()
	if rsvps == nil {
		rsvps = &mockRsvpServicer{}
	}
	if auth == nil {
		auth = &mockAuthServicer{}
	}
	if feed == nil {
		feed = &mockFeed{}
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return handler.NewServer(rsvps, auth, feed, testEvent, "avelina_60th_rsvps", log).Routes()
}

// doRequest runs a request through the handler and returns the recorder.
func doRequest(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
