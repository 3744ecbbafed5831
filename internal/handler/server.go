// Package handler implements the HTTP handlers for the invitation RSVP API.
// All handlers are methods on Server. Methods are split into feature files
// (auth.go, rsvp.go, export.go, ...) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mvdcruz/invitation-rsvp/internal/domain"
	"github.com/mvdcruz/invitation-rsvp/internal/middleware"
	"github.com/mvdcruz/invitation-rsvp/internal/service"
)

// RsvpServicer defines the business operations the RSVP handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type RsvpServicer interface {
	Submit(ctx context.Context, rsvp domain.Rsvp) (domain.Rsvp, error)
	List(ctx context.Context) ([]domain.Rsvp, error)
	Summary(ctx context.Context) (domain.Summary, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) (domain.BulkDeleteResult, error)
}

// AuthServicer defines the identity operations the auth handlers and the
// route guards depend on. It embeds middleware.Verifier so the same
// dependency drives both token issuance and token checks.
type AuthServicer interface {
	middleware.Verifier
	Anonymous() (token string, userID string, err error)
	AdminLogin(password string) (string, error)
}

// SnapshotFeed is the live-subscription hub the stream handler consumes.
type SnapshotFeed interface {
	Subscribe(ctx context.Context) (<-chan []domain.Rsvp, func(), error)
}

// Server holds the dependencies shared by every handler.
type Server struct {
	rsvps       RsvpServicer
	auth        AuthServicer
	feed        SnapshotFeed
	event       domain.Event
	csvFilename string
	log         *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// csvFilename is the export attachment name without the ".csv" extension.
func NewServer(rsvps RsvpServicer, auth AuthServicer, feed SnapshotFeed, event domain.Event, csvFilename string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		rsvps:       rsvps,
		auth:        auth,
		feed:        feed,
		event:       event,
		csvFilename: csvFilename,
		log:         log,
	}
}

// Routes returns the full route tree. Public endpoints (event info, token
// issuance, health) need no token; submission needs any identity; the
// dashboard surface needs an admin session.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/anonymous", s.PostAnonymous)
		r.Post("/admin/login", s.PostAdminLogin)
		r.Get("/event", s.GetEvent)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(s.auth, service.RoleGuest))
			r.Post("/rsvps", s.PostRsvp)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(s.auth, service.RoleAdmin))
			r.Get("/rsvps", s.ListRsvps)
			r.Get("/rsvps/summary", s.GetSummary)
			r.Get("/rsvps/export", s.GetExport)
			r.Get("/rsvps/stream", s.StreamRsvps)
			r.Delete("/rsvps/{id}", s.DeleteRsvp)
			r.Post("/rsvps/bulk-delete", s.BulkDeleteRsvps)
		})
	})

	return r
}
