// Package repo contains all database access logic for the invitation RSVP service.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/mvdcruz/invitation-rsvp/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// RsvpRepo defines the persistence operations for RSVP records.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
//
// Records are never updated: the only operations are create, read, delete.
type RsvpRepo interface {
	// Create inserts a new record and returns the persisted copy (with
	// DB-generated id and created_at populated).
	Create(ctx context.Context, rsvp domain.Rsvp) (domain.Rsvp, error)

	// List returns all records ordered by created_at descending.
	List(ctx context.Context) ([]domain.Rsvp, error)

	// Delete removes a record by ID. Returns domain.ErrNotFound when no
	// record with that ID exists; callers that treat a missing record as a
	// no-op check for that sentinel.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgRsvpRepo is the Postgres implementation of RsvpRepo.
type pgRsvpRepo struct {
	db db
}

// NewRsvpRepo constructs an RsvpRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewRsvpRepo(db db) RsvpRepo {
	return &pgRsvpRepo{db: db}
}

// Create inserts a new RSVP row and returns the full persisted record.
// created_at is assigned by the database so the sort order is monotone even
// when clients submit with skewed clocks.
func (r *pgRsvpRepo) Create(ctx context.Context, rsvp domain.Rsvp) (domain.Rsvp, error) {
	const q = `
		INSERT INTO rsvps (name, email, contact, attending, dietary)
		VALUES (@name, @email, @contact, @attending, @dietary)
		RETURNING id, name, email, contact, attending, dietary, created_at`

	args := pgx.NamedArgs{
		"name":      rsvp.Name,
		"email":     rsvp.Email,
		"contact":   rsvp.Contact,
		"attending": rsvp.Attending,
		"dietary":   rsvp.Dietary,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanRsvp(row)
	if err != nil {
		return domain.Rsvp{}, fmt.Errorf("repo.RsvpRepo.Create: %w", err)
	}
	return result, nil
}

// List returns all RSVP records ordered by created_at descending (most recent first).
func (r *pgRsvpRepo) List(ctx context.Context) ([]domain.Rsvp, error) {
	const q = `
		SELECT id, name, email, contact, attending, dietary, created_at
		FROM rsvps
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.RsvpRepo.List: %w", err)
	}
	defer rows.Close()

	var rsvps []domain.Rsvp
	for rows.Next() {
		rec, err := scanRsvp(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.RsvpRepo.List: scan: %w", err)
		}
		rsvps = append(rsvps, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.RsvpRepo.List: rows: %w", err)
	}

	return rsvps, nil
}

// Delete removes an RSVP record by primary key.
func (r *pgRsvpRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM rsvps WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.RsvpRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.RsvpRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanRsvp to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanRsvp maps a single database row into a domain.Rsvp.
func scanRsvp(s scanner) (domain.Rsvp, error) {
	var (
		rec domain.Rsvp
		id  pgtype.UUID
	)

	err := s.Scan(&id, &rec.Name, &rec.Email, &rec.Contact, &rec.Attending, &rec.Dietary, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Rsvp{}, domain.ErrNotFound
		}
		return domain.Rsvp{}, err
	}

	rec.ID = uuid.UUID(id.Bytes)
	return rec, nil
}
