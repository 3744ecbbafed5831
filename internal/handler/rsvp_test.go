package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvdcruz/invitation-rsvp/internal/domain"
)

func rsvpFixture() domain.Rsvp {
	return domain.Rsvp{
		ID:        uuid.New(),
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Contact:   "0917-555-0101",
		Attending: true,
		Dietary:   "no peanuts",
		CreatedAt: time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestPostRsvp(t *testing.T) {
	stored := rsvpFixture()
	rsvps := &mockRsvpServicer{
		SubmitFunc: func(ctx context.Context, rsvp domain.Rsvp) (domain.Rsvp, error) {
			assert.Equal(t, "Jane Doe", rsvp.Name)
			assert.True(t, rsvp.Attending)
			return stored, nil
		},
	}
	srv := newTestServer(t, rsvps, nil, nil)

	body := `{"name":"Jane Doe","email":"jane@example.com","contact":"0917-555-0101","attending":true,"dietary":"no peanuts"}`
	req := httptest.NewRequest(http.MethodPost, "/api/rsvps", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+guestToken)
	rec := doRequest(srv, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, stored.ID.String(), got["id"])
	assert.Equal(t, "Jane Doe", got["name"])
	assert.Equal(t, "2/1/2026, 9:30:00 AM", got["timestamp"])
}

func TestPostRsvp_NoToken(t *testing.T) {
	srv := newTestServer(t, &mockRsvpServicer{}, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/rsvps", strings.NewReader(`{"attending":true}`))
	rec := doRequest(srv, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPostRsvp_MissingAttending(t *testing.T) {
	srv := newTestServer(t, &mockRsvpServicer{}, nil, nil)

	body := `{"name":"Jane Doe","email":"jane@example.com","contact":"0917-555-0101"}`
	req := httptest.NewRequest(http.MethodPost, "/api/rsvps", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+guestToken)
	rec := doRequest(srv, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var got map[string]map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "attending choice is required", got["error"]["message"])
}

func TestPostRsvp_ValidationError(t *testing.T) {
	rsvps := &mockRsvpServicer{
		SubmitFunc: func(ctx context.Context, rsvp domain.Rsvp) (domain.Rsvp, error) {
			return domain.Rsvp{}, fmt.Errorf("service.RsvpService.Submit: %w: name is required", domain.ErrValidation)
		},
	}
	srv := newTestServer(t, rsvps, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/rsvps", strings.NewReader(`{"attending":false}`))
	req.Header.Set("Authorization", "Bearer "+guestToken)
	rec := doRequest(srv, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var got map[string]map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "validation_error", got["error"]["code"])
	assert.Equal(t, "name is required", got["error"]["message"])
}

func TestPostRsvp_ServiceError_HidesDetails(t *testing.T) {
	rsvps := &mockRsvpServicer{
		SubmitFunc: func(ctx context.Context, rsvp domain.Rsvp) (domain.Rsvp, error) {
			return domain.Rsvp{}, fmt.Errorf("service.RsvpService.Submit: connect to db: connection refused")
		},
	}
	srv := newTestServer(t, rsvps, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/rsvps", strings.NewReader(`{"attending":true}`))
	req.Header.Set("Authorization", "Bearer "+guestToken)
	rec := doRequest(srv, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestListRsvps(t *testing.T) {
	first := rsvpFixture()
	second := rsvpFixture()
	second.Name = "John Doe"
	rsvps := &mockRsvpServicer{
		ListFunc: func(ctx context.Context) ([]domain.Rsvp, error) {
			return []domain.Rsvp{first, second}, nil
		},
	}
	srv := newTestServer(t, rsvps, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/rsvps", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := doRequest(srv, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Jane Doe", got[0]["name"])
	assert.Equal(t, "John Doe", got[1]["name"])
}

func TestListRsvps_GuestToken_Returns401(t *testing.T) {
	srv := newTestServer(t, &mockRsvpServicer{}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/rsvps", nil)
	req.Header.Set("Authorization", "Bearer "+guestToken)
	rec := doRequest(srv, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetSummary(t *testing.T) {
	rsvps := &mockRsvpServicer{
		SummaryFunc: func(ctx context.Context) (domain.Summary, error) {
			return domain.Summary{Total: 5, Accepts: 3, Declines: 2}, nil
		},
	}
	srv := newTestServer(t, rsvps, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/rsvps/summary", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := doRequest(srv, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, domain.Summary{Total: 5, Accepts: 3, Declines: 2}, got)
}

func TestDeleteRsvp(t *testing.T) {
	id := uuid.New()
	var deleted uuid.UUID
	rsvps := &mockRsvpServicer{
		DeleteFunc: func(ctx context.Context, got uuid.UUID) error {
			deleted = got
			return nil
		},
	}
	srv := newTestServer(t, rsvps, nil, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/rsvps/"+id.String(), nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := doRequest(srv, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, id, deleted)
}

func TestDeleteRsvp_InvalidID(t *testing.T) {
	srv := newTestServer(t, &mockRsvpServicer{}, nil, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/rsvps/not-a-uuid", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := doRequest(srv, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestBulkDeleteRsvps(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	rsvps := &mockRsvpServicer{
		DeleteManyFunc: func(ctx context.Context, ids []uuid.UUID) (domain.BulkDeleteResult, error) {
			assert.ElementsMatch(t, []uuid.UUID{a, b}, ids)
			return domain.BulkDeleteResult{
				Deleted: []uuid.UUID{a},
				Failed:  []domain.BulkDeleteFailure{{ID: b, Reason: "boom"}},
			}, nil
		},
	}
	srv := newTestServer(t, rsvps, nil, nil)

	body := fmt.Sprintf(`{"ids":["%s","%s"]}`, a, b)
	req := httptest.NewRequest(http.MethodPost, "/api/rsvps/bulk-delete", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := doRequest(srv, req)

	// Partial failure is still a 200 — the successes are already permanent.
	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.BulkDeleteResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []uuid.UUID{a}, got.Deleted)
	require.Len(t, got.Failed, 1)
	assert.Equal(t, b, got.Failed[0].ID)
}

func TestBulkDeleteRsvps_EmptyIDs(t *testing.T) {
	srv := newTestServer(t, &mockRsvpServicer{}, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/rsvps/bulk-delete", strings.NewReader(`{"ids":[]}`))
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := doRequest(srv, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
