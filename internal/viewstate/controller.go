// Package viewstate models the invitation page's UI state machine: which of
// the three views is showing, where the RSVP form is in its submission
// cycle, and the two-step bulk-delete confirmation.
//
// The DOM is an external collaborator, so this package renders nothing. A
// frontend owns a Controller, feeds user actions into it, and re-renders
// from its accessors. Controllers are single-threaded by design — the UI
// event loop is the only caller — and hold no locks.
package viewstate

import (
	"context"

	"github.com/google/uuid"

	"github.com/mvdcruz/invitation-rsvp/internal/domain"
)

// View identifies which of the three page views is active.
type View string

const (
	ViewInvitation View = "invitation"
	ViewAdminLogin View = "admin-login"
	ViewDashboard  View = "dashboard"
)

// FormStatus tracks the RSVP form's submission cycle.
type FormStatus string

const (
	StatusIdle       FormStatus = "idle"
	StatusSubmitting FormStatus = "submitting"
	StatusSuccess    FormStatus = "success"
	StatusError      FormStatus = "error"
)

// Gate checks the dashboard password. *service.AuthService implements it;
// the returned session token is kept for the frontend's API calls.
type Gate interface {
	AdminLogin(password string) (string, error)
}

// BulkDeleter performs the confirmed bulk delete. *service.RsvpService
// implements it. Failures are the deleter's to log; the controller never
// surfaces them (delete failures are invisible to the operator).
type BulkDeleter interface {
	DeleteMany(ctx context.Context, ids []uuid.UUID) (domain.BulkDeleteResult, error)
}

// Controller holds the page's ephemeral UI state and its transition rules.
// State is initialized to defaults on construction, mutated only by the
// methods below, and discarded with the page.
type Controller struct {
	gate    Gate
	deleter BulkDeleter
	alert   func(message string)

	view         View
	status       FormStatus
	adminSession bool
	sessionToken string
	lastError    string
	bulkArmed    bool
}

// NewController builds a Controller showing the invitation view with an idle
// form. alert is the blocking-dialog callback for a rejected password; nil
// means rejections are silent.
func NewController(gate Gate, deleter BulkDeleter, alert func(string)) *Controller {
	if alert == nil {
		alert = func(string) {}
	}
	return &Controller{
		gate:    gate,
		deleter: deleter,
		alert:   alert,
		view:    ViewInvitation,
		status:  StatusIdle,
	}
}

// View returns the active view.
func (c *Controller) View() View { return c.view }

// Status returns the form's submission status.
func (c *Controller) Status() FormStatus { return c.status }

// AdminSession reports whether the dashboard gate has been passed.
func (c *Controller) AdminSession() bool { return c.adminSession }

// SessionToken returns the admin bearer token, empty before login.
func (c *Controller) SessionToken() string { return c.sessionToken }

// LastError returns the most recent submission error message, empty when none.
func (c *Controller) LastError() string { return c.lastError }

// BulkDeleteArmed reports whether the next bulk-delete request will fire.
func (c *Controller) BulkDeleteArmed() bool { return c.bulkArmed }

// OpenAdminLogin handles the admin-entry control on the invitation view.
func (c *Controller) OpenAdminLogin() {
	c.view = ViewAdminLogin
}

// SubmitPassword checks the password against the gate. Success stores the
// session and shows the dashboard; any rejection raises the alert and stays
// on the login view.
func (c *Controller) SubmitPassword(password string) {
	token, err := c.gate.AdminLogin(password)
	if err != nil {
		c.alert("Incorrect password")
		return
	}
	c.adminSession = true
	c.sessionToken = token
	c.view = ViewDashboard
}

// OpenDashboard re-enters the dashboard. Within the same page load the admin
// flag persists, so no re-authentication is needed; without a session it
// falls back to the login view.
func (c *Controller) OpenDashboard() {
	if c.adminSession {
		c.view = ViewDashboard
		return
	}
	c.view = ViewAdminLogin
}

// Back returns to the invitation view. It clears nothing: the admin session
// survives until the page is discarded.
func (c *Controller) Back() {
	c.view = ViewInvitation
	c.bulkArmed = false
}

// BeginSubmit moves the form from idle to submitting. Returns false when the
// form is not idle (the submit control is disabled mid-flight).
func (c *Controller) BeginSubmit() bool {
	if c.status != StatusIdle {
		return false
	}
	c.status = StatusSubmitting
	return true
}

// SubmitSucceeded completes the cycle on the success branch.
func (c *Controller) SubmitSucceeded() {
	c.status = StatusSuccess
	c.lastError = ""
}

// SubmitFailed completes the cycle on the error branch. The message is kept
// for the banner; the guest sees only a generic failure.
func (c *Controller) SubmitFailed(message string) {
	c.status = StatusError
	c.lastError = message
}

// SubmitAnother resets a finished form back to idle ("New RSVP").
func (c *Controller) SubmitAnother() {
	if c.status == StatusSuccess || c.status == StatusError {
		c.status = StatusIdle
	}
}

// RequestBulkDelete is the two-step confirmation gate. The first call arms
// the confirmation and deletes nothing; the second call within the armed
// state performs the delete and disarms. Returns true when the delete fired.
func (c *Controller) RequestBulkDelete(ctx context.Context, ids []uuid.UUID) bool {
	if !c.bulkArmed {
		c.bulkArmed = true
		return false
	}
	c.bulkArmed = false
	// Outcome intentionally dropped: partial failures are logged by the
	// deleter and never shown to the operator.
	_, _ = c.deleter.DeleteMany(ctx, ids)
	return true
}

// CancelBulkDelete disarms the confirmation without deleting.
func (c *Controller) CancelBulkDelete() {
	c.bulkArmed = false
}
