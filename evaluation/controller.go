// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package evaluation

import (
	"context"
	"errors"
	"sync"

	"github.com/E10-Naganiom/ofraud-dashboard-web/models"
)

var (
	ErrNoIncident     = errors.New("no incident loaded")
	ErrNoChanges      = errors.New("no changes to submit")
	ErrNotAuthorized  = errors.New("not authorized to evaluate incidents")
	ErrSubmitInFlight = errors.New("a submission is already in flight")
	ErrStaleIncident  = errors.New("stale evaluation result discarded")
)

// State of the controller for one viewed incident.
type State int

const (
	// StateViewing: draft mirrors the last known incident, submit disabled.
	StateViewing State = iota
	// StateDirty: draft differs from the incident, submit enabled if
	// authorized.
	StateDirty
	// StateSubmitting: one submission outstanding, controls disabled.
	StateSubmitting
)

// Backend is the slice of the API boundary the controller needs.
// *apiclient.Client satisfies it.
type Backend interface {
	SubmitEvaluation(ctx context.Context, id int64, status models.IncidentStatus, supervisorID *int64) error
	FetchIncident(ctx context.Context, id int64) (*models.Incident, error)
}

// Draft is the operator's proposed evaluation. A nil supervisor means
// "unassigned", which is a valid target value of its own; whether it is a
// change depends on the incident it is compared against.
type Draft struct {
	ProposedStatus       models.IncidentStatus
	ProposedSupervisorID *int64
}

// Controller mediates all writes to an incident's status and supervisor.
// It owns the draft, serializes submissions, and reconciles with server
// truth after every success. It never renders UI and never touches the
// session.
type Controller struct {
	mu         sync.Mutex
	backend    Backend
	authorize  func() bool
	onSuccess  func(*models.Incident)
	incident   *models.Incident
	draft      Draft
	submitting bool
	generation uint64
}

// NewController creates a controller with no incident loaded. authorize is
// consulted on every submit, never cached. onSuccess fires exactly once per
// applied submission and may be nil.
func NewController(backend Backend, authorize func() bool, onSuccess func(*models.Incident)) *Controller {
	if authorize == nil {
		authorize = func() bool { return false }
	}
	return &Controller{backend: backend, authorize: authorize, onSuccess: onSuccess}
}

// Reseed replaces the held incident with a fresh one from outside and
// resets the draft to mirror it. Bumping the generation makes any in-flight
// submission stale: its late result will be discarded, not applied to the
// newly displayed incident.
func (c *Controller) Reseed(in *models.Incident) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.incident = in
	c.draft = draftFrom(in)
}

// SetStatus updates the proposed status.
func (c *Controller) SetStatus(s models.IncidentStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.ProposedStatus = s
}

// SetSupervisor updates the proposed supervisor; nil unassigns.
func (c *Controller) SetSupervisor(id *int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if id == nil {
		c.draft.ProposedSupervisorID = nil
		return
	}
	v := *id
	c.draft.ProposedSupervisorID = &v
}

// Incident returns the last known server truth, nil before the first
// Reseed. Callers must treat it as read-only; replacement happens only via
// Reseed or a successful Submit.
func (c *Controller) Incident() *models.Incident {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.incident
}

// Draft returns a copy of the current draft.
func (c *Controller) Draft() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	d := c.draft
	if d.ProposedSupervisorID != nil {
		v := *d.ProposedSupervisorID
		d.ProposedSupervisorID = &v
	}
	return d
}

// Dirty reports whether the draft differs from the last known incident.
func (c *Controller) Dirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirtyLocked()
}

// State returns the controller's current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.submitting:
		return StateSubmitting
	case c.dirtyLocked():
		return StateDirty
	default:
		return StateViewing
	}
}

// Submit sends the full intended {status, supervisor} pair to the incident
// named by id. Preconditions: an incident is loaded, it is still the one
// the caller edited (a reseed to a different incident in between refuses
// with ErrStaleIncident rather than writing to the newly viewed one), no
// submission is outstanding, the draft is dirty, and the caller is
// authorized. On success the incident is replaced by a fresh server read,
// the draft reseeds to match, and onSuccess fires once. On failure the
// incident and draft are left untouched so the operator's edit survives. A
// result arriving after the viewed incident changed is discarded with
// ErrStaleIncident.
func (c *Controller) Submit(ctx context.Context, id int64) (*models.Incident, error) {
	c.mu.Lock()
	if c.incident == nil {
		c.mu.Unlock()
		return nil, ErrNoIncident
	}
	if c.incident.ID != id {
		c.mu.Unlock()
		return nil, ErrStaleIncident
	}
	if c.submitting {
		c.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	if !c.dirtyLocked() {
		c.mu.Unlock()
		return nil, ErrNoChanges
	}
	if !c.authorize() {
		c.mu.Unlock()
		return nil, ErrNotAuthorized
	}

	gen := c.generation
	draft := c.draft
	c.submitting = true
	c.mu.Unlock()

	if err := c.backend.SubmitEvaluation(ctx, id, draft.ProposedStatus, draft.ProposedSupervisorID); err != nil {
		c.mu.Lock()
		c.submitting = false
		c.mu.Unlock()
		return nil, err
	}

	// Reseed from a fresh server read, never from an optimistic local
	// construction: the server owns denormalized fields like the
	// supervisor's display name.
	fresh, err := c.backend.FetchIncident(ctx, id)

	c.mu.Lock()
	c.submitting = false
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}
	if c.generation != gen {
		c.mu.Unlock()
		return nil, ErrStaleIncident
	}
	c.incident = fresh
	c.draft = draftFrom(fresh)
	onSuccess := c.onSuccess
	c.mu.Unlock()

	if onSuccess != nil {
		onSuccess(fresh)
	}
	return fresh, nil
}

func (c *Controller) dirtyLocked() bool {
	if c.incident == nil {
		return false
	}
	if c.draft.ProposedStatus != c.incident.Status {
		return true
	}
	return !supervisorEqual(c.draft.ProposedSupervisorID, c.incident.SupervisorID)
}

func draftFrom(in *models.Incident) Draft {
	if in == nil {
		return Draft{}
	}
	d := Draft{ProposedStatus: in.Status}
	if in.SupervisorID != nil {
		v := *in.SupervisorID
		d.ProposedSupervisorID = &v
	}
	return d
}

func supervisorEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
