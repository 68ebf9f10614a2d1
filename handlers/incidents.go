// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/E10-Naganiom/ofraud-dashboard-web/apiclient"
	"github.com/E10-Naganiom/ofraud-dashboard-web/authz"
	"github.com/E10-Naganiom/ofraud-dashboard-web/evaluation"
	"github.com/E10-Naganiom/ofraud-dashboard-web/middleware"
	"github.com/E10-Naganiom/ofraud-dashboard-web/models"
	"github.com/E10-Naganiom/ofraud-dashboard-web/session"
)

type IncidentHandler struct {
	store *session.Store
	api   *apiclient.Client

	mu   sync.Mutex
	ctrl *evaluation.Controller
}

func NewIncidentHandler(store *session.Store, api *apiclient.Client) *IncidentHandler {
	h := &IncidentHandler{store: store, api: api}
	h.ctrl = evaluation.NewController(api,
		func() bool {
			// Re-evaluated on every submit, never cached across identities
			return authz.CanEvaluateIncidents(store.Snapshot().Identity)
		},
		func(in *models.Incident) {
			slog.Info("incident evaluated",
				"incident_id", in.ID,
				"status", in.Status.String(),
				"supervisor_assigned", in.SupervisorID != nil,
			)
		})
	return h
}

// incidentView is what the dashboard renders for one incident: the server
// truth, the current draft, and the control flags the form needs.
type incidentView struct {
	Incident    *models.Incident `json:"incident"`
	Draft       draftView        `json:"draft"`
	Dirty       bool             `json:"dirty"`
	Submitting  bool             `json:"submitting"`
	CanEvaluate bool             `json:"can_evaluate"`
	StatusLabel string           `json:"status_label"`
	ReportedAgo string           `json:"reported_ago"`
	UpdatedAgo  string           `json:"updated_ago"`
}

type draftView struct {
	Status       models.IncidentStatus `json:"status"`
	SupervisorID *int64                `json:"supervisor_id"`
}

func (h *IncidentHandler) view(in *models.Incident) incidentView {
	d := h.ctrl.Draft()
	return incidentView{
		Incident:    in,
		Draft:       draftView{Status: d.ProposedStatus, SupervisorID: d.ProposedSupervisorID},
		Dirty:       h.ctrl.Dirty(),
		Submitting:  h.ctrl.State() == evaluation.StateSubmitting,
		CanEvaluate: authz.CanEvaluateIncidents(h.store.Snapshot().Identity),
		StatusLabel: in.Status.String(),
		ReportedAgo: humanize.Time(in.CreatedAt),
		UpdatedAgo:  humanize.Time(in.UpdatedAt),
	}
}

// GetIncident handles GET /incidents/{id}. Every successful fetch reseeds
// the evaluation draft: a fresh incident from outside always wins over
// stale local edits.
func (h *IncidentHandler) GetIncident(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id inválido")
		return
	}

	in, err := h.api.FetchIncident(r.Context(), id)
	if err != nil {
		// A 404 becomes a not-found payload, never a blank screen
		respondAPIError(w, h.store, err)
		return
	}

	h.mu.Lock()
	h.ctrl.Reseed(in)
	h.mu.Unlock()
	middleware.JSONResponse(w, http.StatusOK, h.view(in))
}

// Evaluate handles POST /incidents/{id}/evaluate. The body carries the
// full intended pair; the controller decides whether it is a change.
func (h *IncidentHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id inválido")
		return
	}

	var req models.EvaluateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if !req.Status.Valid() {
		middleware.ErrorResponse(w, http.StatusBadRequest, MsgInvalidStatus)
		return
	}

	h.mu.Lock()
	if cur := h.ctrl.Incident(); cur == nil || cur.ID != id {
		// Evaluating an incident that was never viewed (or a different
		// one): seed from server truth first
		in, fetchErr := h.api.FetchIncident(r.Context(), id)
		if fetchErr != nil {
			h.mu.Unlock()
			respondAPIError(w, h.store, fetchErr)
			return
		}
		h.ctrl.Reseed(in)
	}
	h.ctrl.SetStatus(req.Status)
	h.ctrl.SetSupervisor(req.SupervisorID)
	h.mu.Unlock()

	fresh, err := h.ctrl.Submit(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, evaluation.ErrNoChanges):
			middleware.ErrorResponse(w, http.StatusBadRequest, MsgNoChanges)
		case errors.Is(err, evaluation.ErrNotAuthorized):
			middleware.ErrorResponse(w, http.StatusForbidden, MsgOnlyAdminsEvaluate)
		case errors.Is(err, evaluation.ErrSubmitInFlight):
			middleware.ErrorResponse(w, http.StatusConflict, MsgSubmitInFlight)
		case errors.Is(err, evaluation.ErrStaleIncident):
			middleware.ErrorResponse(w, http.StatusConflict, MsgStaleDiscarded)
		default:
			respondAPIError(w, h.store, err)
		}
		return
	}

	middleware.JSONResponse(w, http.StatusOK, struct {
		Message string `json:"message"`
		incidentView
	}{
		Message:      MsgEvaluationSuccess,
		incidentView: h.view(fresh),
	})
}

// Supervisors handles GET /supervisors
func (h *IncidentHandler) Supervisors(w http.ResponseWriter, r *http.Request) {
	roster, err := h.api.FetchAdminRoster(r.Context())
	if err != nil {
		if apiclient.IsKind(err, apiclient.KindUnauthenticated) {
			respondAPIError(w, h.store, err)
			return
		}
		slog.Error("failed to load supervisor roster", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, MsgRosterError)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, roster)
}
