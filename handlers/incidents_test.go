// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/E10-Naganiom/ofraud-dashboard-web/apiclient"
	"github.com/E10-Naganiom/ofraud-dashboard-web/models"
	"github.com/E10-Naganiom/ofraud-dashboard-web/session"
	"github.com/E10-Naganiom/ofraud-dashboard-web/testutil"
)

// evaluateResponse mirrors the flattened JSON the Evaluate handler writes.
type evaluateResponse struct {
	Message     string           `json:"message"`
	Incident    *models.Incident `json:"incident"`
	Dirty       bool             `json:"dirty"`
	Submitting  bool             `json:"submitting"`
	CanEvaluate bool             `json:"can_evaluate"`
	StatusLabel string           `json:"status_label"`
}

type incidentViewResponse struct {
	Incident *models.Incident `json:"incident"`
	Draft    struct {
		Status       models.IncidentStatus `json:"status"`
		SupervisorID *int64                `json:"supervisor_id"`
	} `json:"draft"`
	Dirty       bool   `json:"dirty"`
	CanEvaluate bool   `json:"can_evaluate"`
	StatusLabel string `json:"status_label"`
	ReportedAgo string `json:"reported_ago"`
}

func setupIncidentHandler(t *testing.T) (*IncidentHandler, *testutil.FakeBackend, *session.Store) {
	t.Helper()

	backend := testutil.NewFakeBackend(t)
	store := testutil.NewAuthedStore(t, testutil.SetupSessionDB(t))
	api := apiclient.New(backend.URL(), store.Token)
	return NewIncidentHandler(store, api), backend, store
}

func incidentRequest(method, path, id string, body interface{}) *http.Request {
	req := testutil.MakeRequest(method, path, body, nil)
	req.SetPathValue("id", id)
	return req
}

func TestGetIncident(t *testing.T) {
	handler, _, _ := setupIncidentHandler(t)

	req := incidentRequest("GET", "/incidents/42", "42", nil)
	w := httptest.NewRecorder()
	handler.GetIncident(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var view incidentViewResponse
	testutil.AssertJSON(t, w, &view)

	if view.Incident == nil || view.Incident.Title != "Phishing bancario" {
		t.Fatalf("Expected incident 42, got %+v", view.Incident)
	}
	if view.StatusLabel != "Pendiente" {
		t.Errorf("Expected status label 'Pendiente', got '%s'", view.StatusLabel)
	}
	if view.Dirty {
		t.Error("A freshly loaded incident must not be dirty")
	}
	if !view.CanEvaluate {
		t.Error("Expected an admin session to be allowed to evaluate")
	}
	if view.Draft.Status != models.StatusPending || view.Draft.SupervisorID != nil {
		t.Errorf("Expected draft seeded from server truth, got %+v", view.Draft)
	}
	if view.ReportedAgo == "" {
		t.Error("Expected a relative reported timestamp")
	}
}

func TestGetIncidentNotFound(t *testing.T) {
	handler, _, _ := setupIncidentHandler(t)

	req := incidentRequest("GET", "/incidents/99", "99", nil)
	w := httptest.NewRecorder()
	handler.GetIncident(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != MsgNotFound {
		t.Errorf("Expected message '%s', got '%s'", MsgNotFound, resp.Message)
	}
}

func TestGetIncidentInvalidID(t *testing.T) {
	handler, _, _ := setupIncidentHandler(t)

	req := incidentRequest("GET", "/incidents/abc", "abc", nil)
	w := httptest.NewRecorder()
	handler.GetIncident(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestEvaluateApproveAndAssign(t *testing.T) {
	handler, backend, _ := setupIncidentHandler(t)

	// Load the incident first, like the dashboard does
	w := httptest.NewRecorder()
	handler.GetIncident(w, incidentRequest("GET", "/incidents/42", "42", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	supervisor := int64(9)
	req := incidentRequest("POST", "/incidents/42/evaluate", "42",
		models.EvaluateRequest{Status: models.StatusApproved, SupervisorID: &supervisor})
	w = httptest.NewRecorder()
	handler.Evaluate(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp evaluateResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Message != MsgEvaluationSuccess {
		t.Errorf("Expected message '%s', got '%s'", MsgEvaluationSuccess, resp.Message)
	}
	// The response carries re-fetched server truth, not the local draft
	if resp.Incident == nil || resp.Incident.Status != models.StatusApproved {
		t.Fatalf("Expected approved incident from server truth, got %+v", resp.Incident)
	}
	if resp.Incident.SupervisorID == nil || *resp.Incident.SupervisorID != 9 {
		t.Errorf("Expected supervisor 9 assigned, got %v", resp.Incident.SupervisorID)
	}
	if resp.StatusLabel != "Aprobado" {
		t.Errorf("Expected status label 'Aprobado', got '%s'", resp.StatusLabel)
	}
	if resp.Dirty {
		t.Error("Expected a clean draft after a successful evaluation")
	}
	if backend.EvaluateCalls != 1 {
		t.Errorf("Expected exactly one evaluate call, got %d", backend.EvaluateCalls)
	}
}

func TestEvaluateWithoutPriorView(t *testing.T) {
	handler, _, _ := setupIncidentHandler(t)

	// No GetIncident first: the handler seeds from server truth itself
	req := incidentRequest("POST", "/incidents/42/evaluate", "42",
		models.EvaluateRequest{Status: models.StatusRejected})
	w := httptest.NewRecorder()
	handler.Evaluate(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp evaluateResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Incident.Status != models.StatusRejected {
		t.Errorf("Expected rejected incident, got status %d", resp.Incident.Status)
	}
}

func TestEvaluateNoChanges(t *testing.T) {
	handler, backend, _ := setupIncidentHandler(t)

	// Same pair the incident already has: pending, unassigned
	req := incidentRequest("POST", "/incidents/42/evaluate", "42",
		models.EvaluateRequest{Status: models.StatusPending})
	w := httptest.NewRecorder()
	handler.Evaluate(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != MsgNoChanges {
		t.Errorf("Expected message '%s', got '%s'", MsgNoChanges, resp.Message)
	}
	if backend.EvaluateCalls != 0 {
		t.Errorf("Expected no backend call for a no-change submit, got %d", backend.EvaluateCalls)
	}
}

func TestEvaluateUnassignsSupervisor(t *testing.T) {
	handler, backend, _ := setupIncidentHandler(t)

	nine := int64(9)
	backend.Incidents[42].Supervisor = &nine
	backend.Incidents[42].Estatus = 2

	// Keep the status, drop the supervisor: still a change
	req := incidentRequest("POST", "/incidents/42/evaluate", "42",
		models.EvaluateRequest{Status: models.StatusApproved, SupervisorID: nil})
	w := httptest.NewRecorder()
	handler.Evaluate(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp evaluateResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Incident.SupervisorID != nil {
		t.Errorf("Expected supervisor unassigned, got %v", *resp.Incident.SupervisorID)
	}
}

func TestEvaluateRequiresAdmin(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	store := session.NewStore(session.NewSQLPersister(testutil.SetupSessionDB(t)), nil)
	store.Restore()
	operator := testutil.AdminIdentity()
	operator.IsAdmin = false
	if err := store.Login(testutil.TestToken, operator); err != nil {
		t.Fatalf("Failed to seed session: %v", err)
	}
	api := apiclient.New(backend.URL(), store.Token)
	handler := NewIncidentHandler(store, api)

	req := incidentRequest("POST", "/incidents/42/evaluate", "42",
		models.EvaluateRequest{Status: models.StatusApproved})
	w := httptest.NewRecorder()
	handler.Evaluate(w, req)

	testutil.AssertStatus(t, w, http.StatusForbidden)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != MsgOnlyAdminsEvaluate {
		t.Errorf("Expected message '%s', got '%s'", MsgOnlyAdminsEvaluate, resp.Message)
	}
	if backend.EvaluateCalls != 0 {
		t.Error("An unauthorized submit must never reach the backend")
	}
}

func TestEvaluateInvalidStatus(t *testing.T) {
	handler, _, _ := setupIncidentHandler(t)

	req := incidentRequest("POST", "/incidents/42/evaluate", "42",
		models.EvaluateRequest{Status: 7})
	w := httptest.NewRecorder()
	handler.Evaluate(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != MsgInvalidStatus {
		t.Errorf("Expected message '%s', got '%s'", MsgInvalidStatus, resp.Message)
	}
}

func TestEvaluateBackendFailure(t *testing.T) {
	handler, backend, _ := setupIncidentHandler(t)
	backend.EvaluateStatus = http.StatusInternalServerError

	req := incidentRequest("POST", "/incidents/42/evaluate", "42",
		models.EvaluateRequest{Status: models.StatusApproved})
	w := httptest.NewRecorder()
	handler.Evaluate(w, req)

	testutil.AssertStatus(t, w, http.StatusBadGateway)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != MsgSomethingWrong {
		t.Errorf("Expected message '%s', got '%s'", MsgSomethingWrong, resp.Message)
	}
}

func TestEvaluateExpiredTokenClearsSession(t *testing.T) {
	handler, backend, store := setupIncidentHandler(t)

	// Seed first, then have the backend reject the token on submit
	w := httptest.NewRecorder()
	handler.GetIncident(w, incidentRequest("GET", "/incidents/42", "42", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	backend.EvaluateStatus = http.StatusUnauthorized

	req := incidentRequest("POST", "/incidents/42/evaluate", "42",
		models.EvaluateRequest{Status: models.StatusApproved})
	w = httptest.NewRecorder()
	handler.Evaluate(w, req)

	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	if store.IsAuthenticated() {
		t.Error("Expected session cleared after backend token rejection")
	}
}

func TestSupervisors(t *testing.T) {
	handler, _, _ := setupIncidentHandler(t)

	req := testutil.MakeRequest("GET", "/supervisors", nil, nil)
	w := httptest.NewRecorder()
	handler.Supervisors(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var roster []models.AdminUser
	testutil.AssertJSON(t, w, &roster)
	if len(roster) != 2 {
		t.Fatalf("Expected 2 supervisors, got %d", len(roster))
	}
	if roster[0].Name != "Laura" || roster[1].Name != "Ana" {
		t.Errorf("Unexpected roster ordering: %+v", roster)
	}
}
