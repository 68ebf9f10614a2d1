// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/E10-Naganiom/ofraud-dashboard-web/cliparse"
	"github.com/E10-Naganiom/ofraud-dashboard-web/db"
	"github.com/E10-Naganiom/ofraud-dashboard-web/models"
	"github.com/E10-Naganiom/ofraud-dashboard-web/session"
)

// TestToken is the bearer token the fake backend hands out on login.
const TestToken = "test-access-token"

// SetupSessionDB opens a throwaway sqlite session store with the schema
// applied.
func SetupSessionDB(t *testing.T) *sql.DB {
	t.Helper()

	dbConn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "console.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { dbConn.Close() })

	if err := db.CreateSchema(dbConn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return dbConn
}

// GetTestConfig returns a standard test configuration pointed at the given
// backend.
func GetTestConfig(backendURL string) cliparse.Config {
	return cliparse.Config{
		Port:         8787,
		BackendURL:   backendURL,
		DatabaseType: "sqlite",
		IPHashSalt:   "test-ip-salt",
	}
}

// AdminIdentity is the operator the fake backend authenticates.
func AdminIdentity() *models.Identity {
	return &models.Identity{ID: 1, Name: "Laura", LastName: "Gómez", Email: "laura@example.com", IsAdmin: true}
}

// NewAuthedStore returns a restored session store already logged in as an
// admin, persisted to the given database.
func NewAuthedStore(t *testing.T, dbConn *sql.DB) *session.Store {
	t.Helper()

	store := session.NewStore(session.NewSQLPersister(dbConn), nil)
	store.Restore()
	if err := store.Login(TestToken, AdminIdentity()); err != nil {
		t.Fatalf("Failed to seed session: %v", err)
	}
	return store
}

// FakeIncident is the fake backend's server truth for one incident.
type FakeIncident struct {
	ID         int64
	Titulo     string
	Estatus    int
	Supervisor *int64
}

// FakeBackend is a scripted stand-in for the oFraud backend. Incident
// evaluation mutates its state, so a re-fetch after PATCH observes the new
// server truth exactly like the real thing.
type FakeBackend struct {
	mu sync.Mutex

	// Scripted failures; zero means success.
	LoginStatus    int
	LoginBody      string
	EvaluateStatus int
	RegisterStatus int
	RegisterBody   string

	// Profile returned from /auth/profile.
	ProfileIsAdmin bool

	Incidents map[int64]*FakeIncident

	EvaluateCalls int

	srv *httptest.Server
}

// NewFakeBackend starts a fake backend with one pending, unassigned
// incident (id 42) and an admin profile.
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()

	b := &FakeBackend{
		ProfileIsAdmin: true,
		Incidents: map[int64]*FakeIncident{
			42: {ID: 42, Titulo: "Phishing bancario", Estatus: 1},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", b.handleLogin)
	mux.HandleFunc("GET /auth/profile", b.handleProfile)
	mux.HandleFunc("GET /admin/incidents/{id}", b.handleGetIncident)
	mux.HandleFunc("PATCH /admin/incidents/{id}/evaluate", b.handleEvaluate)
	mux.HandleFunc("GET /admin/users/admins", b.handleRoster)
	mux.HandleFunc("POST /users", b.handleRegister)

	b.srv = httptest.NewServer(mux)
	t.Cleanup(b.srv.Close)
	return b
}

// URL returns the fake backend's base URL.
func (b *FakeBackend) URL() string { return b.srv.URL }

func (b *FakeBackend) handleLogin(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	status, body := b.LoginStatus, b.LoginBody
	b.mu.Unlock()

	if status != 0 {
		w.WriteHeader(status)
		if body == "" {
			body = `{"message":"login rejected"}`
		}
		w.Write([]byte(body))
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"access_token": TestToken})
}

func (b *FakeBackend) handleProfile(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer "+TestToken {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token inválido"}`))
		return
	}
	b.mu.Lock()
	isAdmin := b.ProfileIsAdmin
	b.mu.Unlock()

	fmt.Fprintf(w, `{"profile":{"id":1,"nombre":"Laura","apellido":"Gómez","correo_electronico":"laura@example.com","es_admin":%v}}`, isAdmin)
}

func (b *FakeBackend) handleGetIncident(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)

	b.mu.Lock()
	in, ok := b.Incidents[id]
	if !ok {
		b.mu.Unlock()
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Incidente no encontrado"}`))
		return
	}
	payload := in.wireJSON()
	b.mu.Unlock()

	w.Write([]byte(payload))
}

func (b *FakeBackend) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)

	var req struct {
		IDEstatus  int    `json:"id_estatus"`
		Supervisor *int64 `json:"supervisor"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.EvaluateCalls++

	if b.EvaluateStatus != 0 {
		w.WriteHeader(b.EvaluateStatus)
		w.Write([]byte(`{"message":"evaluación rechazada"}`))
		return
	}

	in, ok := b.Incidents[id]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Incidente no encontrado"}`))
		return
	}

	// Mutate server truth; the console re-fetches to observe it
	in.Estatus = req.IDEstatus
	in.Supervisor = req.Supervisor
	w.WriteHeader(http.StatusOK)
}

func (b *FakeBackend) handleRegister(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	status, body := b.RegisterStatus, b.RegisterBody
	b.mu.Unlock()

	if status != 0 {
		w.WriteHeader(status)
		if body == "" {
			body = `{"message":"registro rechazado"}`
		}
		w.Write([]byte(body))
		return
	}

	var req map[string]any
	json.NewDecoder(r.Body).Decode(&req)
	w.WriteHeader(http.StatusCreated)
	fmt.Fprintf(w, `{"id":7,"nombre":%q,"correo_electronico":%q,"es_admin":true}`, req["name"], req["email"])
}

func (b *FakeBackend) handleRoster(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`[{"id":9,"nombre":"Laura","apellido":"Gómez"},{"id":10,"nombre":"Ana","apellido":"López"}]`))
}

func (in *FakeIncident) wireJSON() string {
	supervisor := "null"
	if in.Supervisor != nil {
		supervisor = fmt.Sprintf(`{"id":%d,"nombre":"Laura","apellido":"Gómez"}`, *in.Supervisor)
	}
	return fmt.Sprintf(`{
		"id": %d,
		"titulo": %q,
		"descripcion": "Correo falso del banco",
		"id_categoria": 2,
		"categoria": {"id": 2, "nombre": "Phishing"},
		"id_estatus": %d,
		"supervisor": %s,
		"id_usuario": 15,
		"es_anonimo": false,
		"fecha_creacion": "2026-08-01T10:00:00Z",
		"fecha_actualizacion": "2026-08-02T12:30:00Z"
	}`, in.ID, in.Titulo, in.Estatus, supervisor)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
