// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/E10-Naganiom/ofraud-dashboard-web/db"
	"github.com/E10-Naganiom/ofraud-dashboard-web/models"
)

// memPersister is an in-memory Persister with optional injected failures.
type memPersister struct {
	token    string
	identity *models.Identity
	loadErr  error
	saveErr  error
	clearErr error
	cleared  int
}

func (m *memPersister) Load() (string, *models.Identity, error) {
	if m.loadErr != nil {
		return "", nil, m.loadErr
	}
	return m.token, m.identity, nil
}

func (m *memPersister) Save(token string, identity *models.Identity) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.token = token
	m.identity = identity
	return nil
}

func (m *memPersister) Clear() error {
	m.cleared++
	if m.clearErr != nil {
		return m.clearErr
	}
	m.token = ""
	m.identity = nil
	return nil
}

func adminIdentity() *models.Identity {
	return &models.Identity{ID: 1, Name: "Laura", LastName: "Gómez", Email: "laura@example.com", IsAdmin: true}
}

func TestStore_StartsResolving(t *testing.T) {
	store := NewStore(&memPersister{}, nil)

	snap := store.Snapshot()
	if !snap.IsLoading {
		t.Error("Expected IsLoading=true before Restore")
	}
	if snap.IsAuthenticated() {
		t.Error("Expected unauthenticated before Restore")
	}
}

func TestRestore_EmptyPersistence(t *testing.T) {
	store := NewStore(&memPersister{}, nil)
	store.Restore()

	snap := store.Snapshot()
	if snap.IsLoading {
		t.Error("Expected IsLoading=false after Restore")
	}
	if snap.IsAuthenticated() {
		t.Error("Expected unauthenticated with empty persistence")
	}
}

func TestRestore_ValidSession(t *testing.T) {
	p := &memPersister{token: "tok", identity: adminIdentity()}
	store := NewStore(p, nil)
	store.Restore()

	snap := store.Snapshot()
	if !snap.IsAuthenticated() {
		t.Fatal("Expected authenticated session after restore")
	}
	if snap.Token != "tok" || snap.Identity.Email != "laura@example.com" {
		t.Errorf("Expected persisted values, got %+v", snap)
	}
}

func TestRestore_CorruptPersistenceDegradesToLoggedOut(t *testing.T) {
	p := &memPersister{loadErr: errors.New("corrupt persisted identity")}
	store := NewStore(p, nil)

	// Must not panic and must not stay in the loading state
	store.Restore()

	snap := store.Snapshot()
	if snap.IsLoading {
		t.Error("Expected IsLoading=false after failed restore")
	}
	if snap.IsAuthenticated() {
		t.Error("Expected unauthenticated after corrupt restore")
	}
	if p.cleared != 1 {
		t.Errorf("Expected persisted values discarded once, cleared %d times", p.cleared)
	}
}

func TestRestore_PartialPairDiscarded(t *testing.T) {
	testCases := []struct {
		name string
		p    *memPersister
	}{
		{"TokenWithoutIdentity", &memPersister{token: "tok"}},
		{"IdentityWithoutToken", &memPersister{identity: adminIdentity()}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := NewStore(tc.p, nil)
			store.Restore()

			if store.IsAuthenticated() {
				t.Error("Half a persisted pair must not authenticate")
			}
			if tc.p.cleared != 1 {
				t.Errorf("Expected the partial row discarded once, cleared %d times", tc.p.cleared)
			}
		})
	}

	// An empty persistence is not a broken one; nothing to clear
	p := &memPersister{}
	store := NewStore(p, nil)
	store.Restore()
	if p.cleared != 0 {
		t.Errorf("Expected no clear on empty persistence, cleared %d times", p.cleared)
	}
}

func TestRestore_OnlyFirstCallCounts(t *testing.T) {
	p := &memPersister{}
	store := NewStore(p, nil)
	store.Restore()

	// A later call must not re-enter loading or re-read persistence
	p.token = "tok"
	p.identity = adminIdentity()
	store.Restore()

	if store.IsAuthenticated() {
		t.Error("Second Restore call should be a no-op")
	}
}

func TestLogin_RequiresFullPair(t *testing.T) {
	store := NewStore(&memPersister{}, nil)
	store.Restore()

	if err := store.Login("", adminIdentity()); !errors.Is(err, ErrIncompleteSession) {
		t.Errorf("Expected ErrIncompleteSession for empty token, got %v", err)
	}
	if err := store.Login("tok", nil); !errors.Is(err, ErrIncompleteSession) {
		t.Errorf("Expected ErrIncompleteSession for nil identity, got %v", err)
	}
	if store.IsAuthenticated() {
		t.Error("Half-authenticated state must be impossible")
	}
}

func TestLogin_SetsAndPersists(t *testing.T) {
	p := &memPersister{}
	store := NewStore(p, nil)
	store.Restore()

	if err := store.Login("tok", adminIdentity()); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if !store.IsAuthenticated() {
		t.Error("Expected authenticated after login")
	}
	if p.token != "tok" || p.identity == nil {
		t.Error("Expected session persisted")
	}
}

func TestLogin_PersistFailureIsReportedNotMasked(t *testing.T) {
	p := &memPersister{saveErr: errors.New("disk full")}
	store := NewStore(p, nil)
	store.Restore()

	err := store.Login("tok", adminIdentity())
	if err == nil {
		t.Fatal("Expected persistence error to surface")
	}
	// In-memory state still changed
	if !store.IsAuthenticated() {
		t.Error("Expected in-memory login despite persistence failure")
	}
}

func TestLogout_ClearsAndSignalsOnce(t *testing.T) {
	signals := 0
	p := &memPersister{token: "tok", identity: adminIdentity()}
	store := NewStore(p, func() { signals++ })
	store.Restore()

	if err := store.Logout(); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	if store.IsAuthenticated() {
		t.Error("Expected unauthenticated after logout")
	}
	if p.token != "" || p.identity != nil {
		t.Error("Expected persisted values erased")
	}
	if signals != 1 {
		t.Errorf("Expected exactly one redirect signal per logout, got %d", signals)
	}

	store.Logout()
	if signals != 2 {
		t.Errorf("Expected one signal per call, got %d after second logout", signals)
	}
}

func TestIsAuthenticated_AlwaysDerived(t *testing.T) {
	store := NewStore(&memPersister{}, nil)
	store.Restore()

	checkInvariant := func() {
		t.Helper()
		snap := store.Snapshot()
		derived := snap.Identity != nil && snap.Token != ""
		if snap.IsAuthenticated() != derived {
			t.Errorf("IsAuthenticated drifted from (identity, token): %+v", snap)
		}
	}

	checkInvariant()
	store.Login("tok", adminIdentity())
	checkInvariant()
	store.Logout()
	checkInvariant()
}

func TestSQLPersister_RoundTrip(t *testing.T) {
	dbConn := openTestDB(t)
	p := NewSQLPersister(dbConn)

	if err := p.Save("tok-1", adminIdentity()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	// Saving again replaces, never accumulates rows
	if err := p.Save("tok-2", adminIdentity()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	token, identity, err := p.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if token != "tok-2" {
		t.Errorf("Expected latest token, got %s", token)
	}
	if identity == nil || identity.Email != "laura@example.com" {
		t.Errorf("Expected identity round-trip, got %+v", identity)
	}

	var count int
	if err := dbConn.QueryRow(`SELECT COUNT(*) FROM console_session`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("Expected a single session row, got %d", count)
	}

	if err := p.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	token, identity, err = p.Load()
	if err != nil || token != "" || identity != nil {
		t.Errorf("Expected empty load after clear, got %q %v %v", token, identity, err)
	}
}

func TestSQLPersister_CorruptIdentity(t *testing.T) {
	dbConn := openTestDB(t)
	p := NewSQLPersister(dbConn)

	_, err := dbConn.Exec(`
		INSERT INTO console_session (id, token, identity, updated_at)
		VALUES ('row-1', 'tok', '{not json', $1)
	`, time.Now())
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := p.Load(); err == nil {
		t.Error("Expected error for corrupt identity column")
	}

	// The store built on top must degrade instead of failing
	store := NewStore(p, nil)
	store.Restore()
	if store.IsAuthenticated() {
		t.Error("Expected unauthenticated store from corrupt row")
	}
}

func TestSQLPersister_IncompleteIdentityDiscarded(t *testing.T) {
	// JSON that parses cleanly but carries no usable identity
	for _, raw := range []string{"null", "{}"} {
		t.Run(raw, func(t *testing.T) {
			dbConn := openTestDB(t)
			p := NewSQLPersister(dbConn)

			_, err := dbConn.Exec(`
				INSERT INTO console_session (id, token, identity, updated_at)
				VALUES ('row-1', 'tok', $1, $2)
			`, raw, time.Now())
			if err != nil {
				t.Fatal(err)
			}

			if _, _, err := p.Load(); err == nil {
				t.Error("Expected error for an incomplete persisted identity")
			}

			store := NewStore(p, nil)
			store.Restore()
			if store.IsAuthenticated() {
				t.Error("An empty identity must not produce an authenticated session")
			}

			// The unusable row is gone, not re-read on the next start
			var count int
			if err := dbConn.QueryRow(`SELECT COUNT(*) FROM console_session`).Scan(&count); err != nil {
				t.Fatal(err)
			}
			if count != 0 {
				t.Errorf("Expected the row discarded, %d left", count)
			}
		})
	}
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbConn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { dbConn.Close() })

	if err := db.CreateSchema(dbConn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return dbConn
}
