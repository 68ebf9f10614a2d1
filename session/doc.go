// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session holds the console operator's authenticated session.

# Lifecycle

	store := session.NewStore(session.NewSQLPersister(dbConn), onLogout)
	store.Restore()                  // once, at startup
	store.Login(token, identity)     // after a successful backend login
	store.Logout()                   // clears memory + disk, fires onLogout

# Invariants

  - Identity and token are both present or both absent; IsAuthenticated is
    derived from the pair and never stored on its own.
  - IsLoading is true only between NewStore and the first Restore call.
  - Restore absorbs persistence failures (unreadable database, corrupt
    identity JSON) by degrading to logged-out and discarding the stored
    values. Login and Logout do not mask persistence errors: memory state
    changes first, the error tells the caller durability was best-effort.
  - The onLogout signal fires at most once per Logout call. Nothing except
    Login can re-establish the pair, so a late-arriving API response after
    logout cannot resurrect the session.

Persistence uses the console_session table via database/sql, so the same
code serves the sqlite and postgres drivers selected in cliparse.
*/
package session
