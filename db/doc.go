// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles schema creation for the local session store.

# Schema

One table:

  - console_session: persisted bearer token plus the serialized Identity
    of the operator, so the console survives restarts without a fresh
    login. The identity column holds JSON; a malformed row is treated as
    absent by the session package, never as an error.

The DDL avoids database-specific defaults so it runs unchanged on both
sqlite (modernc.org/sqlite) and postgres (lib/pq):

	dbConn, _ := sql.Open("sqlite", cfg.DatabaseURL)
	err := db.CreateSchema(dbConn)
*/
package db
