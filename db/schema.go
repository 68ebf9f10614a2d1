// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the console.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamps are set by the application instead of DEFAULT NOW() so the
// same DDL works for both sqlite and postgres.
const schema = `
-- Persisted operator session (single row in practice)
CREATE TABLE IF NOT EXISTS console_session (
    id TEXT PRIMARY KEY,
    token TEXT NOT NULL,
    identity TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`
