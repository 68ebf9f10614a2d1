// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/E10-Naganiom/ofraud-dashboard-web/models"
)

// SQLPersister stores the session in the console_session table. Works with
// both the sqlite and postgres drivers; the schema lives in package db.
type SQLPersister struct {
	db *sql.DB
}

func NewSQLPersister(db *sql.DB) *SQLPersister {
	return &SQLPersister{db: db}
}

// Load returns the most recent persisted session, or ("", nil, nil) when
// none exists. A row whose identity column fails to parse, or parses to an
// incomplete identity, is reported as an error so the store can discard it.
func (p *SQLPersister) Load() (string, *models.Identity, error) {
	var token, identityJSON string
	err := p.db.QueryRow(`
		SELECT token, identity FROM console_session ORDER BY updated_at DESC LIMIT 1
	`).Scan(&token, &identityJSON)

	if errors.Is(err, sql.ErrNoRows) {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to load session: %w", err)
	}

	var identity models.Identity
	if err := json.Unmarshal([]byte(identityJSON), &identity); err != nil {
		return "", nil, fmt.Errorf("corrupt persisted identity: %w", err)
	}
	// JSON null or {} unmarshals cleanly into a zero identity; that must
	// not become an authenticated session
	if identity.ID == 0 || identity.Email == "" {
		return "", nil, errors.New("persisted identity is incomplete")
	}
	if token == "" {
		return "", nil, nil
	}

	return token, &identity, nil
}

// Save replaces any persisted session with the given pair. One row at a
// time: the console is single-operator.
func (p *SQLPersister) Save(token string, identity *models.Identity) error {
	buf, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to serialize identity: %w", err)
	}

	tx, err := p.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin session save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM console_session`); err != nil {
		return fmt.Errorf("failed to replace session: %w", err)
	}
	_, err = tx.Exec(`
		INSERT INTO console_session (id, token, identity, updated_at)
		VALUES ($1, $2, $3, $4)
	`, uuid.NewString(), token, string(buf), time.Now())
	if err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	return tx.Commit()
}

// Clear erases every persisted session row.
func (p *SQLPersister) Clear() error {
	if _, err := p.db.Exec(`DELETE FROM console_session`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
