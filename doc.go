// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the oFraud admin console.

The console is the operator-facing gateway for the oFraud incident
reporting platform: administrators log in, review reported cybercrime
incidents, and evaluate them (approve or reject, with an optional
supervisor assignment). All domain data lives in the oFraud backend; the
console holds only the operator's session.

# Starting the Console

The console requires the backend URL and an IP hashing secret, via
environment variables or CLI flags:

	BACKEND_URL=https://api.ofraud.example IP_HASH_SALT=... go run main.go

Or with flags:

	go run main.go -p 8787 -b "https://api.ofraud.example" -ip-salt "..."

# Configuration

Required settings:

  - BACKEND_URL (-b): oFraud backend base URL
  - IP_HASH_SALT (-ip-salt): Secret for audit-log IP hashing

Optional settings:

  - PORT (-p): Console port (default: 8787)
  - SESSION_DB_TYPE (-t): "sqlite" (default) or "postgres"
  - SESSION_DB_URL (-d): Session database location

# Architecture

The console uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, incidents)
  - router: Route definitions using Go 1.22+ routing
  - guard: Route protection for the authenticated dashboard
  - session: Session lifecycle with durable persistence
  - evaluation: Incident evaluation state machine
  - authz: Authorization predicates
  - apiclient: Typed client for the oFraud backend
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Token generation and IP hashing
  - db: Session schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
