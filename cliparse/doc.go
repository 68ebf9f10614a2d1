// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Console listen port (default: 8787)
  - BackendURL: oFraud backend base URL (required)
  - DatabaseURL: Session store URL or sqlite file path
  - DatabaseType: "sqlite" (default) or "postgres"
  - IPHashSalt: Secret for login audit IP hashing (required)

# CLI Flags

	-p        Console port
	-b        Backend base URL
	-d        Session database URL
	-t        Session database type
	-ip-salt  IP hash salt

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	BACKEND_URL     → -b
	SESSION_DB_URL  → -d
	SESSION_DB_TYPE → -t
	IP_HASH_SALT    → -ip-salt

CLI flags take precedence over environment variables. A .env file is
loaded by main before parsing, so local development only needs the file.

# Validation

ParseFlags returns an error if required values are missing:

  - BACKEND_URL must be provided
  - IP_HASH_SALT must be provided
  - SESSION_DB_URL must be provided when the type is postgres
*/
package cliparse
