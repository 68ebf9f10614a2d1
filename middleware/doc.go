// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Request Logging

	mux.HandleFunc("GET /profile", middleware.WithLogging(handler))

Logs start and completion with a shared request id, the response status and
duration in milliseconds.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, payload)
	middleware.ErrorResponse(w, http.StatusNotFound, "Recurso no encontrado.")
	err := middleware.ParseJSONBody(r, &req)

# CORS

CORS wraps the whole mux for browser clients during development.

# Client IP

GetClientIP resolves the caller's address through X-Forwarded-For and
X-Real-IP; handlers hash it (auth.HashIP) before it reaches any log line.
*/
package middleware
