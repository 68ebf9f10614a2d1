// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the console's HTTP request handlers.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - AuthHandler: login, register, logout, profile
  - IncidentHandler: incident detail, evaluation submit, supervisor roster

	authHandler := handlers.NewAuthHandler(store, api, cfg)
	incidentHandler := handlers.NewIncidentHandler(store, api)

# Auth Flow

	POST /login     → Login (correo/contrasena, answers user + safe returnTo)
	POST /register  → Register (no auto-login)
	POST /logout    → Logout (clears session, fires the redirect signal)
	GET  /profile   → Profile (guarded)

Login failures map onto fixed Spanish messages: 404 upstream means the
account does not exist ("Usuario no encontrado"), 401 means a bad password
("Contraseña incorrecta"), 400 a malformed email ("Correo electrónico
inválido"); anything else gets the generic retry message.

# Evaluation Flow

	GET  /incidents/{id}           → GetIncident (reseeds the draft)
	POST /incidents/{id}/evaluate  → Evaluate (drives the state machine)
	GET  /supervisors              → Supervisors (roster for the selector)

Evaluate routes everything through evaluation.Controller, so the
no-change, unauthorized, double-submit and stale-navigation rules are
enforced in one place. A 401 from the backend on any guarded call clears
the session before the response goes out.

# Side Effects

UI concerns (messages, status codes, redirects) live here and only here;
the apiclient and the state machines below never touch the response.
*/
package handlers
