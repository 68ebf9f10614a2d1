// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the console's HTTP routes using Go 1.22+ routing.

Public routes: /health, /login, /register, /logout and the root banner.
Everything under the dashboard (profile, incident detail, evaluation,
supervisor roster) is wrapped in guard.Protect, so an unauthenticated
request is redirected to /login?returnTo=<requested path> before any
handler runs.
*/
package router
