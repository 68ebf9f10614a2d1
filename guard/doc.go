// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package guard protects the dashboard routes.

A request against a guarded route is answered by exactly one of three
outcomes, decided from the session snapshot:

  - Resolving: the persisted session has not been restored yet. The guard
    answers 503 with Retry-After rather than leaking a flash of protected
    or denied content.
  - Denied: no authenticated session. The guard answers 303 to the login
    page, carrying the requested path as a returnTo query parameter.
  - Granted: the wrapped handler serves normally.

returnTo values are sanitized before reuse: only same-site relative paths
survive, everything else falls back to the dashboard root.
*/
package guard
