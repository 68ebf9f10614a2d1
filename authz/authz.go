// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package authz holds the console's authorization predicates. Pure
// functions over the current identity: no caching, no side effects, so a
// change of identity takes effect on the very next check.
package authz

import "github.com/E10-Naganiom/ofraud-dashboard-web/models"

// CanEvaluateIncidents reports whether the identity may change an
// incident's status or supervisor. Non-admins see the same data read-only.
func CanEvaluateIncidents(identity *models.Identity) bool {
	return identity != nil && identity.IsAdmin
}
