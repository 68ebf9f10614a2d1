// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package authz holds the console's authorization predicates.

Predicates are pure functions over an identity so that every caller (the
route guard, the evaluation submit path, the view rendering) applies the
same rule and re-evaluates it on every use instead of caching a decision
across identity changes.
*/
package authz
