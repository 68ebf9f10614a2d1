// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package evaluation drives the incident evaluation cycle.

# States

One Controller per viewed incident, with three states:

	Viewing ──edit──▶ Dirty ──Submit──▶ Submitting ──success──▶ Viewing
	                    ▲                    │
	                    └──────failure───────┘

Viewing: the draft mirrors the last known incident. Dirty: the proposed
status or supervisor differs. Submitting: one submission outstanding;
further Submit calls return ErrSubmitInFlight until it resolves.

# Server Truth

A successful submit re-fetches the incident and reseeds the draft from the
response, never from a locally constructed copy. A failed submit leaves
both the incident and the dirty draft untouched so the operator can retry.

# Stale Responses

Staleness is guarded on both sides of the wire. Submit takes the id of the
incident the caller edited; if the controller was reseeded to a different
incident in the meantime the submission is refused (ErrStaleIncident)
before anything is sent. Reseed also bumps an internal generation counter:
when the operator navigates away while a submission is in flight, the late
result fails the generation check and is discarded (ErrStaleIncident)
instead of being applied to the newly displayed incident. There is no
request cancellation; discarding is the correctness mechanism.
*/
package evaluation
