// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package apiclient is the single boundary between the console and the oFraud
backend.

# Responsibilities

  - Field-name translation: the backend speaks Spanish wire fields
    (titulo, id_estatus, es_admin, correo_electronico) with some English
    duplicates from older deployments; everything is normalized here into
    the models package, once.
  - Error taxonomy: every failure becomes *apiclient.Error with a Kind of
    Unauthenticated, Forbidden, NotFound, Validation, Network or Unknown.
    Validation messages (string or array) are carried verbatim.
  - Network I/O only: no toasts, no navigation, no session mutation
    originate here. Callers own all UI side effects.

# Endpoints

	token, identity, err := client.Login(ctx, email, password)
	identity, err := client.Register(ctx, req)
	incident, err := client.FetchIncident(ctx, id)
	err := client.SubmitEvaluation(ctx, id, status, supervisorID)
	roster, err := client.FetchAdminRoster(ctx)

SubmitEvaluation returns no incident on purpose: the caller must re-fetch
so reseeded state always comes from server truth, never from an optimistic
client-side construction.

# Error Checking

	if apiclient.IsKind(err, apiclient.KindNotFound) {
		// fall back to the not-found view
	}
*/
package apiclient
