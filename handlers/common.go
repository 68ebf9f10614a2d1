// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/E10-Naganiom/ofraud-dashboard-web/apiclient"
	"github.com/E10-Naganiom/ofraud-dashboard-web/middleware"
	"github.com/E10-Naganiom/ofraud-dashboard-web/session"
)

func asError(err error, target **apiclient.Error) bool {
	return errors.As(err, target)
}

func errKind(err error) string {
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind.String()
	}
	return "unknown"
}

// respondAPIError maps a typed apiclient failure from a guarded call onto
// the console response. An Unauthenticated kind means the backend no longer
// accepts our token: the session is cleared (which fires the login redirect
// signal) before answering.
func respondAPIError(w http.ResponseWriter, store *session.Store, err error) {
	switch {
	case apiclient.IsKind(err, apiclient.KindUnauthenticated):
		if logoutErr := store.Logout(); logoutErr != nil {
			slog.Warn("session cleanup after 401 incomplete", "error", logoutErr)
		}
		middleware.ErrorResponse(w, http.StatusUnauthorized, MsgSessionExpired)
	case apiclient.IsKind(err, apiclient.KindForbidden):
		middleware.ErrorResponse(w, http.StatusForbidden, MsgForbidden)
	case apiclient.IsKind(err, apiclient.KindNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, MsgNotFound)
	case apiclient.IsKind(err, apiclient.KindValidation):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("backend call failed", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, MsgSomethingWrong)
	}
}
