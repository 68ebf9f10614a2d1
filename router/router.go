// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/E10-Naganiom/ofraud-dashboard-web/apiclient"
	"github.com/E10-Naganiom/ofraud-dashboard-web/cliparse"
	"github.com/E10-Naganiom/ofraud-dashboard-web/guard"
	"github.com/E10-Naganiom/ofraud-dashboard-web/handlers"
	"github.com/E10-Naganiom/ofraud-dashboard-web/middleware"
	"github.com/E10-Naganiom/ofraud-dashboard-web/session"
)

func NewRouter(store *session.Store, api *apiclient.Client, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(store, api, cfg)
	incidentHandler := handlers.NewIncidentHandler(store, api)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Auth entry points (public)
	mux.HandleFunc("POST /login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("POST /register", middleware.WithLogging(authHandler.Register))
	mux.HandleFunc("POST /logout", middleware.WithLogging(authHandler.Logout))

	// Dashboard routes (guarded: nothing renders without a resolved,
	// authenticated session)
	mux.HandleFunc("GET /profile", middleware.WithLogging(guard.Protect(store, authHandler.Profile)))
	mux.HandleFunc("GET /incidents/{id}", middleware.WithLogging(guard.Protect(store, incidentHandler.GetIncident)))
	mux.HandleFunc("POST /incidents/{id}/evaluate", middleware.WithLogging(guard.Protect(store, incidentHandler.Evaluate)))
	mux.HandleFunc("GET /supervisors", middleware.WithLogging(guard.Protect(store, incidentHandler.Supervisors)))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("oFraud admin console v1"))
	})

	return mux
}
