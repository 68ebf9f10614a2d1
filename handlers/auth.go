// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/E10-Naganiom/ofraud-dashboard-web/apiclient"
	"github.com/E10-Naganiom/ofraud-dashboard-web/auth"
	"github.com/E10-Naganiom/ofraud-dashboard-web/cliparse"
	"github.com/E10-Naganiom/ofraud-dashboard-web/guard"
	"github.com/E10-Naganiom/ofraud-dashboard-web/middleware"
	"github.com/E10-Naganiom/ofraud-dashboard-web/models"
	"github.com/E10-Naganiom/ofraud-dashboard-web/session"
)

type AuthHandler struct {
	store *session.Store
	api   *apiclient.Client
	cfg   cliparse.Config
}

func NewAuthHandler(store *session.Store, api *apiclient.Client, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{store: store, api: api, cfg: cfg}
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Correo == "" || req.Contrasena == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "correo y contrasena son requeridos")
		return
	}

	// Audit log carries a salted hash, never the raw address or credentials
	ipHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.IPHashSalt)

	token, identity, err := h.api.Login(r.Context(), req.Correo, req.Contrasena)
	if err != nil {
		slog.Warn("login rejected", "ip_hash", ipHash, "kind", errKind(err))
		switch {
		case apiclient.IsKind(err, apiclient.KindNotFound):
			middleware.ErrorResponse(w, http.StatusNotFound, MsgUserNotFound)
		case apiclient.IsKind(err, apiclient.KindUnauthenticated):
			middleware.ErrorResponse(w, http.StatusUnauthorized, MsgWrongPassword)
		case apiclient.IsKind(err, apiclient.KindValidation):
			middleware.ErrorResponse(w, http.StatusBadRequest, MsgInvalidEmail)
		default:
			middleware.ErrorResponse(w, http.StatusBadGateway, MsgLoginGeneric)
		}
		return
	}

	// The console is admin-only; a valid non-admin account still may not
	// enter.
	if !identity.IsAdmin {
		slog.Warn("login denied for non-admin", "ip_hash", ipHash, "user", identity.Email)
		middleware.ErrorResponse(w, http.StatusForbidden, MsgAdminsOnly)
		return
	}

	if err := h.store.Login(token, identity); err != nil {
		// Session is active in memory; durability was best-effort
		slog.Warn("session not persisted", "error", err)
	}

	slog.Info("login succeeded", "ip_hash", ipHash, "user", identity.Email)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		User:     *identity,
		ReturnTo: guard.SafeReturnTo(r.URL.Query().Get("returnTo")),
	})
}

// Register handles POST /register. No auto-login after registration.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Correo == "" || req.Contrasena == "" || req.Nombre == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "nombre, correo y contrasena son requeridos")
		return
	}

	created, err := h.api.Register(r.Context(), req)
	if err != nil {
		var apiErr *apiclient.Error
		switch {
		case apiclient.IsKind(err, apiclient.KindValidation) && asError(err, &apiErr) && apiErr.Status == http.StatusConflict:
			middleware.ErrorResponse(w, http.StatusConflict, MsgDuplicateEmail)
		case apiclient.IsKind(err, apiclient.KindValidation):
			// Backend validation messages are shown verbatim, joined
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		default:
			middleware.ErrorResponse(w, http.StatusBadGateway, MsgRegisterError)
		}
		return
	}

	slog.Info("admin account registered", "user", created.Email)
	middleware.JSONResponse(w, http.StatusCreated, created)
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Logout(); err != nil {
		// In-memory session is gone either way
		slog.Warn("logout left persisted state behind", "error", err)
	}
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: MsgLogoutSuccess})
}

// Profile handles GET /profile (guarded)
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()
	if snap.Identity == nil {
		// The guard keeps this unreachable; defensive anyway
		middleware.ErrorResponse(w, http.StatusUnauthorized, MsgSessionExpired)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, snap.Identity)
}
