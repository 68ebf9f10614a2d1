// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"time"

	"github.com/E10-Naganiom/ofraud-dashboard-web/models"
)

// The backend historically answered with a mix of Spanish and English field
// names (nombre/name, es_admin/is_admin, correo_electronico/email). The
// wire types below accept both spellings and normalize once, here, so no
// other package ever sees the duplication.

type wireProfile struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Name     string `json:"name"`
	Apellido string `json:"apellido"`
	LastName string `json:"last_name"`
	Correo   string `json:"correo_electronico"`
	Email    string `json:"email"`
	EsAdmin  *bool  `json:"es_admin"`
	IsAdmin  *bool  `json:"is_admin"`
}

func (p wireProfile) identity() *models.Identity {
	return &models.Identity{
		ID:       p.ID,
		Name:     firstNonEmpty(p.Nombre, p.Name),
		LastName: firstNonEmpty(p.Apellido, p.LastName),
		Email:    firstNonEmpty(p.Correo, p.Email),
		IsAdmin:  firstNonNil(p.EsAdmin, p.IsAdmin),
	}
}

type wireAdminUser struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Name     string `json:"name"`
	Apellido string `json:"apellido"`
	LastName string `json:"last_name"`
}

func (u wireAdminUser) adminUser() models.AdminUser {
	return models.AdminUser{
		ID:       u.ID,
		Name:     firstNonEmpty(u.Nombre, u.Name),
		LastName: firstNonEmpty(u.Apellido, u.LastName),
	}
}

type wireCategory struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Name   string `json:"name"`
}

type wireEvidence struct {
	ID          int64  `json:"id"`
	URL         string `json:"url"`
	IDIncidente int64  `json:"id_incidente"`
}

type wireIncident struct {
	ID                 int64           `json:"id"`
	Titulo             string          `json:"titulo"`
	Descripcion        string          `json:"descripcion"`
	IDCategoria        int64           `json:"id_categoria"`
	Categoria          *wireCategory   `json:"categoria"`
	IDEstatus          int             `json:"id_estatus"`
	Supervisor         *wireAdminUser  `json:"supervisor"`
	IDUsuario          int64           `json:"id_usuario"`
	EsAnonimo          bool            `json:"es_anonimo"`
	NombreAtacante     *string         `json:"nombre_atacante"`
	Telefono           *string         `json:"telefono"`
	CorreoAtacante     *string         `json:"correo_electronico_atacante"`
	UsuarioRedSocial   *string         `json:"usuario_red_social"`
	RedSocial          *string         `json:"red_social"`
	Evidencias         []wireEvidence  `json:"evidencias"`
	FechaCreacion      string          `json:"fecha_creacion"`
	FechaActualizacion string          `json:"fecha_actualizacion"`
}

func (w wireIncident) incident() *models.Incident {
	in := &models.Incident{
		ID:            w.ID,
		Title:         w.Titulo,
		Description:   w.Descripcion,
		CategoryID:    w.IDCategoria,
		Status:        models.IncidentStatus(w.IDEstatus),
		ReporterID:    w.IDUsuario,
		Anonymous:     w.EsAnonimo,
		AttackerName:  w.NombreAtacante,
		AttackerPhone: w.Telefono,
		AttackerEmail: w.CorreoAtacante,
		SocialUser:    w.UsuarioRedSocial,
		SocialNetwork: w.RedSocial,
		CreatedAt:     parseTime(w.FechaCreacion),
		UpdatedAt:     parseTime(w.FechaActualizacion),
	}

	if w.Categoria != nil {
		in.Category = &models.Category{
			ID:   w.Categoria.ID,
			Name: firstNonEmpty(w.Categoria.Nombre, w.Categoria.Name),
		}
	}
	if w.Supervisor != nil {
		su := w.Supervisor.adminUser()
		in.Supervisor = &su
		in.SupervisorID = &su.ID
	}
	for _, ev := range w.Evidencias {
		in.Evidence = append(in.Evidence, models.Evidence{
			ID:         ev.ID,
			URL:        ev.URL,
			IncidentID: ev.IDIncidente,
		})
	}
	return in
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstNonNil(values ...*bool) bool {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return false
}

// parseTime accepts the RFC 3339 timestamps the backend emits, plus the
// bare "2006-01-02 15:04:05" variant seen from older deployments. A value
// that parses as neither becomes the zero time rather than an error; the
// server remains authoritative on the next fetch.
func parseTime(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return time.Time{}
}
