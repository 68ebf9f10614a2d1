// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Incident status values. These match the numeric estatus ids used by the
// oFraud backend (1=Pendiente, 2=Aprobado, 3=Rechazado).
type IncidentStatus int

const (
	StatusPending  IncidentStatus = 1
	StatusApproved IncidentStatus = 2
	StatusRejected IncidentStatus = 3
)

// Valid reports whether s is one of the three known statuses.
func (s IncidentStatus) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// String returns the Spanish display name used across the console.
func (s IncidentStatus) String() string {
	switch s {
	case StatusPending:
		return "Pendiente"
	case StatusApproved:
		return "Aprobado"
	case StatusRejected:
		return "Rechazado"
	default:
		return "Desconocido"
	}
}

// Identity is the authenticated console operator. It is never partially
// valid: either the whole struct exists or the session holds nil.
type Identity struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

// DisplayName returns "Name LastName" for UI labels.
func (i Identity) DisplayName() string {
	if i.LastName == "" {
		return i.Name
	}
	return i.Name + " " + i.LastName
}

// AdminUser is a roster entry eligible as incident supervisor.
type AdminUser struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
}

// DisplayName returns "Name LastName" for the supervisor selector.
func (u AdminUser) DisplayName() string {
	if u.LastName == "" {
		return u.Name
	}
	return u.Name + " " + u.LastName
}

// Category is the incident category reference as returned nested on an
// incident. Category CRUD itself lives outside the console core.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Evidence is a file attached to an incident by the reporter.
type Evidence struct {
	ID         int64  `json:"id"`
	URL        string `json:"url"`
	IncidentID int64  `json:"incident_id"`
}

// Incident is a reported cybercrime incident. Incidents are created by the
// reporting side; the console only ever writes Status and SupervisorID, and
// only through the evaluation submit path. UpdatedAt is authoritative from
// the server after every successful evaluation.
type Incident struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	CategoryID  int64          `json:"category_id"`
	Category    *Category      `json:"category,omitempty"`
	Status      IncidentStatus `json:"status"`

	// SupervisorID is nil when the incident is unassigned. Unassigned is a
	// distinct valid value, not merely an absence.
	SupervisorID *int64     `json:"supervisor_id"`
	Supervisor   *AdminUser `json:"supervisor,omitempty"`

	ReporterID int64 `json:"reporter_id"`
	Anonymous  bool  `json:"anonymous"`

	// Attacker details are free-form and optional.
	AttackerName  *string `json:"attacker_name,omitempty"`
	AttackerPhone *string `json:"attacker_phone,omitempty"`
	AttackerEmail *string `json:"attacker_email,omitempty"`
	SocialUser    *string `json:"social_user,omitempty"`
	SocialNetwork *string `json:"social_network,omitempty"`

	Evidence []Evidence `json:"evidence,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Request types

type LoginRequest struct {
	Correo     string `json:"correo"`
	Contrasena string `json:"contrasena"`
}

type RegisterRequest struct {
	Nombre     string `json:"nombre"`
	Apellido   string `json:"apellido"`
	Correo     string `json:"correo"`
	Contrasena string `json:"contrasena"`
}

// EvaluateRequest carries the full intended evaluation pair. SupervisorID
// null means "unassign"; the console always sends both fields, so null is
// never ambiguous with "no change".
type EvaluateRequest struct {
	Status       IncidentStatus `json:"status"`
	SupervisorID *int64         `json:"supervisor_id"`
}

// Response types

type LoginResponse struct {
	User     Identity `json:"user"`
	ReturnTo string   `json:"return_to"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
