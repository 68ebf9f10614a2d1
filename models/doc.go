// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models contains the domain and wire types shared by the console.

# Domain Types

  - Identity: the authenticated operator (always whole or absent)
  - Incident: a reported cybercrime incident; only Status and SupervisorID
    are ever written from this console
  - AdminUser: supervisor roster entry
  - IncidentStatus: Pendiente/Aprobado/Rechazado, numeric as on the backend

# Request/Response Types

Console endpoints accept the Spanish form field names the operators know
(correo, contrasena, nombre, apellido); responses use the normalized
English model above. Translation to the upstream backend's own field names
happens in the apiclient package, never here.
*/
package models
