// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

// User-facing messages, in Spanish like the rest of the operator UI.
// Centralized so wording stays consistent across handlers.
const (
	// Auth
	MsgUserNotFound   = "Usuario no encontrado"
	MsgWrongPassword  = "Contraseña incorrecta"
	MsgInvalidEmail   = "Correo electrónico inválido"
	MsgLoginGeneric   = "Error al iniciar sesión. Por favor, intente nuevamente."
	MsgAdminsOnly     = "Acceso denegado. Solo administradores pueden acceder al dashboard."
	MsgDuplicateEmail = "Ya existe una cuenta con este correo"
	MsgRegisterError  = "Error al registrar el usuario"
	MsgLogoutSuccess  = "Sesión cerrada exitosamente"
	MsgSessionExpired = "No autorizado. Por favor, inicie sesión nuevamente."

	// Generic
	MsgNotFound       = "Recurso no encontrado."
	MsgForbidden      = "No tiene permisos para realizar esta acción."
	MsgSomethingWrong = "Algo salió mal. Por favor, intente nuevamente."

	// Evaluation
	MsgEvaluationSuccess  = "Incidente evaluado exitosamente."
	MsgOnlyAdminsEvaluate = "Solo administradores pueden evaluar incidentes."
	MsgNoChanges          = "Modifica el estatus o supervisor para guardar cambios"
	MsgSubmitInFlight     = "Hay una evaluación en curso. Espere a que termine."
	MsgStaleDiscarded     = "El incidente mostrado cambió; la evaluación no se aplicó."
	MsgInvalidStatus      = "Estatus inválido"
	MsgRosterError        = "Error al cargar supervisores."
)
