// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides small token and hashing utilities.

The console never mints bearer tokens itself - those come from the oFraud
backend on login. What lives here:

# ID Generation

Random hex IDs for request correlation:

	id, err := auth.GenerateID(8)  // 16 hex characters

# IP Hashing

For privacy-preserving login-attempt audit logs:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256. Raw addresses are
never written to the log.
*/
package auth
