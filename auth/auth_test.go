// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"
)

func TestGenerateID(t *testing.T) {
	id, err := GenerateID(8)
	if err != nil {
		t.Fatalf("GenerateID failed: %v", err)
	}
	if len(id) != 16 {
		t.Errorf("Expected 16 hex chars for 8 bytes, got %d: %s", len(id), id)
	}

	// Two calls should never collide
	id2, err := GenerateID(8)
	if err != nil {
		t.Fatalf("GenerateID failed: %v", err)
	}
	if id == id2 {
		t.Error("Expected distinct IDs from consecutive calls")
	}
}

func TestHashIP(t *testing.T) {
	hash1 := HashIP("192.168.1.100", "salt1")
	hash2 := HashIP("192.168.1.100", "salt1")

	if hash1 != hash2 {
		t.Error("Same IP and salt should produce the same hash")
	}
	if len(hash1) != 16 {
		t.Errorf("Expected 16 hex chars, got %d", len(hash1))
	}

	// Different salt must change the hash
	hash3 := HashIP("192.168.1.100", "salt2")
	if hash1 == hash3 {
		t.Error("Different salt should produce a different hash")
	}

	// The raw address must not survive into the hash
	if strings.Contains(hash1, "192") {
		t.Errorf("Hash appears to leak the raw address: %s", hash1)
	}
}
