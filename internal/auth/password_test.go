// Copyright (c) 2026 Goshawk Logistics
// SPDX-License-Identifier: MIT

package auth

import (
	"strings"
	"testing"
)

func TestHashArgon2(t *testing.T) {
	hash, err := HashArgon2("admin123")
	if err != nil {
		t.Fatalf("HashArgon2 error: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("unexpected hash format: %s", hash)
	}
}

func TestVerifyArgon2_Correct(t *testing.T) {
	hash, err := HashArgon2("admin123")
	if err != nil {
		t.Fatalf("HashArgon2 error: %v", err)
	}

	ok, err := VerifyArgon2("admin123", hash)
	if err != nil {
		t.Fatalf("VerifyArgon2 error: %v", err)
	}
	if !ok {
		t.Fatal("correct password was rejected")
	}
}

func TestVerifyArgon2_Wrong(t *testing.T) {
	hash, err := HashArgon2("admin123")
	if err != nil {
		t.Fatalf("HashArgon2 error: %v", err)
	}

	ok, err := VerifyArgon2("wrongpassword", hash)
	if err != nil {
		t.Fatalf("VerifyArgon2 error: %v", err)
	}
	if ok {
		t.Fatal("wrong password was accepted")
	}
}

func TestVerifyArgon2_MalformedHash(t *testing.T) {
	if _, err := VerifyArgon2("admin123", "not-a-hash"); err == nil {
		t.Fatal("expected error for malformed hash")
	}
	if _, err := VerifyArgon2("admin123", "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA"); err == nil {
		t.Fatal("expected error for unsupported hash type")
	}
}
