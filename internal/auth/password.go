// Copyright (c) 2026 Goshawk Logistics
// SPDX-License-Identifier: MIT

package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// argon2id cost parameters for newly minted admin password hashes.
// m=19456 KiB, t=2, p=1 (OWASP minimum configuration).
const (
	argonMemory  uint32 = 19 * 1024
	argonTime    uint32 = 2
	argonLanes   uint8  = 1
	argonKeyLen  uint32 = 32
	argonSaltLen        = 16
)

// HashArgon2 hashes the admin password for GOSHAWK_ADMIN_PASSWORD_HASH.
// The result is the standard encoded form,
// $argon2id$v=19$m=19456,t=2,p=1$<salt>$<hash>, which VerifyArgon2 accepts.
func HashArgon2(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonLanes, argonKeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonLanes,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

// VerifyArgon2 checks a password against an encoded argon2id hash. The cost
// parameters embedded in the hash win over the current defaults, so hashes
// minted under older settings keep verifying. Comparison is constant time.
func VerifyArgon2(password, encoded string) (bool, error) {
	fields := strings.Split(encoded, "$")
	if len(fields) != 6 || fields[0] != "" {
		return false, fmt.Errorf("malformed argon2 hash")
	}
	if fields[1] != "argon2id" {
		return false, fmt.Errorf("unsupported hash algorithm %q", fields[1])
	}

	var version int
	if _, err := fmt.Sscanf(fields[2], "v=%d", &version); err != nil {
		return false, fmt.Errorf("parsing hash version: %w", err)
	}

	var (
		memory, time uint32
		lanes        uint8
	)
	if _, err := fmt.Sscanf(fields[3], "m=%d,t=%d,p=%d", &memory, &time, &lanes); err != nil {
		return false, fmt.Errorf("parsing hash parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(fields[4])
	if err != nil {
		return false, fmt.Errorf("decoding salt: %w", err)
	}
	want, err := base64.RawStdEncoding.DecodeString(fields[5])
	if err != nil {
		return false, fmt.Errorf("decoding hash: %w", err)
	}

	got := argon2.IDKey([]byte(password), salt, time, memory, lanes, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
