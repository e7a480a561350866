// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package identity

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// IdentityVerifier decides how a PIN is stored and how a typed PIN is
// matched against a stored one.
type IdentityVerifier interface {
	// Seal returns the value persisted in the identity's pin field.
	Seal(pin string) (string, error)

	// Match reports whether pin matches the persisted value stored.
	Match(stored, pin string) bool
}

// PlainPINVerifier stores PINs as typed and compares them verbatim.
//
// This is weak: PINs are readable in the document store and in exports,
// and a 4-digit space is trivially enumerable. It keeps the persisted
// layout compatible with existing exports.
type PlainPINVerifier struct{}

func (PlainPINVerifier) Seal(pin string) (string, error) { return pin, nil }

func (PlainPINVerifier) Match(stored, pin string) bool { return stored == pin }

// Argon2 parameters for sealed PINs.
const (
	argon2Time    = 2
	argon2Memory  = 19 * 1024
	argon2Threads = 1
	argon2KeyLen  = 32
	argon2SaltLen = 16
)

// Argon2PINVerifier stores PINs as argon2id hashes in the format
// $argon2id$v=19$m=19456,t=2,p=1$salt$hash.
//
// Stored values that are not argon2id hashes are compared verbatim so that
// a list written by PlainPINVerifier keeps working after the switch.
type Argon2PINVerifier struct{}

func (Argon2PINVerifier) Seal(pin string) (string, error) {
	salt := make([]byte, argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	hash := argon2.IDKey([]byte(pin), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argon2Memory, argon2Time, argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash)), nil
}

func (Argon2PINVerifier) Match(stored, pin string) bool {
	if !strings.HasPrefix(stored, "$argon2id$") {
		return stored == pin
	}
	ok, err := verifyArgon2(pin, stored)
	return err == nil && ok
}

func verifyArgon2(input, encodedHash string) (bool, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return false, fmt.Errorf("invalid hash format")
	}

	var memory, timeCost uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &timeCost, &threads); err != nil {
		return false, fmt.Errorf("parsing parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("decoding salt: %w", err)
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("decoding hash: %w", err)
	}

	hash := argon2.IDKey([]byte(input), salt, timeCost, memory, threads, uint32(len(expected)))
	return subtle.ConstantTimeCompare(hash, expected) == 1, nil
}

// ValidPIN reports whether pin is exactly four ASCII digits.
func ValidPIN(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return false
		}
	}
	return true
}
