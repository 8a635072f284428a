// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors returned by the key chain and cipher operations. Callers
// should match them with [errors.Is]; the service layer maps them onto the
// failure taxonomy in the models package.
var (
	// ErrInvalidKeySize is returned when key material is not exactly 32 bytes.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when a nonce is not exactly 12 bytes.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrInvalidTagSize is returned when an authentication tag is not exactly
	// 16 bytes.
	ErrInvalidTagSize = errors.New("invalid tag size")

	// ErrDecryptionFailed is returned when AES-GCM authentication fails:
	// wrong key, altered ciphertext, or altered tag. No plaintext accompanies
	// this error, ever.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrEntropyUnavailable is returned when the configured entropy source
	// cannot supply random bytes for key or nonce generation.
	ErrEntropyUnavailable = errors.New("entropy source unavailable")
)
