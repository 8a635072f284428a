// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// hexDigestLen is the length of a SHA-256 digest in hex characters.
const hexDigestLen = sha256.Size * 2

// checksumService is the private implementation of [ChecksumService].
type checksumService struct{}

// NewChecksumService constructs a [ChecksumService].
func NewChecksumService() ChecksumService {
	return &checksumService{}
}

// Calculate implements [ChecksumService]. hex.EncodeToString already emits
// lowercase, which is the canonical form carried in attachment metadata.
func (c *checksumService) Calculate(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Verify implements [ChecksumService]. A malformed expected digest (wrong
// length or non-hex characters) is a mismatch, not an error: the digest is
// untrusted input from metadata, and the caller only needs a verdict.
// Comparison is case-insensitive; the digest is not a secret, so no
// constant-time comparison is needed.
func (c *checksumService) Verify(data []byte, expected string) bool {
	if len(expected) != hexDigestLen {
		return false
	}
	if _, err := hex.DecodeString(expected); err != nil {
		return false
	}

	return strings.EqualFold(c.Calculate(data), expected)
}
