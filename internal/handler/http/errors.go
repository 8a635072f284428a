// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised while validating an upload request. Callers can
// match against them with [errors.Is].
var (
	// ErrMissingFilePart is returned when the multipart request carries no
	// "file" part.
	ErrMissingFilePart = errors.New("missing `file` part in multipart request")

	// ErrMissingMetadata is returned when the multipart request carries no
	// "metadata" field.
	ErrMissingMetadata = errors.New("missing `metadata` field in multipart request")

	// ErrInvalidMetadata is returned when the "metadata" field is present but
	// is not valid JSON or lacks required fields.
	ErrInvalidMetadata = errors.New("invalid attachment metadata")

	// ErrChecksumMismatch is returned when the ciphertext checksum recomputed
	// by the server does not match the one declared in the metadata. The
	// server can verify only this digest; the plaintext checksum is opaque
	// to it.
	ErrChecksumMismatch = errors.New("encrypted blob checksum mismatch")

	// ErrSizeMismatch is returned when the declared encryptedSize differs
	// from the actual number of uploaded bytes.
	ErrSizeMismatch = errors.New("encrypted blob size mismatch")
)
