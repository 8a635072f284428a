// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// FailureKind is the closed set of failure classes an attachment operation can
// end in. Callers switch on the kind instead of probing error shapes; the
// user-facing message belongs to the UI layer, the core only classifies.
type FailureKind int

const (
	// FailureUnknown is the zero value. It never appears on a [Failure]
	// constructed through this package and exists so an uninitialized kind is
	// distinguishable from a real classification.
	FailureUnknown FailureKind = iota

	// FailureValidation: malformed input rejected before any cryptographic
	// work began (wrong key/nonce/tag length, non-hex checksum).
	FailureValidation

	// FailureCrypto: authenticated decryption itself failed (bad key, bad
	// tag, corrupted ciphertext). No partial plaintext is ever returned.
	FailureCrypto

	// FailureIntegrity: a checksum mismatch, detected either on the
	// ciphertext before decryption or on the plaintext after a structurally
	// successful decryption.
	FailureIntegrity

	// FailureTransport: the external transport collaborator could not
	// deliver bytes at all. Propagated unchanged, never reinterpreted as a
	// crypto failure.
	FailureTransport
)

// String implements fmt.Stringer.
func (k FailureKind) String() string {
	switch k {
	case FailureValidation:
		return "validation"
	case FailureCrypto:
		return "crypto"
	case FailureIntegrity:
		return "integrity"
	case FailureTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Failure is the structured error carried on every failure path of the
// attachment transfer protocol. It wraps the underlying cause so callers can
// still use [errors.Is] against package sentinels, while Kind and Field give
// the UI layer enough to produce an accurate message.
type Failure struct {
	// Kind classifies the failure per the taxonomy above.
	Kind FailureKind

	// Field names the offending input or metadata field, when one exists
	// (e.g. "nonce", "checksumEncrypted"). Empty otherwise.
	Field string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (f *Failure) Error() string {
	if f.Field != "" {
		return fmt.Sprintf("%s failure on %q: %v", f.Kind, f.Field, f.Err)
	}
	return fmt.Sprintf("%s failure: %v", f.Kind, f.Err)
}

// Unwrap exposes the underlying cause to [errors.Is] and [errors.As].
func (f *Failure) Unwrap() error {
	return f.Err
}

// NewValidationFailure wraps err as a [FailureValidation] on the named field.
func NewValidationFailure(field string, err error) *Failure {
	return &Failure{Kind: FailureValidation, Field: field, Err: err}
}

// NewCryptoFailure wraps err as a [FailureCrypto].
func NewCryptoFailure(err error) *Failure {
	return &Failure{Kind: FailureCrypto, Err: err}
}

// NewIntegrityFailure wraps err as a [FailureIntegrity] on the named field.
func NewIntegrityFailure(field string, err error) *Failure {
	return &Failure{Kind: FailureIntegrity, Field: field, Err: err}
}

// NewTransportFailure wraps err as a [FailureTransport].
func NewTransportFailure(err error) *Failure {
	return &Failure{Kind: FailureTransport, Err: err}
}

// KindOf extracts the [FailureKind] from err, unwrapping as needed.
// Returns [FailureUnknown] for nil and for errors that carry no kind.
func KindOf(err error) FailureKind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return FailureUnknown
}
