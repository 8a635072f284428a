// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// Sizes of the fixed-length fields of the attachment encryption scheme
// (AES-256-GCM with a 96-bit nonce and a 128-bit tag).
const (
	// MasterKeySize is the exported length of a master key in bytes.
	MasterKeySize = 32

	// NonceSize is the AES-GCM nonce length in bytes.
	NonceSize = 12

	// TagSize is the AES-GCM authentication tag length in bytes.
	TagSize = 16
)

// EncryptedPayload is the in-memory representation of one encrypted
// attachment: the three outputs of an AES-256-GCM encryption kept as named
// fields. Code inside the application always works with this struct; the flat
// nonce ‖ tag ‖ ciphertext blob exists only at the transport boundary and is
// produced/consumed by [EncryptedPayload.Encode] and [DecodeEncryptedBlob].
type EncryptedPayload struct {
	// Ciphertext is the raw AES-GCM ciphertext without the tag.
	// Empty for zero-length plaintext.
	Ciphertext []byte

	// Nonce is the 12-byte nonce generated freshly for this encryption.
	Nonce []byte

	// Tag is the 16-byte GCM authentication tag.
	Tag []byte
}

var (
	// ErrBlobTooShort is returned by [DecodeEncryptedBlob] when the blob is
	// shorter than nonce + tag and therefore cannot contain a valid payload.
	ErrBlobTooShort = errors.New("encrypted blob too short")
)

// Encode serializes the payload into the wire blob nonce ‖ tag ‖ ciphertext.
// This byte order is the fixed contract shared with the transport collaborator
// and with the ciphertext checksum in [AttachmentMeta].
func (p EncryptedPayload) Encode() []byte {
	blob := make([]byte, 0, len(p.Nonce)+len(p.Tag)+len(p.Ciphertext))
	blob = append(blob, p.Nonce...)
	blob = append(blob, p.Tag...)
	blob = append(blob, p.Ciphertext...)
	return blob
}

// DecodeEncryptedBlob splits a wire blob back into an [EncryptedPayload].
// The blob must be at least NonceSize+TagSize bytes long; a blob of exactly
// that length decodes to a payload with empty ciphertext (zero-length
// plaintext is a valid input to the cipher).
func DecodeEncryptedBlob(blob []byte) (EncryptedPayload, error) {
	if len(blob) < NonceSize+TagSize {
		return EncryptedPayload{}, fmt.Errorf("%w: %d bytes, want at least %d", ErrBlobTooShort, len(blob), NonceSize+TagSize)
	}

	return EncryptedPayload{
		Nonce:      blob[:NonceSize],
		Tag:        blob[NonceSize : NonceSize+TagSize],
		Ciphertext: blob[NonceSize+TagSize:],
	}, nil
}
