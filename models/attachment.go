// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AttachmentMeta travels alongside the encrypted blob of one attachment.
// It is produced at encrypt time, serialized to JSON for the transport
// collaborator, and re-verified at decrypt time. All fields describe either
// public properties of the file or checksums that the server may recompute
// over data it can see (the ciphertext); nothing in here lets the server
// decrypt anything.
type AttachmentMeta struct {
	// FileName is the original file name. It doubles as the HKDF salt for
	// file-key derivation, so decryption fails outright if it is altered.
	FileName string `json:"filename"`

	// ContentType is the declared MIME type of the plaintext.
	ContentType string `json:"type"`

	// Size is the plaintext length in bytes.
	Size int64 `json:"size"`

	// EncryptedSize is the length of the full wire blob
	// (nonce ‖ tag ‖ ciphertext) in bytes.
	EncryptedSize int64 `json:"encryptedSize"`

	// Checksum is the lowercase hex SHA-256 digest of the plaintext.
	Checksum string `json:"checksum"`

	// ChecksumEncrypted is the lowercase hex SHA-256 digest of the wire blob.
	ChecksumEncrypted string `json:"checksumEncrypted"`
}

// AttachmentFile is a plaintext file on its way into the vault: the input of
// the upload pipeline and the output of the download pipeline.
type AttachmentFile struct {
	// Name is the file name presented to the user.
	Name string

	// ContentType is the MIME type declared for the file.
	ContentType string

	// Data is the plaintext content. Never logged, never persisted by this
	// application; it exists only for the duration of the operation.
	Data []byte
}

// AttachmentRecord is the server-side view of one stored attachment:
// an opaque blob identifier plus the metadata the client uploaded. The server
// persists exactly this — it holds no key material.
type AttachmentRecord struct {
	// ID is the server-assigned blob identifier (UUID).
	ID string `json:"id"`

	// Meta is the metadata as received from the client.
	Meta AttachmentMeta `json:"metadata"`

	// CreatedAt is when the server accepted the upload.
	CreatedAt time.Time `json:"createdAt"`
}
