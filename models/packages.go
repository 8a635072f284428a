// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UploadPackage is the outbound boundary contract of the upload pipeline:
// the raw wire blob plus the metadata JSON string handed to the transport
// collaborator. The core sets no Content-Type and performs no HTTP work —
// packaging bytes is where its responsibility ends.
type UploadPackage struct {
	// File is the raw nonce ‖ tag ‖ ciphertext blob.
	File []byte

	// Metadata is the JSON-serialized [AttachmentMeta].
	Metadata string
}

// DownloadPackage is the inbound boundary contract of the download pipeline,
// as delivered by the transport collaborator.
type DownloadPackage struct {
	// EncryptedBlob is the standard-Base64 encoding of the wire blob.
	EncryptedBlob string `json:"encryptedBlob"`

	// Metadata describes the attachment and carries both checksums.
	Metadata AttachmentMeta `json:"metadata"`
}
