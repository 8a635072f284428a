package adapter

import "errors"

var (
	// ErrAttachmentNotFound is returned when the server has no blob for the
	// requested identifier.
	ErrAttachmentNotFound = errors.New("attachment not found")

	// ErrServerRejected is returned when the server refuses an upload,
	// e.g. because the ciphertext checksum did not match the received bytes.
	ErrServerRejected = errors.New("server rejected the attachment")

	// ErrServerUnavailable is returned on 5xx responses.
	ErrServerUnavailable = errors.New("server unavailable")
)
