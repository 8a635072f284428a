// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport boundary of the attachment pipeline.
//
// The primary abstraction is [AttachmentTransport], which decouples the
// attachment service from the delivery mechanism. The package ships an
// HTTP/REST implementation ([NewHTTPAttachmentTransport]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling. The service layer classifies everything coming out of this
// package as a transport failure — transport problems are never reinterpreted
// as crypto problems.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-attach-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/attachment_transport_mock.go -package=mock

// AttachmentTransport delivers encrypted attachment packages to and from the
// blob server. Implementations move opaque bytes; they perform no
// cryptographic work and must not inspect blob contents.
type AttachmentTransport interface {
	// UploadAttachment sends the upload package (raw blob + metadata JSON)
	// to the server and returns the server-assigned blob identifier.
	// No Content-Type is set on the blob part beyond multipart defaults.
	UploadAttachment(ctx context.Context, pkg models.UploadPackage) (string, error)

	// DownloadAttachment fetches the package for the given blob identifier:
	// the Base64-encoded blob plus its metadata, exactly as stored.
	// Returns [ErrAttachmentNotFound] (wrapped) when the server does not
	// know the identifier.
	DownloadAttachment(ctx context.Context, id string) (models.DownloadPackage, error)
}
