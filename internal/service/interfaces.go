package service

import (
	"context"

	"github.com/MKhiriev/go-attach-keeper/internal/crypto"
	"github.com/MKhiriev/go-attach-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/attachment_service_mock.go -package=mock

// AttachmentService is the attachment transfer protocol: it stitches the key
// chain, the cipher, and the checksum service into the upload and download
// pipelines, and talks to the transport collaborator at the outer edge.
//
// Every failure returned by this service is a *[models.Failure] carrying one
// of the closed taxonomy kinds, so callers classify with [models.KindOf]
// instead of probing error shapes.
type AttachmentService interface {
	// ImportMasterKeyBase64 is the inbound master-key provisioning contract:
	// decode the Base64 string a collaborator supplies for a secret record
	// and import the resulting 32 bytes. The decoded material is never
	// logged.
	ImportMasterKeyBase64(encoded string) (crypto.MasterKey, error)

	// Pack runs the upload pipeline for one attachment: derive the file key,
	// encrypt, checksum plaintext and wire blob, and build the upload
	// package for the transport collaborator.
	Pack(ctx context.Context, key crypto.MasterKey, file models.AttachmentFile) (models.UploadPackage, error)

	// PackAll packs several independent attachments concurrently. There is
	// no shared mutable state between operations; results keep the input
	// order. The first failure aborts the batch result.
	PackAll(ctx context.Context, key crypto.MasterKey, files []models.AttachmentFile) ([]models.UploadPackage, error)

	// Unpack runs the download pipeline on a package received from the
	// transport collaborator: verify the ciphertext checksum first, split
	// the blob, decrypt, verify the plaintext checksum, and reconstruct the
	// named file. On any checksum mismatch the decrypted bytes are
	// discarded, never exposed.
	Unpack(ctx context.Context, key crypto.MasterKey, pkg models.DownloadPackage) (models.AttachmentFile, error)

	// Upload packs the attachment and hands the package to the transport.
	// Returns the server-assigned blob identifier.
	Upload(ctx context.Context, key crypto.MasterKey, file models.AttachmentFile) (string, error)

	// Download fetches the package for the given blob identifier and
	// unpacks it.
	Download(ctx context.Context, key crypto.MasterKey, id string) (models.AttachmentFile, error)
}
