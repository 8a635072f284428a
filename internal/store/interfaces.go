package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-attach-keeper/models"
)

// AttachmentRepository persists attachment metadata records. Implementations
// never see plaintext or key material; everything stored here is either
// public file properties or checksums over ciphertext.
type AttachmentRepository interface {
	SaveAttachment(ctx context.Context, record models.AttachmentRecord) error
	GetAttachment(ctx context.Context, id string) (models.AttachmentRecord, error)
	GetAllAttachments(ctx context.Context) ([]models.AttachmentRecord, error)
	DeleteAttachment(ctx context.Context, id string) error
}

// BlobFileStorage persists the opaque encrypted blobs on the filesystem,
// keyed by the server-assigned attachment ID.
type BlobFileStorage interface {
	SaveBlob(ctx context.Context, id string, blob []byte) error
	LoadBlob(ctx context.Context, id string) ([]byte, error)
	DeleteBlob(ctx context.Context, id string) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
