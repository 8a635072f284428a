package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-attach-keeper/internal/config"
	"github.com/MKhiriev/go-attach-keeper/internal/logger"
)

type Storages struct {
	AttachmentRepository AttachmentRepository
	BlobFileStorage      BlobFileStorage
}

// NewStorages connects the configured database, runs pending migrations, and
// wires the metadata repository together with the blob file store.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	switch cfg.DB.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("error running migrations: %w", err)
	}

	blobs, err := NewBlobFileStorage(cfg.Files.BinaryDataDir, log)
	if err != nil {
		return nil, fmt.Errorf("error initializing blob storage: %w", err)
	}

	return &Storages{
		AttachmentRepository: NewAttachmentRepository(db, log),
		BlobFileStorage:      blobs,
	}, nil
}
