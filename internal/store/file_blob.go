package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-attach-keeper/internal/logger"
)

// ErrInvalidBlobID is returned when a blob identifier contains path
// separators or otherwise cannot be used as a file name.
var ErrInvalidBlobID = errors.New("invalid blob id")

// blobFileStorage is the filesystem implementation of [BlobFileStorage].
// Each encrypted blob lives in its own file named after the attachment ID
// inside a single flat directory. The blobs are ciphertext from the server's
// point of view, so file permissions are the only server-side protection
// that matters here.
type blobFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewBlobFileStorage constructs a [BlobFileStorage] rooted at dir, creating
// the directory if needed.
func NewBlobFileStorage(dir string, log *logger.Logger) (BlobFileStorage, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("error creating blob directory: %w", err)
	}

	return &blobFileStorage{
		dir:    dir,
		logger: log,
	}, nil
}

// SaveBlob writes one encrypted blob. The write goes through a temp file and
// a rename so a crash never leaves a half-written blob under the final name.
func (s *blobFileStorage) SaveBlob(ctx context.Context, id string, blob []byte) error {
	log := logger.FromContext(ctx)

	path, err := s.blobPath(id)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "blob-*")
	if err != nil {
		log.Err(err).
			Str("func", "blobFileStorage.SaveBlob").
			Str("attachment_id", id).
			Msg("failed to create temp blob file")
		return fmt.Errorf("error writing blob: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(blob); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing blob: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error writing blob: %w", err)
	}

	if err = os.Chmod(tmp.Name(), 0o600); err != nil {
		return fmt.Errorf("error writing blob: %w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		log.Err(err).
			Str("func", "blobFileStorage.SaveBlob").
			Str("attachment_id", id).
			Msg("failed to move blob into place")
		return fmt.Errorf("error writing blob: %w", err)
	}

	log.Debug().
		Str("func", "blobFileStorage.SaveBlob").
		Str("attachment_id", id).
		Int("size", len(blob)).
		Msg("blob saved")

	return nil
}

// LoadBlob reads one encrypted blob. A missing file maps to
// [ErrAttachmentNotFound].
func (s *blobFileStorage) LoadBlob(ctx context.Context, id string) ([]byte, error) {
	path, err := s.blobPath(id)
	if err != nil {
		return nil, err
	}

	blob, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrAttachmentNotFound, id)
		}
		return nil, fmt.Errorf("error reading blob: %w", err)
	}

	return blob, nil
}

// DeleteBlob removes one encrypted blob. A missing file maps to
// [ErrAttachmentNotFound].
func (s *blobFileStorage) DeleteBlob(ctx context.Context, id string) error {
	path, err := s.blobPath(id)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrAttachmentNotFound, id)
		}
		return fmt.Errorf("error deleting blob: %w", err)
	}

	return nil
}

// blobPath resolves the file path for id. IDs are server-generated UUIDs, but
// the check stays: anything that could escape the blob directory is rejected.
func (s *blobFileStorage) blobPath(id string) (string, error) {
	if id == "" || id == "." || id == ".." ||
		strings.ContainsAny(id, `/\`) || filepath.Base(id) != id {
		return "", fmt.Errorf("%w: %q", ErrInvalidBlobID, id)
	}

	return filepath.Join(s.dir, id), nil
}
