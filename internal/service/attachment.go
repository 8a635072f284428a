// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-attach-keeper/internal/adapter"
	"github.com/MKhiriev/go-attach-keeper/internal/crypto"
	"github.com/MKhiriev/go-attach-keeper/internal/logger"
	"github.com/MKhiriev/go-attach-keeper/models"
)

// attachmentService is the private implementation of [AttachmentService].
type attachmentService struct {
	keyChain  crypto.KeyChainService
	checksums crypto.ChecksumService
	transport adapter.AttachmentTransport
	logger    *logger.Logger
}

// NewAttachmentService constructs an [AttachmentService] from its
// collaborators. transport may be nil for callers that only need the pure
// Pack/Unpack pipelines; Upload and Download require it.
func NewAttachmentService(
	keyChain crypto.KeyChainService,
	checksums crypto.ChecksumService,
	transport adapter.AttachmentTransport,
	log *logger.Logger,
) AttachmentService {
	return &attachmentService{
		keyChain:  keyChain,
		checksums: checksums,
		transport: transport,
		logger:    log,
	}
}

// ImportMasterKeyBase64 implements [AttachmentService].
func (s *attachmentService) ImportMasterKeyBase64(encoded string) (crypto.MasterKey, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return crypto.MasterKey{}, models.NewValidationFailure("masterKey", fmt.Errorf("%w: %w", ErrMasterKeyNotBase64, err))
	}

	key, err := s.keyChain.ImportMasterKey(raw)
	if err != nil {
		return crypto.MasterKey{}, models.NewValidationFailure("masterKey", err)
	}

	return key, nil
}

// Pack implements [AttachmentService]. Pipeline: derive → encrypt →
// checksum(plaintext) → checksum(nonce ‖ tag ‖ ciphertext) → package.
func (s *attachmentService) Pack(ctx context.Context, key crypto.MasterKey, file models.AttachmentFile) (models.UploadPackage, error) {
	tr := newTransfer("pack", file.Name, logger.FromContext(ctx))
	tr.to(stateEncoding)

	fileKey, err := s.keyChain.DeriveFileKey(key, file.Name)
	if err != nil {
		return models.UploadPackage{}, s.fail(tr, mapCryptoError(err))
	}

	payload, err := s.keyChain.Encrypt(file.Data, fileKey)
	if err != nil {
		return models.UploadPackage{}, s.fail(tr, mapCryptoError(err))
	}

	tr.to(stateVerifying)

	blob := payload.Encode()
	meta := models.AttachmentMeta{
		FileName:          file.Name,
		ContentType:       file.ContentType,
		Size:              int64(len(file.Data)),
		EncryptedSize:     int64(len(blob)),
		Checksum:          s.checksums.Calculate(file.Data),
		ChecksumEncrypted: s.checksums.Calculate(blob),
	}

	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return models.UploadPackage{}, s.fail(tr, models.NewValidationFailure("metadata", fmt.Errorf("marshal metadata: %w", err)))
	}

	tr.to(stateSuccess)
	s.logger.Debug().
		Str("filename", meta.FileName).
		Int64("size", meta.Size).
		Int64("encrypted_size", meta.EncryptedSize).
		Str("checksum", meta.Checksum).
		Msg("attachment packed")

	return models.UploadPackage{File: blob, Metadata: string(metaJSON)}, nil
}

// PackAll implements [AttachmentService]. Each file is packed in its own
// goroutine; operations share no mutable state, so no lock is needed beyond
// the result slice indexing by position.
func (s *attachmentService) PackAll(ctx context.Context, key crypto.MasterKey, files []models.AttachmentFile) ([]models.UploadPackage, error) {
	packages := make([]models.UploadPackage, len(files))
	errs := make([]error, len(files))

	var wg sync.WaitGroup
	for i, file := range files {
		wg.Add(1)
		go func(i int, file models.AttachmentFile) {
			defer wg.Done()
			packages[i], errs[i] = s.Pack(ctx, key, file)
		}(i, file)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return packages, nil
}

// Unpack implements [AttachmentService]. The ciphertext checksum is verified
// before decryption: it is cheap and catches transport corruption before any
// cryptographic effort. Verification is fail-closed — metadata without a
// checksum is treated as tampered.
func (s *attachmentService) Unpack(ctx context.Context, key crypto.MasterKey, pkg models.DownloadPackage) (models.AttachmentFile, error) {
	tr := newTransfer("unpack", pkg.Metadata.FileName, logger.FromContext(ctx))
	tr.to(stateDecoding)

	blob, err := base64.StdEncoding.DecodeString(pkg.EncryptedBlob)
	if err != nil {
		return models.AttachmentFile{}, s.fail(tr, models.NewValidationFailure("encryptedBlob", fmt.Errorf("decode blob: %w", err)))
	}

	tr.to(stateVerifying)

	if pkg.Metadata.ChecksumEncrypted == "" {
		return models.AttachmentFile{}, s.fail(tr, models.NewIntegrityFailure("checksumEncrypted", ErrMissingChecksum))
	}
	if !s.checksums.Verify(blob, pkg.Metadata.ChecksumEncrypted) {
		return models.AttachmentFile{}, s.fail(tr, models.NewIntegrityFailure("checksumEncrypted", ErrCiphertextChecksumMismatch))
	}
	if pkg.Metadata.EncryptedSize != int64(len(blob)) {
		return models.AttachmentFile{}, s.fail(tr, models.NewIntegrityFailure("encryptedSize", ErrDeclaredSizeMismatch))
	}

	payload, err := models.DecodeEncryptedBlob(blob)
	if err != nil {
		return models.AttachmentFile{}, s.fail(tr, models.NewValidationFailure("encryptedBlob", err))
	}

	fileKey, err := s.keyChain.DeriveFileKey(key, pkg.Metadata.FileName)
	if err != nil {
		return models.AttachmentFile{}, s.fail(tr, mapCryptoError(err))
	}

	plaintext, err := s.keyChain.Decrypt(payload, fileKey)
	if err != nil {
		return models.AttachmentFile{}, s.fail(tr, mapCryptoError(err))
	}

	// The plaintext checksum must hold even after a structurally successful
	// decryption. On mismatch the plaintext is discarded, not returned.
	if pkg.Metadata.Checksum == "" {
		return models.AttachmentFile{}, s.fail(tr, models.NewIntegrityFailure("checksum", ErrMissingChecksum))
	}
	if !s.checksums.Verify(plaintext, pkg.Metadata.Checksum) {
		return models.AttachmentFile{}, s.fail(tr, models.NewIntegrityFailure("checksum", ErrPlaintextChecksumMismatch))
	}
	if pkg.Metadata.Size != int64(len(plaintext)) {
		return models.AttachmentFile{}, s.fail(tr, models.NewIntegrityFailure("size", ErrDeclaredSizeMismatch))
	}

	tr.to(stateSuccess)
	s.logger.Debug().
		Str("filename", pkg.Metadata.FileName).
		Int64("size", pkg.Metadata.Size).
		Msg("attachment unpacked")

	return models.AttachmentFile{
		Name:        pkg.Metadata.FileName,
		ContentType: pkg.Metadata.ContentType,
		Data:        plaintext,
	}, nil
}

// Upload implements [AttachmentService].
func (s *attachmentService) Upload(ctx context.Context, key crypto.MasterKey, file models.AttachmentFile) (string, error) {
	pkg, err := s.Pack(ctx, key, file)
	if err != nil {
		return "", err
	}

	id, err := s.transport.UploadAttachment(ctx, pkg)
	if err != nil {
		return "", mapTransportError(err)
	}

	s.logger.Info().
		Str("filename", file.Name).
		Str("blob_id", id).
		Msg("attachment uploaded")

	return id, nil
}

// Download implements [AttachmentService].
func (s *attachmentService) Download(ctx context.Context, key crypto.MasterKey, id string) (models.AttachmentFile, error) {
	pkg, err := s.transport.DownloadAttachment(ctx, id)
	if err != nil {
		return models.AttachmentFile{}, mapTransportError(err)
	}

	file, err := s.Unpack(ctx, key, pkg)
	if err != nil {
		return models.AttachmentFile{}, err
	}

	s.logger.Info().
		Str("filename", file.Name).
		Str("blob_id", id).
		Msg("attachment downloaded")

	return file, nil
}

// fail records the terminal state matching the failure kind and returns the
// failure unchanged.
func (s *attachmentService) fail(tr *transfer, f *models.Failure) error {
	switch f.Kind {
	case models.FailureValidation:
		tr.to(stateValidationFailure)
	case models.FailureCrypto:
		tr.to(stateCryptoFailure)
	case models.FailureIntegrity:
		tr.to(stateIntegrityFailure)
	case models.FailureTransport:
		tr.to(stateTransportFailure)
	}
	return f
}
