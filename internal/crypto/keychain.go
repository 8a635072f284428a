// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/MKhiriev/go-attach-keeper/models"
)

// MasterKey is the long-lived 256-bit symmetric key of one secret record.
// The raw material is unexported; it leaves this package only through
// [KeyChainService.ExportMasterKey].
type MasterKey struct {
	raw []byte
}

// FileKey is the ephemeral per-attachment key derived from a master key and a
// file name. It is working state, not a storage artifact: there is no export
// path, and instances are discarded after the operation that derived them.
type FileKey struct {
	raw []byte
}

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// entropy supplies random bytes for master keys and nonces. Production
	// code uses the OS CSPRNG; tests substitute a deterministic reader to
	// pin nonces for the fixed-nonce encryption properties.
	entropy io.Reader
}

// NewKeyChainService constructs a [KeyChainService] backed by the OS CSPRNG.
func NewKeyChainService() KeyChainService {
	return &keyChainService{entropy: rand.Reader}
}

// NewKeyChainServiceWithEntropy constructs a [KeyChainService] that draws all
// randomness from entropy instead of the OS CSPRNG. Intended for tests that
// need deterministic nonces; never use it in production wiring.
func NewKeyChainServiceWithEntropy(entropy io.Reader) KeyChainService {
	return &keyChainService{entropy: entropy}
}

// GenerateMasterKey implements [KeyChainService]. It reads 32 random bytes
// from the entropy source.
func (k *keyChainService) GenerateMasterKey() (MasterKey, error) {
	raw := make([]byte, models.MasterKeySize)
	if _, err := io.ReadFull(k.entropy, raw); err != nil {
		return MasterKey{}, fmt.Errorf("%w: %w", ErrEntropyUnavailable, err)
	}
	return MasterKey{raw: raw}, nil
}

// ExportMasterKey implements [KeyChainService]. It returns a copy of the raw
// key material so the caller cannot alias the key's internal state.
func (k *keyChainService) ExportMasterKey(key MasterKey) ([]byte, error) {
	if len(key.raw) != models.MasterKeySize {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidKeySize, len(key.raw), models.MasterKeySize)
	}

	out := make([]byte, models.MasterKeySize)
	copy(out, key.raw)
	return out, nil
}

// ImportMasterKey implements [KeyChainService]. The input is copied, so the
// caller may zero its buffer afterwards.
func (k *keyChainService) ImportMasterKey(raw []byte) (MasterKey, error) {
	if len(raw) != models.MasterKeySize {
		return MasterKey{}, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidKeySize, len(raw), models.MasterKeySize)
	}

	material := make([]byte, models.MasterKeySize)
	copy(material, raw)
	return MasterKey{raw: material}, nil
}

// DeriveFileKey implements [KeyChainService]. HKDF-SHA-256 with the exported
// master key material as IKM and the UTF-8 file name as salt; no info string.
// The file name acts as the domain separator: flipping one byte of it yields
// an unrelated key.
func (k *keyChainService) DeriveFileKey(key MasterKey, fileName string) (FileKey, error) {
	if len(key.raw) != models.MasterKeySize {
		return FileKey{}, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidKeySize, len(key.raw), models.MasterKeySize)
	}

	reader := hkdf.New(sha256.New, key.raw, []byte(fileName), nil)
	derived := make([]byte, models.MasterKeySize)
	if _, err := io.ReadFull(reader, derived); err != nil {
		return FileKey{}, fmt.Errorf("derive file key: %w", err)
	}

	return FileKey{raw: derived}, nil
}

// Encrypt implements [KeyChainService]. The nonce is generated here — callers
// never supply one, which is what rules out nonce reuse by construction. The
// underlying primitive returns ciphertext ‖ tag concatenated; splitting at the
// fixed 16-byte boundary into named fields is this component's contract.
func (k *keyChainService) Encrypt(plaintext []byte, key FileKey) (models.EncryptedPayload, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return models.EncryptedPayload{}, err
	}

	nonce := make([]byte, models.NonceSize)
	if _, err := io.ReadFull(k.entropy, nonce); err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("%w: %w", ErrEntropyUnavailable, err)
	}

	sealed := gcm.Seal(nil, nonce, plaintext, nil)
	cut := len(sealed) - models.TagSize

	return models.EncryptedPayload{
		Ciphertext: sealed[:cut],
		Nonce:      nonce,
		Tag:        sealed[cut:],
	}, nil
}

// Decrypt implements [KeyChainService]. Length validation happens before any
// cryptographic work so malformed input is rejected cheaply and classified as
// a validation problem, not a crypto one.
func (k *keyChainService) Decrypt(payload models.EncryptedPayload, key FileKey) ([]byte, error) {
	if len(payload.Nonce) != models.NonceSize {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidNonceSize, len(payload.Nonce), models.NonceSize)
	}
	if len(payload.Tag) != models.TagSize {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidTagSize, len(payload.Tag), models.TagSize)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	// Reassemble ciphertext ‖ tag, the form gcm.Open expects.
	sealed := make([]byte, 0, len(payload.Ciphertext)+models.TagSize)
	sealed = append(sealed, payload.Ciphertext...)
	sealed = append(sealed, payload.Tag...)

	plaintext, err := gcm.Open(nil, payload.Nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return plaintext, nil
}

// newGCM builds the AES-256-GCM AEAD for a derived file key.
func newGCM(key FileKey) (cipher.AEAD, error) {
	if len(key.raw) != models.MasterKeySize {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidKeySize, len(key.raw), models.MasterKeySize)
	}

	block, err := aes.NewCipher(key.raw)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
