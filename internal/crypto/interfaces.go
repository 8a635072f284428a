package crypto

import "github.com/MKhiriev/go-attach-keeper/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns all client-side attachment cryptography in the
// Zero-Knowledge scheme. It knows nothing about the network, storage, or the
// secrets CRUD layer; its only job is to manage keys and run the cipher.
//
// Key hierarchy:
//
//	MasterKey = GenerateMasterKey()                 one per secret record
//	FileKey   = DeriveFileKey(MasterKey, fileName)  one per attachment, ephemeral
//	Payload   = Encrypt(plaintext, FileKey)         fresh nonce per call
type KeyChainService interface {
	// GenerateMasterKey produces a fresh random 256-bit master key.
	// Returns an error if the entropy source fails.
	GenerateMasterKey() (MasterKey, error)

	// ExportMasterKey serializes the master key to its raw 32-byte form for
	// persistence or transport by an external collaborator. Returns an error
	// if the key does not hold exactly 32 bytes of material.
	ExportMasterKey(key MasterKey) ([]byte, error)

	// ImportMasterKey reconstructs a master key from its exported form.
	// Returns an error unless raw is exactly 32 bytes. An imported key is
	// indistinguishable in behavior from the key it was exported from.
	ImportMasterKey(raw []byte) (MasterKey, error)

	// DeriveFileKey derives the per-attachment 256-bit key from the master
	// key using HKDF-SHA-256 with the UTF-8 bytes of fileName as salt.
	// Deterministic for a fixed (key, fileName) pair; keys for different
	// file names are cryptographically unrelated. The result is working
	// state only and cannot be exported.
	DeriveFileKey(key MasterKey, fileName string) (FileKey, error)

	// Encrypt encrypts plaintext under the file key with AES-256-GCM,
	// generating a fresh random 12-byte nonce internally. Zero-length
	// plaintext is valid and yields an empty ciphertext with a full 16-byte
	// tag. The caller never supplies a nonce.
	Encrypt(plaintext []byte, key FileKey) (models.EncryptedPayload, error)

	// Decrypt authenticates and decrypts the payload under the file key.
	// Nonce and tag lengths are validated before any cryptographic work.
	// Either the exact original plaintext is returned or an error — there is
	// no third outcome.
	Decrypt(payload models.EncryptedPayload, key FileKey) ([]byte, error)
}

// ChecksumService computes and verifies SHA-256 digests over byte buffers.
// Digests are not secrets; they exist to detect transport corruption and
// tampering, not to authenticate.
type ChecksumService interface {
	// Calculate returns the lowercase 64-character hex SHA-256 digest of data.
	Calculate(data []byte) string

	// Verify recomputes the digest of data and compares it to expected,
	// case-insensitively. A syntactically malformed expected digest yields
	// false, not an error.
	Verify(data []byte, expected string) bool
}
