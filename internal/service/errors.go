package service

import "errors"

var (
	// ErrMasterKeyNotBase64 is returned when the provisioned master key
	// string is not valid standard Base64.
	ErrMasterKeyNotBase64 = errors.New("master key is not valid base64")

	// ErrCiphertextChecksumMismatch is returned when the received blob does
	// not hash to the declared ciphertext checksum. Detected before any
	// decryption work is spent.
	ErrCiphertextChecksumMismatch = errors.New("ciphertext checksum mismatch")

	// ErrPlaintextChecksumMismatch is returned when the decrypted bytes do
	// not hash to the declared plaintext checksum, even though the cipher
	// authenticated. The decrypted bytes are discarded in that case.
	ErrPlaintextChecksumMismatch = errors.New("plaintext checksum mismatch")

	// ErrMissingChecksum is returned when metadata arrives without one of
	// its checksums. Verification is fail-closed: absence is treated as
	// tampering, not as permission to skip the check.
	ErrMissingChecksum = errors.New("checksum missing from metadata")

	// ErrDeclaredSizeMismatch is returned when a size declared in metadata
	// disagrees with the actual byte count observed locally.
	ErrDeclaredSizeMismatch = errors.New("declared size mismatch")
)
