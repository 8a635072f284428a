package service

import (
	"errors"

	"github.com/MKhiriev/go-attach-keeper/internal/crypto"
	"github.com/MKhiriev/go-attach-keeper/models"
)

// mapCryptoError classifies an error coming out of the key chain. Length
// problems are validation failures caught before cryptographic work; a failed
// authenticated decryption is a crypto failure.
func mapCryptoError(err error) *models.Failure {
	switch {
	case errors.Is(err, crypto.ErrInvalidKeySize):
		return models.NewValidationFailure("key", err)
	case errors.Is(err, crypto.ErrInvalidNonceSize):
		return models.NewValidationFailure("nonce", err)
	case errors.Is(err, crypto.ErrInvalidTagSize):
		return models.NewValidationFailure("tag", err)
	default:
		return models.NewCryptoFailure(err)
	}
}

// mapTransportError classifies an error coming out of the transport
// collaborator. Transport problems propagate unchanged in kind — they are
// never promoted to crypto or integrity failures.
func mapTransportError(err error) *models.Failure {
	return models.NewTransportFailure(err)
}
