package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-attach-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	ErrMissingFilePart: http.StatusBadRequest,
	ErrMissingMetadata: http.StatusBadRequest,
	ErrInvalidMetadata: http.StatusBadRequest,

	ErrChecksumMismatch: http.StatusUnprocessableEntity,
	ErrSizeMismatch:     http.StatusUnprocessableEntity,

	store.ErrAttachmentNotFound:    http.StatusNotFound,
	store.ErrDuplicateAttachmentID: http.StatusConflict,
	store.ErrAttachmentNotSaved:    http.StatusInternalServerError,
	store.ErrInvalidBlobID:         http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
