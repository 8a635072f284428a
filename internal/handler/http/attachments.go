package http

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-attach-keeper/internal/logger"
	"github.com/MKhiriev/go-attach-keeper/models"
)

// maxUploadBytes caps a single multipart upload. Anything larger is refused
// before it reaches the blob store.
const maxUploadBytes = 64 << 20

func (h *Handler) uploadAttachment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	blob, meta, err := parseUploadRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadAttachment").Msg("invalid upload request")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	// The only verification a key-less server can do: recompute the digest
	// of the ciphertext it received and compare against the declared one.
	if !h.checksums.Verify(blob, meta.ChecksumEncrypted) {
		log.Warn().
			Str("func", "*Handler.uploadAttachment").
			Str("filename", meta.FileName).
			Msg("declared ciphertext checksum does not match uploaded blob")
		http.Error(w, ErrChecksumMismatch.Error(), statusFromError(ErrChecksumMismatch))
		return
	}
	if meta.EncryptedSize != int64(len(blob)) {
		http.Error(w, ErrSizeMismatch.Error(), statusFromError(ErrSizeMismatch))
		return
	}

	record := models.AttachmentRecord{
		ID:        h.uuids.Generate(),
		Meta:      meta,
		CreatedAt: time.Now().UTC(),
	}

	if err = h.storages.BlobFileStorage.SaveBlob(r.Context(), record.ID, blob); err != nil {
		log.Err(err).Str("func", "*Handler.uploadAttachment").Msg("error saving blob")
		http.Error(w, "error saving attachment", statusFromError(err))
		return
	}

	if err = h.storages.AttachmentRepository.SaveAttachment(r.Context(), record); err != nil {
		// keep blob store and metadata in sync
		if cleanupErr := h.storages.BlobFileStorage.DeleteBlob(r.Context(), record.ID); cleanupErr != nil {
			log.Err(cleanupErr).
				Str("func", "*Handler.uploadAttachment").
				Str("attachment_id", record.ID).
				Msg("failed to remove orphaned blob")
		}

		log.Err(err).Str("func", "*Handler.uploadAttachment").Msg("error saving attachment record")
		http.Error(w, "error saving attachment", statusFromError(err))
		return
	}

	log.Info().
		Str("attachment_id", record.ID).
		Str("filename", record.Meta.FileName).
		Int64("encrypted_size", record.Meta.EncryptedSize).
		Msg("attachment stored")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"id": record.ID})
}

func (h *Handler) downloadAttachment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	record, err := h.storages.AttachmentRepository.GetAttachment(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.downloadAttachment").Str("attachment_id", id).Msg("error loading attachment record")
		http.Error(w, "attachment not found", statusFromError(err))
		return
	}

	blob, err := h.storages.BlobFileStorage.LoadBlob(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.downloadAttachment").Str("attachment_id", id).Msg("error loading blob")
		http.Error(w, "attachment not found", statusFromError(err))
		return
	}

	// Refuse to serve a blob that no longer matches its stored digest; the
	// client would reject it anyway, this just fails earlier and loudly.
	if !h.checksums.Verify(blob, record.Meta.ChecksumEncrypted) {
		log.Error().
			Str("func", "*Handler.downloadAttachment").
			Str("attachment_id", id).
			Msg("stored blob does not match its recorded checksum")
		http.Error(w, "attachment corrupted in storage", http.StatusInternalServerError)
		return
	}

	pkg := models.DownloadPackage{
		EncryptedBlob: base64.StdEncoding.EncodeToString(blob),
		Metadata:      record.Meta,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pkg)
}

func (h *Handler) listAttachments(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	records, err := h.storages.AttachmentRepository.GetAllAttachments(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listAttachments").Msg("error listing attachments")
		http.Error(w, "error listing attachments", statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

func (h *Handler) deleteAttachment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	if err := h.storages.AttachmentRepository.DeleteAttachment(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteAttachment").Str("attachment_id", id).Msg("error deleting attachment record")
		http.Error(w, "error deleting attachment", statusFromError(err))
		return
	}

	if err := h.storages.BlobFileStorage.DeleteBlob(r.Context(), id); err != nil && !isNotFound(err) {
		log.Err(err).Str("func", "*Handler.deleteAttachment").Str("attachment_id", id).Msg("error deleting blob")
		http.Error(w, "error deleting attachment", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func isNotFound(err error) bool {
	return statusFromError(err) == http.StatusNotFound
}

// parseUploadRequest pulls the encrypted blob and its metadata out of a
// multipart upload request.
func parseUploadRequest(r *http.Request) ([]byte, models.AttachmentMeta, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, models.AttachmentMeta{}, fmt.Errorf("%w: %w", ErrMissingFilePart, err)
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, models.AttachmentMeta{}, fmt.Errorf("%w: %w", ErrMissingFilePart, err)
	}
	defer file.Close()

	blob, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return nil, models.AttachmentMeta{}, fmt.Errorf("reading file part: %w", err)
	}

	metaJSON := r.FormValue("metadata")
	if metaJSON == "" {
		return nil, models.AttachmentMeta{}, ErrMissingMetadata
	}

	var meta models.AttachmentMeta
	if err = json.Unmarshal([]byte(metaJSON), &meta); err != nil {
		return nil, models.AttachmentMeta{}, fmt.Errorf("%w: %w", ErrInvalidMetadata, err)
	}

	if meta.FileName == "" || meta.Checksum == "" || meta.ChecksumEncrypted == "" {
		return nil, models.AttachmentMeta{}, fmt.Errorf("%w: filename and both checksums are required", ErrInvalidMetadata)
	}

	return blob, meta, nil
}
