package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-attach-keeper/models"
)

func TestUploadAttachment_SendsMultipartPackage(t *testing.T) {
	blob := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	metaJSON := `{"filename":"a.txt","type":"text/plain","size":4,"encryptedSize":32,"checksum":"aa","checksumEncrypted":"bb"}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/attachments", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, metaJSON, r.FormValue("metadata"))

		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		got, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, blob, got)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"blob-123"}`))
	}))
	defer srv.Close()

	transport := NewHTTPAttachmentTransport(HTTPTransportConfig{BaseURL: srv.URL})

	id, err := transport.UploadAttachment(context.Background(), models.UploadPackage{
		File:     blob,
		Metadata: metaJSON,
	})
	require.NoError(t, err)
	assert.Equal(t, "blob-123", id)
}

func TestUploadAttachment_ServerRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "ciphertext checksum mismatch", http.StatusBadRequest)
	}))
	defer srv.Close()

	transport := NewHTTPAttachmentTransport(HTTPTransportConfig{BaseURL: srv.URL})

	_, err := transport.UploadAttachment(context.Background(), models.UploadPackage{File: []byte{1}, Metadata: "{}"})
	require.ErrorIs(t, err, ErrServerRejected)
}

func TestDownloadAttachment_ReturnsPackage(t *testing.T) {
	want := models.DownloadPackage{
		EncryptedBlob: base64.StdEncoding.EncodeToString([]byte("opaque")),
		Metadata: models.AttachmentMeta{
			FileName:          "a.txt",
			ContentType:       "text/plain",
			Size:              6,
			EncryptedSize:     34,
			Checksum:          "aa",
			ChecksumEncrypted: "bb",
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/attachments/blob-42", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(want))
	}))
	defer srv.Close()

	transport := NewHTTPAttachmentTransport(HTTPTransportConfig{BaseURL: srv.URL})

	got, err := transport.DownloadAttachment(context.Background(), "blob-42")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDownloadAttachment_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such blob", http.StatusNotFound)
	}))
	defer srv.Close()

	transport := NewHTTPAttachmentTransport(HTTPTransportConfig{BaseURL: srv.URL})

	_, err := transport.DownloadAttachment(context.Background(), "missing")
	require.ErrorIs(t, err, ErrAttachmentNotFound)
}

func TestDownloadAttachment_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "database down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	transport := NewHTTPAttachmentTransport(HTTPTransportConfig{BaseURL: srv.URL})

	_, err := transport.DownloadAttachment(context.Background(), "any-id")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerUnavailable)
}
