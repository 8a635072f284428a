package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-attach-keeper/models"
)

// HTTPTransportConfig configures the resty-based transport.
type HTTPTransportConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpAttachmentTransport struct {
	client *resty.Client
}

// NewHTTPAttachmentTransport constructs an [AttachmentTransport] speaking the
// blob server's REST API. Zero-value config fields fall back to localhost and
// a 15-second timeout.
func NewHTTPAttachmentTransport(cfg HTTPTransportConfig) AttachmentTransport {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpAttachmentTransport{client: cli}
}

func (h *httpAttachmentTransport) UploadAttachment(ctx context.Context, pkg models.UploadPackage) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFileReader("file", "blob", bytes.NewReader(pkg.File)).
		SetMultipartFormData(map[string]string{"metadata": pkg.Metadata}).
		Post("/api/attachments")
	if err != nil {
		return "", fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var out struct {
		ID string `json:"id"`
	}
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if out.ID == "" {
		return "", fmt.Errorf("upload response carries no blob id")
	}

	return out.ID, nil
}

func (h *httpAttachmentTransport) DownloadAttachment(ctx context.Context, id string) (models.DownloadPackage, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/attachments/" + id)
	if err != nil {
		return models.DownloadPackage{}, fmt.Errorf("download request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DownloadPackage{}, err
	}

	var pkg models.DownloadPackage
	if err = json.Unmarshal(resp.Body(), &pkg); err != nil {
		return models.DownloadPackage{}, fmt.Errorf("decode download response: %w", err)
	}

	return pkg, nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrAttachmentNotFound, body)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrServerRejected, body)
	}

	if resp.StatusCode() >= http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d: %s", ErrServerUnavailable, resp.StatusCode(), body)
	}

	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
