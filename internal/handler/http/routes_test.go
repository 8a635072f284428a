package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-attach-keeper/internal/config"
	"github.com/MKhiriev/go-attach-keeper/internal/crypto"
	"github.com/MKhiriev/go-attach-keeper/internal/logger"
	"github.com/MKhiriev/go-attach-keeper/internal/mock"
	"github.com/MKhiriev/go-attach-keeper/internal/store"
	"github.com/MKhiriev/go-attach-keeper/models"
)

// ---- Helper ----

// newTestRouter wires a router over permissive storage mocks so that every
// registered route can be exercised without a database.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := mock.NewMockAttachmentRepository(ctrl)
	repo.EXPECT().GetAllAttachments(gomock.Any()).Return([]models.AttachmentRecord{}, nil).AnyTimes()
	repo.EXPECT().GetAttachment(gomock.Any(), gomock.Any()).Return(models.AttachmentRecord{}, store.ErrAttachmentNotFound).AnyTimes()
	repo.EXPECT().DeleteAttachment(gomock.Any(), gomock.Any()).Return(store.ErrAttachmentNotFound).AnyTimes()

	blobs := mock.NewMockBlobFileStorage(ctrl)
	blobs.EXPECT().LoadBlob(gomock.Any(), gomock.Any()).Return(nil, store.ErrAttachmentNotFound).AnyTimes()
	blobs.EXPECT().DeleteBlob(gomock.Any(), gomock.Any()).Return(store.ErrAttachmentNotFound).AnyTimes()

	storages := &store.Storages{
		AttachmentRepository: repo,
		BlobFileStorage:      blobs,
	}

	h := NewHandler(storages, crypto.NewChecksumService(), config.App{Version: "test-version"}, logger.Nop())
	return h.Init()
}

// ---- All routes are registered ----

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/attachments"},
		{http.MethodGet, "/api/attachments"},
		{http.MethodGet, "/api/attachments/some-id"},
		{http.MethodDelete, "/api/attachments/some-id"},
		{http.MethodGet, "/api/version/"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.NotEqual(t, http.StatusNotFound, rr.Code,
				"route should be registered: %s %s", tt.method, tt.path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

// ---- Unknown routes return 404 ----

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/nonexistent"},
		{http.MethodGet, "/totally/wrong"},
		{http.MethodPost, "/api/attachments/some-id/extra"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

// ---- Wrong method on existing route returns 404 (CheckHTTPMethod) ----

func TestInit_WrongMethod_Returns404NotMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{
			name:   "PUT on /api/attachments (POST/GET only)",
			method: http.MethodPut,
			path:   "/api/attachments",
		},
		{
			name:   "POST on /api/attachments/{id} (GET/DELETE only)",
			method: http.MethodPost,
			path:   "/api/attachments/some-id",
		},
		{
			name:   "POST on /api/version/ (GET only)",
			method: http.MethodPost,
			path:   "/api/version/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusNotFound, rr.Code,
				"CheckHTTPMethod should replace 405 with 404")
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

// ---- X-Trace-ID is always present in the response ----

func TestInit_TraceIDHeader_AlwaysSet(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/attachments", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get("X-Trace-ID"))
}

// ---- Incoming X-Trace-ID is echoed back ----

func TestInit_TraceIDHeader_EchoedFromRequest(t *testing.T) {
	router := newTestRouter(t)
	const customTraceID = "my-custom-trace-id-12345"

	req := httptest.NewRequest(http.MethodGet, "/api/attachments", nil)
	req.Header.Set("X-Trace-ID", customTraceID)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, customTraceID, rr.Header().Get("X-Trace-ID"))
}
