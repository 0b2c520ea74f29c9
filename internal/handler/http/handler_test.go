package http

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-user-records/internal/config"
	"github.com/MKhiriev/go-user-records/internal/logger"
	"github.com/MKhiriev/go-user-records/internal/mock"
	"github.com/MKhiriev/go-user-records/internal/service"
	"github.com/MKhiriev/go-user-records/models"
)

type testServices struct {
	users   *mock.MockUserService
	auth    *mock.MockAuthService
	appInfo *mock.MockAppInfoService
}

// newTestHandler builds a Handler with a nop logger and no services.
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop(), requestTimeout: config.DefaultRequestTimeout}
}

func newTestHandlerWithMocks(t *testing.T) (*Handler, testServices) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := testServices{
		users:   mock.NewMockUserService(ctrl),
		auth:    mock.NewMockAuthService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		UserService:    mocks.users,
		AuthService:    mocks.auth,
		AppInfoService: mocks.appInfo,
	}, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())

	return h, mocks
}

func serve(t *testing.T, h *Handler, method, target string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func decodeResponse[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

func storedUser() models.User {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return models.User{
		UserID:       7,
		Name:         "Ada",
		Email:        "ada@example.com",
		Password:     "$2a$10$abcdefghijklmnopqrstuuTZyFqJv5C6Ow5u7ZkYqZ5nq6s0b2e1a",
		Role:         models.RoleProgrammer,
		Verification: "verify-token",
		CreatedAt:    created,
		UpdatedAt:    created,
	}
}
