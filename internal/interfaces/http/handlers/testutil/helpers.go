package testutil

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/civicdesk/civicdesk/internal/shared/authorization"
	"github.com/civicdesk/civicdesk/internal/shared/constants"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// NewTestContext creates a test gin.Context with the given method, path, and optional body.
func NewTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()

	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		req = httptest.NewRequest(method, path, bytes.NewBufferString(b))
		req.Header.Set("Content-Type", "application/json")
	default:
		jsonBytes, _ := json.Marshal(b)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBytes))
		req.Header.Set("Content-Type", "application/json")
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	return c, w
}

// MultipartFile is one file part for NewMultipartContext.
type MultipartFile struct {
	Field    string
	Filename string
	Content  []byte
}

// NewMultipartContext builds a multipart/form-data request from text fields and files.
func NewMultipartContext(method, path string, fields map[string]string, files ...MultipartFile) (*gin.Context, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		_ = mw.WriteField(k, v)
	}
	for _, f := range files {
		part, _ := mw.CreateFormFile(f.Field, f.Filename)
		_, _ = part.Write(f.Content)
	}
	_ = mw.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	return c, w
}

// SetAuthContext sets the identity keys the auth middleware would set for a citizen.
func SetAuthContext(c *gin.Context, userID uint) {
	c.Set(constants.ContextKeyUserID, userID)
	c.Set(constants.ContextKeySessionID, "test-session-id")
	c.Set(constants.ContextKeyIsStaff, false)
	c.Set(constants.ContextKeyUserRole, string(authorization.RoleCitizen))
}

// SetStaffContext is SetAuthContext for a staff account with the given role.
func SetStaffContext(c *gin.Context, userID uint, role authorization.UserRole) {
	SetAuthContext(c, userID)
	c.Set(constants.ContextKeyIsStaff, true)
	c.Set(constants.ContextKeyUserRole, string(role))
}

// SetURLParam sets a URL parameter on the gin context.
func SetURLParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

// SetQueryParams sets query parameters on the gin context.
func SetQueryParams(c *gin.Context, params map[string]string) {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	c.Request.URL.RawQuery = q.Encode()
}

// ParseResponse parses the JSON response body into the target struct.
func ParseResponse(w *httptest.ResponseRecorder, target interface{}) error {
	return json.Unmarshal(w.Body.Bytes(), target)
}

// APIResponse mirrors utils.APIResponse for test assertions.
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

// ErrorInfo mirrors utils.ErrorInfo for test assertions.
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// NewMockLogger returns a no-op logger.Interface for tests.
func NewMockLogger() logger.Interface {
	return &mockLogger{}
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)           {}
func (m *mockLogger) Info(msg string, args ...any)            {}
func (m *mockLogger) Warn(msg string, args ...any)            {}
func (m *mockLogger) Error(msg string, args ...any)           {}
func (m *mockLogger) With(args ...any) logger.Interface       { return m }
func (m *mockLogger) Named(name string) logger.Interface      { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {}
