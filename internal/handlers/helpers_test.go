package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"fintrack/internal/validator"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.Register()
	os.Exit(m.Run())
}

// noopAudit satisfies AuditServicer for handler tests.
type noopAudit struct{}

func (noopAudit) Record(userID uint, action, resourceType string, resourceID uint, ipAddress string) {
}

// injectUserID simulates the auth middleware for a fixed user.
func injectUserID(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

// doRequest performs a request against the router and records the response.
func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// parseJSON unmarshals the recorded response body into out.
func parseJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to parse response body %q: %v", w.Body.String(), err)
	}
}

// assertErrorCode verifies the standard error body: top-level detail and code.
func assertErrorCode(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	if w.Code != status {
		t.Fatalf("expected status %d, got %d (body %s)", status, w.Code, w.Body.String())
	}

	var body struct {
		Detail string `json:"detail"`
		Code   string `json:"code"`
	}
	parseJSON(t, w, &body)
	if body.Code != code {
		t.Fatalf("expected error code %s, got %s", code, body.Code)
	}
	if body.Detail == "" {
		t.Error("expected non-empty top-level detail")
	}
}

func TestFormatDateUsesUTC(t *testing.T) {
	stored := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	// The same instant viewed from a zone west of UTC is still March 15.
	west := stored.In(time.FixedZone("WEST", -7*60*60))
	if got := formatDate(west); got != "2026-03-15" {
		t.Errorf("expected 2026-03-15, got %s", got)
	}
}

func TestParseFlexibleTime(t *testing.T) {
	got, err := parseFlexibleTime("2026-03-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Format("2006-01-02") != "2026-03-15" {
		t.Errorf("unexpected parsed date %v", got)
	}

	got, err = parseFlexibleTime("2026-03-15T10:30:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Hour() != 10 {
		t.Errorf("expected RFC 3339 time preserved, got %v", got)
	}

	if _, err = parseFlexibleTime("15/03/2026"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("expected status %d, got %d (body %s)", status, w.Code, w.Body.String())
	}
}
