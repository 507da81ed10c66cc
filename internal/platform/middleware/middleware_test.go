package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hospadmin/hospadmin/internal/platform/session"
)

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestRequestID_Generated(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := RequestID()(okHandler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rid := rec.Header().Get(RequestIDHeader)
	if rid == "" {
		t.Fatal("response is missing the request ID header")
	}
	if _, err := uuid.Parse(rid); err != nil {
		t.Errorf("generated ID should be a UUID, got %q", rid)
	}
	if c.Get("request_id") != rid {
		t.Error("request ID not stored on the context")
	}
}

func TestRequestID_PreservesCallerID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "caller-supplied")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := RequestID()(okHandler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Header().Get(RequestIDHeader) != "caller-supplied" {
		t.Error("caller-supplied request ID was replaced")
	}
}

func TestRecovery_PanicBecomesGenericError(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	panicking := func(echo.Context) error { panic("boom") }
	err := Recovery(logger)(panicking)(c)

	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %v", err)
	}
	if httpErr.Message != "حدث خطأ غير متوقع" {
		t.Errorf("panic must surface the generic message, got %v", httpErr.Message)
	}
	if !strings.Contains(buf.String(), "panic recovered") || !strings.Contains(buf.String(), "boom") {
		t.Error("panic not logged with its value")
	}
}

func TestLogger_TagsSessionAccount(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/hospitals/doctors", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	user := &session.User{ID: uuid.New(), Role: session.RoleHospital}
	handler := func(c echo.Context) error {
		c.SetRequest(c.Request().WithContext(session.WithUser(c.Request().Context(), user)))
		return c.NoContent(http.StatusOK)
	}
	if err := Logger(logger)(handler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	line := buf.String()
	if !strings.Contains(line, user.ID.String()) {
		t.Error("authenticated request not tagged with the account ID")
	}
	if !strings.Contains(line, `"role":"hospital"`) {
		t.Error("authenticated request not tagged with the role")
	}
}

func TestRateLimit_BurstExhaustion(t *testing.T) {
	e := echo.New()
	mw := RateLimit(RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 3})

	doRequest := func() error {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		return mw(okHandler)(c)
	}

	for i := 0; i < 3; i++ {
		if err := doRequest(); err != nil {
			t.Fatalf("request %d within burst should pass: %v", i+1, err)
		}
	}

	err := doRequest()
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429 after burst exhaustion, got %v", err)
	}
}

func TestRateLimit_PerClientBuckets(t *testing.T) {
	e := echo.New()
	mw := RateLimit(RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 1})

	doRequest := func(addr string) error {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		return mw(okHandler)(c)
	}

	if err := doRequest("10.0.0.1:1234"); err != nil {
		t.Fatalf("first client's first request should pass: %v", err)
	}
	if err := doRequest("10.0.0.1:1234"); err == nil {
		t.Error("first client's second request should be limited")
	}
	if err := doRequest("10.0.0.2:1234"); err != nil {
		t.Errorf("a different client must have its own bucket: %v", err)
	}
}

func TestRateLimit_SetsRetryAfter(t *testing.T) {
	e := echo.New()
	mw := RateLimit(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 1})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.3:1234"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := mw(okHandler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.3:1234"
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	if err := mw(okHandler)(c); err == nil {
		t.Fatal("expected a limit error")
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("limited response should carry Retry-After")
	}
}
