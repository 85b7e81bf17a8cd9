package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"campus-portal/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) { response.OK(c, "pong") })
	r.POST("/echo", func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			_ = c.Error(err)
			return
		}
		response.OK(c, body)
	})
	return r
}

// ── CORS ──

func TestCORS_AllowedOrigin(t *testing.T) {
	r := newEngine(CORS([]string{"http://localhost:8081/"}))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:8081")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:8081" {
		t.Fatalf("Allow-Origin 期望回写来源，实际 %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "" {
		t.Fatalf("不应下发 Allow-Credentials，实际 %q", got)
	}
	if !strings.Contains(w.Header().Get("Access-Control-Expose-Headers"), "Content-Disposition") {
		t.Fatal("Expose-Headers 应包含 Content-Disposition")
	}
}

func TestCORS_UnknownOrigin(t *testing.T) {
	r := newEngine(CORS([]string{"http://localhost:8081"}))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("未知来源不应放行，实际 %q", got)
	}
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际 %d", w.Code)
	}
}

func TestCORS_Wildcard(t *testing.T) {
	r := newEngine(CORS([]string{"*"}))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "exp://192.168.1.5:8081")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "exp://192.168.1.5:8081" {
		t.Fatalf("通配模式应回写来源，实际 %q", got)
	}
}

func TestCORS_Preflight(t *testing.T) {
	r := newEngine(CORS([]string{"*"}))

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:19006")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("预检请求期望 204，实际 %d", w.Code)
	}
}

// ── RequestID ──

func TestRequestID_Generated(t *testing.T) {
	r := newEngine(RequestID())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if len(w.Header().Get("X-Request-ID")) != 36 {
		t.Fatalf("期望生成 UUID，实际 %q", w.Header().Get("X-Request-ID"))
	}
}

func TestRequestID_Reused(t *testing.T) {
	r := newEngine(RequestID())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("期望沿用请求头，实际 %q", got)
	}
}

func TestRequestID_TooLong(t *testing.T) {
	r := newEngine(RequestID())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", strings.Repeat("x", requestIDMaxLen+1))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); len(got) != 36 {
		t.Fatalf("超长 ID 应重新生成，实际 %q", got)
	}
}

// ── BodyLimit ──

func TestBodyLimit_TooLarge(t *testing.T) {
	r := newEngine(BodyLimit(16))

	body := `{"note":"` + strings.Repeat("a", 64) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("期望 413，实际 %d", w.Code)
	}
	var resp response.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Code != 10005 {
		t.Fatalf("期望业务码 10005，实际 %d", resp.Code)
	}
}

func TestBodyLimit_Disabled(t *testing.T) {
	r := newEngine(BodyLimit(0))

	body := bytes.NewBufferString(`{"note":"` + strings.Repeat("a", 1024) + `"}`)
	req := httptest.NewRequest(http.MethodPost, "/echo", io.NopCloser(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("不限制时期望 200，实际 %d", w.Code)
	}
}

// ── RateLimit / SecurityHeaders ──

func TestRateLimit_NilClientPasses(t *testing.T) {
	r := newEngine(RateLimit(nil, 1, time.Minute))

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("未启用 Redis 时应放行，第 %d 次返回 %d", i+1, w.Code)
		}
	}
}

func TestSecurityHeaders(t *testing.T) {
	r := newEngine(SecurityHeaders())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatal("缺少 X-Content-Type-Options")
	}
	if !strings.Contains(w.Header().Get("Content-Security-Policy"), "default-src 'none'") {
		t.Fatalf("CSP 不符合预期：%q", w.Header().Get("Content-Security-Policy"))
	}
}
