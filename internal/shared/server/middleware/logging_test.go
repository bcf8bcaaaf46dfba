package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"piterface-backend/internal/shared/telemetry"
)

func TestLoggingIncludesRequiredFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	restore := telemetry.SetOutput(&buf)
	defer restore()

	router := gin.New()
	router.Use(RequestID(), Logging())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) == 0 || lines[0] == "" {
		t.Fatal("expected log output")
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &payload); err != nil {
		t.Fatalf("decode log json: %v", err)
	}

	for _, key := range []string{"request_id", "method", "path", "status", "duration_ms"} {
		if _, ok := payload[key]; !ok {
			t.Fatalf("missing log field: %s", key)
		}
	}
	if payload["path"] != "/test" {
		t.Fatalf("unexpected path: %v", payload["path"])
	}
	if payload["status"] != float64(http.StatusOK) {
		t.Fatalf("unexpected status: %v", payload["status"])
	}
}

func TestLoggingSkipsPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	restore := telemetry.SetOutput(&buf)
	defer restore()

	router := gin.New()
	router.Use(Logging())
	router.OPTIONS("/test", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if buf.Len() != 0 {
		t.Fatalf("expected no log output for OPTIONS, got %q", buf.String())
	}
}
