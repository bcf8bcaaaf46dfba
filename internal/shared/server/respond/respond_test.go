package respond

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"piterface-backend/internal/shared/telemetry"
)

func TestOKWritesPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", func(c *gin.Context) {
		OK(c, gin.H{"value": 7})
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := resp.Body.String(); got != `{"value":7}` {
		t.Fatalf("unexpected body: %s", got)
	}
}

func TestErrorWritesEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	restore := telemetry.SetOutput(io.Discard)
	defer restore()

	router := gin.New()
	router.GET("/", func(c *gin.Context) {
		Error(c, http.StatusConflict, "powered_off", "device is powered off", nil)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.Code)
	}
	var payload ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if payload.Error.Code != "powered_off" {
		t.Fatalf("unexpected code: %q", payload.Error.Code)
	}
	if payload.Error.Message == "" {
		t.Fatal("expected a message")
	}
}
