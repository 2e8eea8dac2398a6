package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"real-api/internal/config"
)

func TestCORSHeaders(t *testing.T) {
	cfg := config.CORSConfig{
		AllowOrigin:  "*",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
		AllowHeaders: "Content-Type, Authorization",
	}

	headers := CORSHeaders(cfg)
	expected := map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET, POST, PUT, DELETE, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type, Authorization",
	}
	if len(headers) != len(expected) {
		t.Fatalf("Expected %d headers, got %v", len(expected), headers)
	}
	for key, value := range expected {
		if headers[key] != value {
			t.Errorf("%s = %q, want %q", key, headers[key], value)
		}
	}

	headers["Access-Control-Allow-Origin"] = "https://changed.example"
	if CORSHeaders(cfg)["Access-Control-Allow-Origin"] != "*" {
		t.Error("CORSHeaders must return an independent copy")
	}
}

func TestRequestIDAndStructuredLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, hook := test.NewNullLogger()

	router := gin.New()
	router.Use(RequestID())
	router.Use(StructuredLogger(logger))
	router.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	router.GET("/bad", func(c *gin.Context) { c.String(http.StatusBadRequest, "bad") })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok?x=1", nil))

	requestID := rec.Header().Get(HeaderRequestID)
	if requestID == "" {
		t.Fatal("Expected generated request ID")
	}

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("Expected a log entry")
	}
	if entry.Level != logrus.InfoLevel {
		t.Errorf("Level = %s, want info", entry.Level)
	}
	if entry.Data["request_id"] != requestID {
		t.Errorf("request_id = %v, want %s", entry.Data["request_id"], requestID)
	}
	if entry.Data["query"] != "x=1" {
		t.Errorf("query = %v", entry.Data["query"])
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bad", nil))
	if hook.LastEntry().Level != logrus.WarnLevel {
		t.Errorf("Level = %s, want warning", hook.LastEntry().Level)
	}
}
