package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestFail_EchoesRequestID(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Writer.Header().Set("X-Request-ID", "req-123")

	Fail(c, http.StatusNotFound, ErrCodeNotFound, "resource not found")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", w.Code)
	}
	resp := decodeErrorResponse(t, w)
	if resp.RequestID != "req-123" {
		t.Fatalf("request_id = %q; want req-123", resp.RequestID)
	}
	if resp.Code != ErrCodeNotFound || resp.Message != "resource not found" {
		t.Fatalf("envelope = %+v", resp)
	}
}

func TestFail_ServerErrorLogsAndRenders(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Fail(c, http.StatusInternalServerError, ErrCodeInternal, "Something went wrong! Please try again.")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500", w.Code)
	}
	resp := decodeErrorResponse(t, w)
	if resp.RequestID != "" {
		t.Fatalf("request_id should be omitted when unset, got %q", resp.RequestID)
	}
	if resp.Message != "Something went wrong! Please try again." {
		t.Fatalf("message = %q", resp.Message)
	}
	if !c.IsAborted() {
		t.Fatalf("fail must abort the request")
	}
}
