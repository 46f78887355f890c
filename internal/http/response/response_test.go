package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestErrorAttachesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "req-42")

	ErrorWithData(c, CodeBadRequest, "invalid", gin.H{"fields": gin.H{"email": "x"}})

	var body struct {
		StatusCode int                    `json:"status_code"`
		Data       map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body failed: %v", err)
	}
	if w.Code != 200 || body.StatusCode != CodeBadRequest {
		t.Fatalf("unexpected status http=%d code=%d", w.Code, body.StatusCode)
	}
	if body.Data["request_id"] != "req-42" || body.Data["fields"] == nil {
		t.Fatalf("unexpected data: %+v", body.Data)
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 21)
	if p.TotalPage != 3 {
		t.Fatalf("want 3 pages got %d", p.TotalPage)
	}
	if NewPagination(1, 0, 5).TotalPage != 0 {
		t.Fatalf("zero page size should yield zero pages")
	}
}
