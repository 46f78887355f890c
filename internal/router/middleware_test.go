package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/geoda-coffee/storefront/internal/constants"
	"github.com/geoda-coffee/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

func TestResolveAllowedOrigin(t *testing.T) {
	got := resolveAllowedOrigin("https://example.com", []string{"*"}, false)
	if got != "*" {
		t.Fatalf("wildcard without credentials should return *, got %s", got)
	}

	got = resolveAllowedOrigin("https://example.com", []string{"*"}, true)
	if got != "https://example.com" {
		t.Fatalf("wildcard with credentials should echo origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://a.example.com", []string{"https://a.example.com", "https://b.example.com"}, false)
	if got != "https://a.example.com" {
		t.Fatalf("allow-list should return matched origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://x.example.com", []string{"https://a.example.com"}, false)
	if got != "" {
		t.Fatalf("unmatched origin should be empty, got %s", got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": getRequestID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) != "req-123" {
		t.Fatalf("response request id want req-123 got %s", w.Header().Get(requestIDHeader))
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["request_id"] != "req-123" {
		t.Fatalf("context request id want req-123 got %s", resp["request_id"])
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w2, req2)
	generated := w2.Header().Get(requestIDHeader)
	if generated == "" {
		t.Fatalf("generated request id should not be empty")
	}
	if resp := strings.TrimSpace(generated); resp == "" {
		t.Fatalf("generated request id should not be blank")
	}
}

type fakeResolver struct {
	claims     *service.UserJWTClaims
	parseErr   error
	sess       service.Session
	resolveErr error
}

func (f *fakeResolver) ParseUserJWT(tokenString string) (*service.UserJWTClaims, error) {
	if f.parseErr != nil {
		return nil, f.parseErr
	}
	return f.claims, nil
}

func (f *fakeResolver) ResolveSession(ctx context.Context, claims *service.UserJWTClaims) (service.Session, error) {
	if f.resolveErr != nil {
		return service.Session{}, f.resolveErr
	}
	return f.sess, nil
}

type envelope struct {
	StatusCode int             `json:"status_code"`
	Msg        string          `json:"msg"`
	Data       json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var resp envelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	return resp
}

func newAuthEngine(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw)
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status_code": 0, "user_id": c.GetUint(constants.CtxKeyUserID)})
	})
	return r
}

func TestUserJWTAuthMiddlewareMissingHeader(t *testing.T) {
	r := newAuthEngine(UserJWTAuthMiddleware(&fakeResolver{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if resp := decodeEnvelope(t, w); resp.StatusCode != 401 {
		t.Fatalf("status_code want 401 got %d", resp.StatusCode)
	}
}

func TestUserJWTAuthMiddlewareRejectsRevoked(t *testing.T) {
	resolver := &fakeResolver{claims: &service.UserJWTClaims{UserID: 7}, resolveErr: service.ErrTokenRevoked}
	r := newAuthEngine(UserJWTAuthMiddleware(resolver))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer token")
	r.ServeHTTP(w, req)

	if resp := decodeEnvelope(t, w); resp.StatusCode != 401 {
		t.Fatalf("status_code want 401 got %d", resp.StatusCode)
	}
}

func TestUserJWTAuthMiddlewareSetsSession(t *testing.T) {
	resolver := &fakeResolver{
		claims: &service.UserJWTClaims{UserID: 7},
		sess:   service.Session{UserID: 7, Email: "kopi@example.com"},
	}
	r := newAuthEngine(UserJWTAuthMiddleware(resolver))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer token")
	r.ServeHTTP(w, req)

	var resp struct {
		StatusCode int  `json:"status_code"`
		UserID     uint `json:"user_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 0 || resp.UserID != 7 {
		t.Fatalf("want authenticated user 7, got code=%d user=%d", resp.StatusCode, resp.UserID)
	}
}

func TestOptionalUserAuthFallsBackToAnonymous(t *testing.T) {
	resolver := &fakeResolver{parseErr: service.ErrTokenInvalid}
	r := newAuthEngine(OptionalUserAuth(resolver))

	for _, header := range []string{"", "Bearer broken", "Basic abc"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		r.ServeHTTP(w, req)
		if !strings.Contains(w.Body.String(), `"user_id":0`) {
			t.Fatalf("header %q should continue anonymously, got %s", header, w.Body.String())
		}
	}
}

func TestLocaleMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(LocaleMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(constants.CtxKeyLocale))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Accept-Language", "en-GB,en;q=0.8")
	r.ServeHTTP(w, req)
	if w.Body.String() != "en-US" {
		t.Fatalf("locale want en-US got %s", w.Body.String())
	}
	if w.Header().Get("Content-Language") != "en-US" {
		t.Fatalf("content-language want en-US got %s", w.Header().Get("Content-Language"))
	}

	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w2.Body.String() != "id-ID" {
		t.Fatalf("default locale want id-ID got %s", w2.Body.String())
	}
}

func TestSessionErrorKey(t *testing.T) {
	cases := map[error]string{
		service.ErrUserDisabled: "error.user_disabled",
		service.ErrTokenRevoked: "error.token_revoked",
		service.ErrTokenInvalid: "error.token_invalid",
	}
	for err, want := range cases {
		if got := sessionErrorKey(err); got != want {
			t.Fatalf("sessionErrorKey(%v) want %s got %s", err, want, got)
		}
	}
}
