package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pizza-palace/internal/auth"
	handlershared "github.com/pizza-palace/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testJWTSecret = "test-secret-for-middleware-units-0123456789"

func signTestToken(t *testing.T, userID, email string) string {
	t.Helper()
	claims := auth.JWTClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func newAuthTestRouter(staffDomain string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	authed := r.Group("")
	authed.Use(UserJWTAuthMiddleware(testJWTSecret))
	authed.GET("/whoami", func(c *gin.Context) {
		value, _ := c.Get(handlershared.ContextKeyIdentity)
		identity := value.(auth.Identity)
		c.JSON(http.StatusOK, gin.H{"user_id": identity.UserID, "email": identity.Email})
	})

	staff := r.Group("/staff")
	staff.Use(UserJWTAuthMiddleware(testJWTSecret))
	staff.Use(StaffOnlyMiddleware(staffDomain))
	staff.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func decodeStatusCode(t *testing.T, w *httptest.ResponseRecorder) int {
	t.Helper()
	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	return resp.StatusCode
}

func TestUserJWTAuthMiddlewareExtractsIdentity(t *testing.T) {
	r := newAuthTestRouter("@pizzapalace.com")
	token := signTestToken(t, "user-alice", "alice@example.com")

	w := doRequest(r, "/whoami", token)
	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["user_id"] != "user-alice" || resp["email"] != "alice@example.com" {
		t.Fatalf("unexpected identity: %v", resp)
	}
}

func TestUserJWTAuthMiddlewareRejectsMissingToken(t *testing.T) {
	r := newAuthTestRouter("@pizzapalace.com")

	w := doRequest(r, "/whoami", "")
	if got := decodeStatusCode(t, w); got != 401 {
		t.Fatalf("expected business code 401, got %d", got)
	}
}

func TestUserJWTAuthMiddlewareRejectsBadSignature(t *testing.T) {
	r := newAuthTestRouter("@pizzapalace.com")
	claims := auth.JWTClaims{UserID: "user-alice"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("another-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	w := doRequest(r, "/whoami", token)
	if got := decodeStatusCode(t, w); got != 401 {
		t.Fatalf("expected business code 401, got %d", got)
	}
}

func TestStaffOnlyMiddleware(t *testing.T) {
	r := newAuthTestRouter("@pizzapalace.com")

	w := doRequest(r, "/staff/ping", signTestToken(t, "user-chef", "chef@pizzapalace.com"))
	if got := decodeStatusCode(t, w); got != 0 {
		t.Fatalf("expected staff access allowed, got business code %d", got)
	}

	w = doRequest(r, "/staff/ping", signTestToken(t, "user-alice", "alice@example.com"))
	if got := decodeStatusCode(t, w); got != 403 {
		t.Fatalf("expected business code 403 for customer, got %d", got)
	}

	w = doRequest(r, "/staff/ping", signTestToken(t, "user-eve", "eve@notpizzapalace.com.evil.com"))
	if got := decodeStatusCode(t, w); got != 403 {
		t.Fatalf("expected business code 403 for lookalike domain, got %d", got)
	}
}

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
}
