package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autorent_portal/platform/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

type testJWTConfig struct{}

func (testJWTConfig) GetJWTAccessSecret() string { return testSecret }

func signToken(t *testing.T, sub, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func newTestEngine(middleware ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware...)
	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, GetIdentity(c).UserID())
	})
	return engine
}

func doRequest(engine *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func TestRequestID_AssignsAndEchoesHeader(t *testing.T) {
	engine := newTestEngine(RequestID(), RequestLogger(logger.New("development")))

	got := doRequest(engine, nil)
	if got.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected a generated request ID header")
	}

	got = doRequest(engine, map[string]string{"X-Request-ID": "fixed-id"})
	if id := got.Header().Get("X-Request-ID"); id != "fixed-id" {
		t.Fatalf("expected the provided request ID echoed, got %q", id)
	}
}

func TestAuthOptional_AnonymousPassesThrough(t *testing.T) {
	engine := newTestEngine(AuthOptional(testJWTConfig{}))

	got := doRequest(engine, nil)
	if got.Code != http.StatusOK {
		t.Fatalf("anonymous request must pass, got %d", got.Code)
	}
	if got.Body.String() != "" {
		t.Fatalf("anonymous request must carry no user ID, got %q", got.Body.String())
	}
}

func TestAuthOptional_InvalidTokenRejected(t *testing.T) {
	engine := newTestEngine(AuthOptional(testJWTConfig{}))

	got := doRequest(engine, map[string]string{"Authorization": "Bearer not-a-token"})
	if got.Code != http.StatusUnauthorized {
		t.Fatalf("a present but invalid token must be rejected, got %d", got.Code)
	}
}

func TestAuthOptional_ValidTokenSetsIdentity(t *testing.T) {
	engine := newTestEngine(AuthOptional(testJWTConfig{}))

	token := signToken(t, "user-7", RoleHost)
	got := doRequest(engine, map[string]string{"Authorization": "Bearer " + token})
	if got.Code != http.StatusOK {
		t.Fatalf("valid token must pass, got %d", got.Code)
	}
	if got.Body.String() != "user-7" {
		t.Fatalf("expected the token subject as user ID, got %q", got.Body.String())
	}
}

func TestAuthRequired_MissingTokenRejected(t *testing.T) {
	engine := newTestEngine(AuthRequired(testJWTConfig{}))

	got := doRequest(engine, nil)
	if got.Code != http.StatusUnauthorized {
		t.Fatalf("missing token must be rejected, got %d", got.Code)
	}
}

func TestRequireRole_GatesByRoleClaim(t *testing.T) {
	engine := newTestEngine(AuthRequired(testJWTConfig{}), RequireRole(RoleHost))

	guest := signToken(t, "user-1", RoleGuest)
	got := doRequest(engine, map[string]string{"Authorization": "Bearer " + guest})
	if got.Code != http.StatusForbidden {
		t.Fatalf("guest must not reach host routes, got %d", got.Code)
	}

	host := signToken(t, "user-2", RoleHost)
	got = doRequest(engine, map[string]string{"Authorization": "Bearer " + host})
	if got.Code != http.StatusOK {
		t.Fatalf("host must reach host routes, got %d", got.Code)
	}
}
