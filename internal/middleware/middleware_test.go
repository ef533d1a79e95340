package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/auth"
	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTokens() *auth.TokenService {
	return auth.NewTokenService("0123456789abcdef0123456789abcdef", "issuer", "audience", time.Hour)
}

func issue(t *testing.T, tokens *auth.TokenService, role string) string {
	t.Helper()
	token, _, err := tokens.Issue(&domain.User{UserID: 7, Username: "u-" + role, Email: role + "@example.com", Role: role})
	require.NoError(t, err)
	return token
}

func TestAuthorizerRequire(t *testing.T) {
	tokens := newTokens()
	authz := NewAuthorizer(tokens, quietLogger())

	router := gin.New()
	router.GET("/any", authz.Require(), func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		require.True(t, ok)
		c.String(http.StatusOK, claims.Username)
	})
	router.GET("/admin", authz.Require(domain.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	other := auth.NewTokenService("ffffffffffffffffffffffffffffffff", "issuer", "audience", time.Hour)

	tests := []struct {
		name   string
		path   string
		header string
		status int
	}{
		{"missing header", "/any", "", http.StatusUnauthorized},
		{"wrong scheme", "/any", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "/any", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"foreign signature", "/any", "Bearer " + issue(t, other, domain.RoleUser), http.StatusUnauthorized},
		{"user on open route", "/any", "Bearer " + issue(t, tokens, domain.RoleUser), http.StatusOK},
		{"lowercase scheme", "/any", "bearer " + issue(t, tokens, domain.RoleUser), http.StatusOK},
		{"user on admin route", "/admin", "Bearer " + issue(t, tokens, domain.RoleUser), http.StatusForbidden},
		{"admin on admin route", "/admin", "Bearer " + issue(t, tokens, domain.RoleAdmin), http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status >= 400 {
				assert.Contains(t, rec.Body.String(), `"status":"Fail"`)
			}
		})
	}
}

func TestRequestIDAndLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	router := gin.New()
	router.Use(RequestID(), RequestLogger(logger))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := rec.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Contains(t, buf.String(), `"request_id":"`+generated+`"`)
	assert.Contains(t, buf.String(), `"level":"warning"`)
	assert.Contains(t, buf.String(), `"status_code":418`)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"http://localhost:5173"}))
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
