package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArowuTest/lotto-tracker/internal/config"
	"github.com/ArowuTest/lotto-tracker/internal/utils"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "middleware-secret"
	cfg.JWT.ExpiresIn = 60
	cfg.Server.AllowedHosts = []string{"localhost:3000"}
	return cfg
}

func newRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware(), LoggerMiddleware(), CORSMiddleware(cfg))
	r.GET("/open", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })
	r.GET("/closed", JWTAuthMiddleware(cfg), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRequestIDMiddleware(t *testing.T) {
	r := newRouter(testConfig())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))
	require.Equal(t, http.StatusOK, w.Code)
	_, err := uuid.Parse(w.Header().Get("X-Request-ID"))
	assert.NoError(t, err)
	assert.Equal(t, w.Header().Get("X-Request-ID"), w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("X-Request-ID", "given-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "given-id", w.Header().Get("X-Request-ID"))
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	r := newRouter(testConfig())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/open", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestJWTAuthMiddleware(t *testing.T) {
	cfg := testConfig()
	r := newRouter(cfg)

	valid, err := utils.GenerateJWT("operator", utils.OperatorRole, cfg)
	require.NoError(t, err)
	wrongRole, err := utils.GenerateJWT("someone", "viewer", cfg)
	require.NoError(t, err)
	expiredCfg := testConfig()
	expiredCfg.JWT.ExpiresIn = -60
	expired, err := utils.GenerateJWT("operator", utils.OperatorRole, expiredCfg)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer abc", http.StatusUnauthorized},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong role", "Bearer " + wrongRole, http.StatusForbidden},
		{"valid token", "Bearer " + valid, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/closed", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestJWTAuthMiddleware_NoSecretRejects(t *testing.T) {
	cfg := testConfig()
	token, err := utils.GenerateJWT("operator", utils.OperatorRole, cfg)
	require.NoError(t, err)

	cfg.JWT.Secret = ""
	r := newRouter(cfg)
	req := httptest.NewRequest(http.MethodGet, "/closed", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
