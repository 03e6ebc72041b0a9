package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"travelbot/internal/auth"
	"travelbot/internal/config"
	"travelbot/internal/middleware"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.AuthConfig{
		JWTSecret:     "test-secret",
		TokenDuration: time.Hour,
		AdminUser:     "admin",
		AdminPassword: "secret123",
	}
	jwtService := auth.NewJWTService(cfg)
	handler := NewAuthHandler(jwtService, cfg, zap.NewNop())

	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api, middleware.AuthMiddleware(jwtService))
	return router
}

func newAuthedRequest(t *testing.T, method, path, token string) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req, httptest.NewRecorder()
}

func TestLoginSuccess(t *testing.T) {
	router := newAuthRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"username": "admin",
		"password": "secret123",
	})

	require.Equal(t, http.StatusOK, w.Code)
	data := dataMap(t, decodeEnvelope(t, w))
	require.NotEmpty(t, data["access_token"])
	require.Equal(t, "admin", data["username"])

	// Cookie httpOnly được set kèm theo
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	require.Equal(t, "access_token", cookies[0].Name)
	require.True(t, cookies[0].HttpOnly)
}

func TestLoginWrongPassword(t *testing.T) {
	router := newAuthRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"username": "admin",
		"password": "sai-mat-khau",
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "INVALID_CREDENTIALS", decodeEnvelope(t, w).Error.Code)
}

func TestLoginMissingFields(t *testing.T) {
	router := newAuthRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", gin.H{"username": "admin"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMeRequiresToken(t *testing.T) {
	router := newAuthRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/auth/me", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeWithBearerToken(t *testing.T) {
	router := newAuthRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"username": "admin",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	token := dataMap(t, decodeEnvelope(t, w))["access_token"].(string)

	req, w2 := newAuthedRequest(t, http.MethodGet, "/api/v1/auth/me", token)
	router.ServeHTTP(w2, req)

	require.Equal(t, http.StatusOK, w2.Code)
	data := dataMap(t, decodeEnvelope(t, w2))
	require.Equal(t, "admin", data["username"])
	require.Equal(t, "admin", data["role"])
}

func TestMeRejectsTamperedToken(t *testing.T) {
	router := newAuthRouter(t)

	req, w := newAuthedRequest(t, http.MethodGet, "/api/v1/auth/me", "khong-phai-jwt")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "INVALID_TOKEN", decodeEnvelope(t, w).Error.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	router := newAuthRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	require.Equal(t, "access_token", cookies[0].Name)
	require.Empty(t, cookies[0].Value)
	require.Negative(t, cookies[0].MaxAge)
}
