package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudo-disha/digital-library/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(jwtService *auth.JWTService, role string) *gin.Engine {
	router := gin.New()
	m := NewAuthMiddleware(jwtService)

	group := router.Group("/admin", m.JWTAuth(), m.RoleRequired(role))
	group.GET("/profile", func(c *gin.Context) {
		id, _ := SubjectID(c)
		c.JSON(http.StatusOK, gin.H{"id": id})
	})
	return router
}

func TestJWTAuthMissingHeader(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", TokenExpiry: time.Hour})
	router := protectedRouter(jwtService, auth.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/admin/profile", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthValidToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", TokenExpiry: time.Hour})
	router := protectedRouter(jwtService, auth.RoleAdmin)

	token, _, err := jwtService.GenerateToken(7, "root", auth.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":7`)
}

func TestJWTAuthWrongRole(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", TokenExpiry: time.Hour})
	router := protectedRouter(jwtService, auth.RoleAdmin)

	token, _, err := jwtService.GenerateToken(3, "S-1001", auth.RoleStudent)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestJWTAuthBadSignature(t *testing.T) {
	signer := auth.NewJWTService(auth.JWTConfig{SecretKey: "other-secret", TokenExpiry: time.Hour})
	verifier := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", TokenExpiry: time.Hour})
	router := protectedRouter(verifier, auth.RoleAdmin)

	token, _, err := signer.GenerateToken(7, "root", auth.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
