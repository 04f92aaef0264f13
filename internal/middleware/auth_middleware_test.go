package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanish/hostelhub/internal/pkg/auth"
)

func newTestRouter(t *testing.T, exp time.Duration) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
	})
	m := NewAuthMiddleware(jwtService)

	router := gin.New()
	router.GET("/student-only", m.StudentAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"roll_no": c.GetString(ContextRollNo)})
	})
	router.GET("/warden-only", m.WardenAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"warden_id": c.GetString(ContextWardenID)})
	})
	router.GET("/support-only", m.SupportAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"d_name": c.GetString(ContextDName)})
	})
	return router, jwtService
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestStudentAuth(t *testing.T) {
	router, jwtService := newTestRouter(t, time.Hour)

	t.Run("MissingHeader", func(t *testing.T) {
		rec := doRequest(router, "/student-only", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("BadPrefix", func(t *testing.T) {
		token, err := jwtService.IssueStudentToken("2110110123")
		require.NoError(t, err)
		rec := doRequest(router, "/student-only", token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ValidToken", func(t *testing.T) {
		token, err := jwtService.IssueStudentToken("2110110123")
		require.NoError(t, err)
		rec := doRequest(router, "/student-only", "Bearer "+token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "2110110123")
	})

	t.Run("WardenTokenRejected", func(t *testing.T) {
		token, err := jwtService.IssueWardenToken("W101")
		require.NoError(t, err)
		rec := doRequest(router, "/student-only", "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		rec := doRequest(router, "/student-only", "Bearer not.a.token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestWardenAndSupportAuth(t *testing.T) {
	router, jwtService := newTestRouter(t, time.Hour)

	t.Run("WardenToken", func(t *testing.T) {
		token, err := jwtService.IssueWardenToken("W101")
		require.NoError(t, err)
		rec := doRequest(router, "/warden-only", "Bearer "+token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "W101")
	})

	t.Run("SupportToken", func(t *testing.T) {
		token, err := jwtService.IssueSupportToken("Maintenance")
		require.NoError(t, err)
		rec := doRequest(router, "/support-only", "Bearer "+token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Maintenance")
	})

	t.Run("CrossRoleRejected", func(t *testing.T) {
		token, err := jwtService.IssueSupportToken("Maintenance")
		require.NoError(t, err)
		rec := doRequest(router, "/warden-only", "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestExpiredTokenRejected(t *testing.T) {
	router, jwtService := newTestRouter(t, -time.Minute)

	token, err := jwtService.IssueStudentToken("2110110123")
	require.NoError(t, err)
	rec := doRequest(router, "/student-only", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "expired")
}
