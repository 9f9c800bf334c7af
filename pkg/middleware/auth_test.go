package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jpviradiya/iTube/internal/entity"
	"github.com/jpviradiya/iTube/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubUserLoader struct {
	users map[string]*entity.User
}

func (s *stubUserLoader) GetByID(_ context.Context, id string) (*entity.User, error) {
	if user, ok := s.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newAuthTestRouter(t *testing.T) (*gin.Engine, *jwt.Service) {
	t.Helper()
	jwtService := jwt.NewService("test-secret-key", 15*time.Minute, 240*time.Hour)
	loader := &stubUserLoader{users: map[string]*entity.User{
		"user-123": {ID: "user-123", Username: "alice", Password: "hashed", RefreshToken: "secret"},
	}}

	r := gin.New()
	r.GET("/protected", AuthMiddleware(jwtService, loader), func(c *gin.Context) {
		user := c.MustGet("user").(*entity.User)
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id"), "username": user.Username})
	})
	r.GET("/public", OptionalAuthMiddleware(jwtService, loader), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	return r, jwtService
}

func TestAuthMiddleware_ValidBearerToken(t *testing.T) {
	r, jwtService := newAuthTestRouter(t)

	token, err := jwtService.GenerateToken("user-123", jwt.AccessToken)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-123")
	assert.Contains(t, w.Body.String(), "alice")
}

func TestAuthMiddleware_ValidCookie(t *testing.T) {
	r, jwtService := newAuthTestRouter(t)

	token, err := jwtService.GenerateToken("user-123", jwt.AccessToken)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-123")
}

func TestAuthMiddleware_MissingCredentials(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unauthorized request")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid access token")
}

func TestAuthMiddleware_RefreshTokenRejected(t *testing.T) {
	r, jwtService := newAuthTestRouter(t)

	// Only access tokens open protected routes.
	token, err := jwtService.GenerateToken("user-123", jwt.RefreshToken)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_DeletedUserRejected(t *testing.T) {
	r, jwtService := newAuthTestRouter(t)

	// A signed token is not enough; the account behind it must still
	// exist.
	token, err := jwtService.GenerateToken("user-gone", jwt.AccessToken)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid access token")
}

func TestAuthMiddleware_AttachedUserIsSanitized(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key", 15*time.Minute, 240*time.Hour)
	loader := &stubUserLoader{users: map[string]*entity.User{
		"user-123": {ID: "user-123", Username: "alice", Password: "hashed", RefreshToken: "secret"},
	}}

	var attached *entity.User
	r := gin.New()
	r.GET("/protected", AuthMiddleware(jwtService, loader), func(c *gin.Context) {
		attached = c.MustGet("user").(*entity.User)
		c.Status(http.StatusOK)
	})

	token, err := jwtService.GenerateToken("user-123", jwt.AccessToken)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, attached)
	assert.Empty(t, attached.Password)
	assert.Empty(t, attached.RefreshToken)
}

func TestOptionalAuthMiddleware_Anonymous(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/public", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":""`)
}

func TestOptionalAuthMiddleware_Authenticated(t *testing.T) {
	r, jwtService := newAuthTestRouter(t)

	token, err := jwtService.GenerateToken("user-123", jwt.AccessToken)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/public", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-123")
}

func TestOptionalAuthMiddleware_DeletedUserStaysAnonymous(t *testing.T) {
	r, jwtService := newAuthTestRouter(t)

	token, err := jwtService.GenerateToken("user-gone", jwt.AccessToken)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/public", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":""`)
}

func TestOptionalAuthMiddleware_GarbageTokenIgnored(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("Authorization", "Bearer junk")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":""`)
}
