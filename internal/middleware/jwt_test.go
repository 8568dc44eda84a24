package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "secret-de-test"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func callAuth(t *testing.T, authHeader string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}

	AuthRequired()(c)
	return w, c
}

func TestAuthRequiredSansHeader(t *testing.T) {
	t.Setenv("SUPABASE_JWT_SECRET", testSecret)

	w, c := callAuth(t, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.True(t, c.IsAborted())
}

func TestAuthRequiredFormatInvalide(t *testing.T) {
	t.Setenv("SUPABASE_JWT_SECRET", testSecret)

	w, _ := callAuth(t, "Basic abc123")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredTokenValide(t *testing.T) {
	t.Setenv("SUPABASE_JWT_SECRET", testSecret)

	userID := "b7e2d9a4-3f1c-4a8e-9d6b-2c5f8e1a7d30"
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":   userID,
		"email": "client@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	w, c := callAuth(t, "Bearer "+token)

	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, c.IsAborted())
	assert.Equal(t, userID, c.GetString("user_id"))
	assert.Equal(t, "client@example.com", c.GetString("email"))
}

func TestAuthRequiredTokenExpire(t *testing.T) {
	t.Setenv("SUPABASE_JWT_SECRET", testSecret)

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "b7e2d9a4-3f1c-4a8e-9d6b-2c5f8e1a7d30",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	w, _ := callAuth(t, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredMauvaisSecret(t *testing.T) {
	t.Setenv("SUPABASE_JWT_SECRET", testSecret)

	token := signToken(t, "autre-secret", jwt.MapClaims{
		"sub": "b7e2d9a4-3f1c-4a8e-9d6b-2c5f8e1a7d30",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	w, _ := callAuth(t, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredSubNonUUID(t *testing.T) {
	t.Setenv("SUPABASE_JWT_SECRET", testSecret)

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "pas-un-uuid",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	w, _ := callAuth(t, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
