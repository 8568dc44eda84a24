package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supabase-community/postgrest-go"

	"shop_back_end/internal/database"
)

const adminTestUserID = "b7e2d9a4-3f1c-4a8e-9d6b-2c5f8e1a7d30"

func rolesStub(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	database.Supabase = postgrest.NewClient(srv.URL, "public", map[string]string{})
	require.NoError(t, database.Supabase.ClientError)
}

func callRequireAdmin(t *testing.T, userID string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/admin/order", nil)
	if userID != "" {
		c.Set("user_id", userID)
	}

	RequireAdmin(c)
	return w, c
}

func TestRequireAdminRoleAdmin(t *testing.T) {
	rolesStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `[{"id":"e0c1b2a3-0000-4000-8000-000000000001","user_id":%q,"role":"Admin"}]`, adminTestUserID)
	})

	w, c := callRequireAdmin(t, adminTestUserID)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, c.IsAborted())
}

func TestRequireAdminSansRole(t *testing.T) {
	rolesStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[]`)
	})

	w, c := callRequireAdmin(t, adminTestUserID)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.True(t, c.IsAborted())
}

func TestRequireAdminRoleClient(t *testing.T) {
	rolesStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `[{"id":"e0c1b2a3-0000-4000-8000-000000000002","user_id":%q,"role":"client"}]`, adminTestUserID)
	})

	w, _ := callRequireAdmin(t, adminTestUserID)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// Une erreur de lecture de user_roles vaut refus, jamais autorisation
func TestRequireAdminErreurLecture(t *testing.T) {
	rolesStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		http.Error(w, `{"message":"indisponible"}`, http.StatusInternalServerError)
	})

	w, c := callRequireAdmin(t, adminTestUserID)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.True(t, c.IsAborted())
}

func TestRequireAdminSansUtilisateur(t *testing.T) {
	w, c := callRequireAdmin(t, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.True(t, c.IsAborted())
}
