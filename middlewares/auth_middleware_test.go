package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sorin-PSP/EatWise-sub000/models"
	"github.com/Sorin-PSP/EatWise-sub000/utils"

	"github.com/gin-gonic/gin"
)

const testSecret = "test-secret"

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	authed := r.Group("/", AuthMiddleware([]byte(testSecret)))
	authed.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetUint("userID"),
			"email":   c.GetString("email"),
			"admin":   IsAdmin(c),
		})
	})
	admin := authed.Group("/admin", RequireAdmin())
	admin.GET("/users", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func issueToken(t *testing.T, role string) string {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)
	token, err := utils.GenerateJWT(7, "user@example.com", role)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	return token
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := testRouter(t)
	token := issueToken(t, models.RoleUser)

	if w := get(r, "/me", token); w.Code != http.StatusOK {
		t.Errorf("valid token: status %d, body %s", w.Code, w.Body)
	}
	if w := get(r, "/me", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status %d", w.Code)
	}
	if w := get(r, "/me", "not.a.token"); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status %d", w.Code)
	}
}

func TestAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	r := testRouter(t)

	t.Setenv("JWT_SECRET", "some-other-secret")
	token, err := utils.GenerateJWT(7, "user@example.com", models.RoleUser)
	if err != nil {
		t.Fatal(err)
	}

	if w := get(r, "/me", token); w.Code != http.StatusUnauthorized {
		t.Errorf("foreign signature accepted: status %d", w.Code)
	}
}

// Admin access rides on the role claim alone; the email is irrelevant.
func TestRequireAdmin(t *testing.T) {
	r := testRouter(t)

	if w := get(r, "/admin/users", issueToken(t, models.RoleAdmin)); w.Code != http.StatusOK {
		t.Errorf("admin role: status %d, body %s", w.Code, w.Body)
	}
	if w := get(r, "/admin/users", issueToken(t, models.RoleUser)); w.Code != http.StatusForbidden {
		t.Errorf("user role: status %d", w.Code)
	}
}
