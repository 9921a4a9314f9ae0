package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func guardedRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	admin := r.Group("/api/admin")
	admin.Use(AdminAuth(secret))
	admin.GET("/models", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"models": []string{}})
	})
	return r
}

func signToken(t *testing.T, secret, role string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "admin@example.com",
		"role": role,
		"exp":  exp.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func TestAdminAuthRejectsMissingToken(t *testing.T) {
	r := guardedRouter(testSecret)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/admin/models", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAdminAuthRejectsMalformedHeader(t *testing.T) {
	r := guardedRouter(testSecret)

	for _, header := range []string{"Token abc", "Bearer", "Bearer a b"} {
		req := httptest.NewRequest("GET", "/api/admin/models", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: status = %d, want 401", header, w.Code)
		}
	}
}

func TestAdminAuthRejectsExpiredToken(t *testing.T) {
	r := guardedRouter(testSecret)

	req := httptest.NewRequest("GET", "/api/admin/models", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "admin", time.Now().Add(-time.Hour)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAdminAuthRejectsWrongSecret(t *testing.T) {
	r := guardedRouter(testSecret)

	req := httptest.NewRequest("GET", "/api/admin/models", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", "admin", time.Now().Add(time.Hour)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAdminAuthForbidsNonAdminRole(t *testing.T) {
	r := guardedRouter(testSecret)

	req := httptest.NewRequest("GET", "/api/admin/models", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "customer", time.Now().Add(time.Hour)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestAdminAuthAllowsValidAdmin(t *testing.T) {
	r := guardedRouter(testSecret)

	req := httptest.NewRequest("GET", "/api/admin/models", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "admin", time.Now().Add(time.Hour)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}
