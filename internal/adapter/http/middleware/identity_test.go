package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequireRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(roles ...string) *gin.Engine {
		r := gin.New()
		r.Use(Identity())
		r.GET("/protected", RequireRoles(roles...), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(ContextUserID)})
		})
		return r
	}

	t.Run("missing identity", func(t *testing.T) {
		r := newRouter("finance_manager")

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong role", func(t *testing.T) {
		r := newRouter("finance_manager", "admin")

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("X-User-Id", "adv-1")
		req.Header.Set("X-User-Role", "service_advisor")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("allowed role case insensitive", func(t *testing.T) {
		r := newRouter("finance_manager")

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("X-User-Id", "mgr-1")
		req.Header.Set("X-User-Role", "Finance_Manager")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}
