package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("recovery middleware catches panic and returns 500", func(t *testing.T) {
		router := gin.New()
		router.Use(Recovery())

		router.GET("/panic", func(c *gin.Context) {
			panic("test panic")
		})

		req := httptest.NewRequest(http.MethodGet, "/panic", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Internal Server Error")
	})

	t.Run("recovery middleware does not affect normal requests", func(t *testing.T) {
		router := gin.New()
		router.Use(Recovery())

		router.GET("/normal", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "success"})
		})

		req := httptest.NewRequest(http.MethodGet, "/normal", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "success")
	})
}

func TestAdminGate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(sessions *Sessions) *gin.Engine {
		router := gin.New()
		router.GET("/gated", AdminGate(sessions), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "in"})
		})
		return router
	}

	t.Run("missing token is rejected", func(t *testing.T) {
		router := newRouter(NewSessions())

		req := httptest.NewRequest(http.MethodGet, "/gated", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		router := newRouter(NewSessions())

		req := httptest.NewRequest(http.MethodGet, "/gated", nil)
		req.Header.Set(AdminTokenHeader, "not-a-session")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("issued token passes", func(t *testing.T) {
		sessions := NewSessions()
		router := newRouter(sessions)

		req := httptest.NewRequest(http.MethodGet, "/gated", nil)
		req.Header.Set(AdminTokenHeader, sessions.Issue())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("dropped token is rejected again", func(t *testing.T) {
		sessions := NewSessions()
		router := newRouter(sessions)
		token := sessions.Issue()
		sessions.Drop(token)

		req := httptest.NewRequest(http.MethodGet, "/gated", nil)
		req.Header.Set(AdminTokenHeader, token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
