package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminTokenHeader carries the session token issued by the admin login.
const AdminTokenHeader = "X-Admin-Token"

// Sessions tracks the admin session tokens issued during this process's
// lifetime. The gate controls which requests reach the admin surface, the
// same way the original storefront hid its admin pages; it is not a security
// boundary and must not be treated as one.
type Sessions struct {
	mu     sync.Mutex
	tokens map[string]struct{}
}

// NewSessions creates an empty session set.
func NewSessions() *Sessions {
	return &Sessions{tokens: map[string]struct{}{}}
}

// Issue mints a new session token.
func (s *Sessions) Issue() string {
	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = struct{}{}
	s.mu.Unlock()
	return token
}

// Valid reports whether the token belongs to an active session.
func (s *Sessions) Valid(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tokens[token]
	return ok
}

// Drop ends the session for the given token.
func (s *Sessions) Drop(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}

// AdminGate rejects requests without an active admin session token.
func AdminGate(sessions *Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(AdminTokenHeader)
		if token == "" || !sessions.Valid(token) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "admin session required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
