package middleware

import (
	"strings"

	"availit-backend/internal/repository"
	"availit-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// Context keys set by Identify when a request carries a valid token.
const (
	ContextUsername = "username"
	ContextRole     = "role"
)

// Identify resolves the bearer token on each request and, when it checks out,
// attaches the user's identity to the request context. A missing, malformed,
// expired or unresolvable token leaves the request anonymous rather than
// rejecting it; whether anonymous requests may proceed is decided by the
// route policy, not here.
func Identify(tokens *service.TokenService, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}
		token := parts[1]

		username, err := tokens.ExtractUsername(token)
		if err != nil {
			c.Next()
			return
		}

		user, err := userRepo.FindUserByUsername(username)
		if err != nil || !tokens.ValidateToken(token, user) {
			c.Next()
			return
		}

		c.Set(ContextUsername, user.Username)
		c.Set(ContextRole, user.Role)
		c.Next()
	}
}
