package middleware

import (
	"net/http"
	"strings"

	"availit-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Rule grants or denies anonymous access to a group of routes. Pattern is an
// exact path, or a prefix ending in "/*" that matches everything below it.
// An empty Method matches all methods. When Role is set, RequireAuth is
// implied and the authenticated user must hold that role.
type Rule struct {
	Method      string
	Pattern     string
	RequireAuth bool
	Role        string
}

// Policy is an ordered access-rule list evaluated top to bottom; the first
// matching rule wins. Requests matching no rule fall through to DefaultAllow.
type Policy struct {
	Rules        []Rule
	DefaultAllow bool
}

func (r Rule) matches(method, path string) bool {
	if r.Method != "" && r.Method != method {
		return false
	}
	if prefix, ok := strings.CutSuffix(r.Pattern, "/*"); ok {
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	return path == r.Pattern
}

// Enforce applies the policy to each request, using the identity attached by
// Identify. Preflight requests are never blocked; CORS answers them.
func (p *Policy) Enforce() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		for _, rule := range p.Rules {
			if !rule.matches(c.Request.Method, c.Request.URL.Path) {
				continue
			}
			if rule.RequireAuth || rule.Role != "" {
				if _, authenticated := c.Get(ContextUsername); !authenticated {
					utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
					c.Abort()
					return
				}
				if rule.Role != "" && c.GetString(ContextRole) != rule.Role {
					utils.ErrorResponse(c, http.StatusForbidden, "Insufficient role")
					c.Abort()
					return
				}
			}
			c.Next()
			return
		}

		if !p.DefaultAllow {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}
