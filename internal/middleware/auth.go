package middleware

import (
	"net/http"
	"strings"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const claimsKey = "claims"

type TokenValidator interface {
	Validate(raw string) (*auth.Claims, error)
}

// Authorizer checks bearer tokens and the role required by each route group.
type Authorizer struct {
	tokens TokenValidator
	log    *logrus.Logger
}

func NewAuthorizer(tokens TokenValidator, log *logrus.Logger) *Authorizer {
	return &Authorizer{tokens: tokens, log: log}
}

// Require lets a request through when it carries a valid token whose role is
// one of roles. With no roles any authenticated user passes.
func (a *Authorizer) Require(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			a.log.Warn("Middleware: Authorization header is missing")
			abort(c, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			a.log.Warn("Middleware: Invalid Authorization header format")
			abort(c, http.StatusUnauthorized, "Invalid Authorization header format")
			return
		}

		claims, err := a.tokens.Validate(parts[1])
		if err != nil {
			a.log.Warnf("Middleware: Rejected token: %v", err)
			abort(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		if len(roles) > 0 && !hasRole(claims.Role, roles) {
			a.log.Warnf("Middleware: User %s with role %s denied, requires %v", claims.Username, claims.Role, roles)
			abort(c, http.StatusForbidden, "Insufficient permissions")
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

func hasRole(role string, allowed []string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// ClaimsFromContext returns the claims stored by Require.
func ClaimsFromContext(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"status": "Fail", "message": message})
}
