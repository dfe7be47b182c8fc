package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/aungmyatthu259369349/market-link-logistics/internal/apierror"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/service"
)

const (
	ClaimsKey = "claims"
	// TokenKey holds the raw bearer token so logout can revoke it.
	TokenKey = "raw_token"
)

// JWTAuth validates the Bearer token on every protected route. When redis is
// configured, tokens revoked by logout are rejected until they expire.
func JWTAuth(secret string, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("authentication required"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims, err := service.ParseToken(secret, tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("invalid or expired token"))
			return
		}

		if rdb != nil {
			if n, err := rdb.Exists(c.Request.Context(), service.DenyKey(tokenStr)).Result(); err == nil && n > 0 {
				c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("token has been revoked"))
				return
			}
		}

		c.Set(ClaimsKey, claims)
		c.Set(TokenKey, tokenStr)
		c.Next()
	}
}

// RequireRole rejects requests whose JWT role is not in the allowed list.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		claims, ok := c.MustGet(ClaimsKey).(*service.Claims)
		if !ok || !allowed[claims.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("insufficient permissions"))
			return
		}
		c.Next()
	}
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
func GetClaims(c *gin.Context) *service.Claims {
	claims, _ := c.MustGet(ClaimsKey).(*service.Claims)
	return claims
}
