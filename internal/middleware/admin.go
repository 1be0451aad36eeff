package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"
)

// AdminAuth protects the operator routes with a static bearer token.
func AdminAuth(token string) ginext.HandlerFunc {
	expected := []byte(token)

	return func(c *ginext.Context) {
		got, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(got), expected) != 1 {
			c.Set("error", "unauthorized")
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "unauthorized"})
			return
		}

		c.Next()
	}
}
