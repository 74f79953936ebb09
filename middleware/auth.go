package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"carmarket/net/resp"
	"carmarket/structs"
)

// UserKey is the gin context key the authenticated user is stored under.
const UserKey = "current_user"

// UserResolver resolves a bearer token to the account it belongs to.
type UserResolver interface {
	CurrentUser(ctx context.Context, token string) (*structs.UserRead, error)
}

// Auth extracts the bearer token, resolves the user and stores it in the
// gin context. Any failure aborts with 401 and a WWW-Authenticate challenge.
func Auth(resolver UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			unauthorized(c, "missing or malformed authorization header")
			return
		}

		user, err := resolver.CurrentUser(c.Request.Context(), parts[1])
		if err != nil {
			unauthorized(c, "invalid or expired token")
			return
		}
		c.Set(UserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by Auth, or nil when absent.
func CurrentUser(c *gin.Context) *structs.UserRead {
	v, ok := c.Get(UserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*structs.UserRead)
	return user
}

func unauthorized(c *gin.Context, message string) {
	c.Writer.Header().Set("WWW-Authenticate", "Bearer")
	resp.Fail(c.Writer, resp.UnAuthorized(message))
	c.Abort()
}
