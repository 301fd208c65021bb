package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/session"
	appErrors "github.com/arpitagupta-cpu/campus-connect-digital/pkg/errors"
	"github.com/arpitagupta-cpu/campus-connect-digital/pkg/response"
)

// ContextUserKey is the gin context key storing the resolved identity.
const ContextUserKey = "currentUser"

// ContextTokenKey is the gin context key storing the raw session token.
const ContextTokenKey = "sessionToken"

// TokenFromRequest extracts the session token from the session cookie or
// a Bearer Authorization header. Empty string when neither is present.
func TokenFromRequest(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// Authenticate protects routes by requiring a resolvable session token.
// The request never reaches the entity store without one.
func Authenticate(directory session.Directory, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c, cookieName)
		if token == "" {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		identity, err := directory.Resolve(c.Request.Context(), token)
		if err != nil {
			if err == session.ErrInvalid {
				response.Error(c, appErrors.ErrUnauthorized)
			} else {
				response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "session lookup failed"))
			}
			c.Abort()
			return
		}

		c.Set(ContextUserKey, identity)
		c.Set(ContextTokenKey, token)
		c.Next()
	}
}

// CurrentIdentity returns the identity set by Authenticate, or nil.
func CurrentIdentity(c *gin.Context) *session.Identity {
	if v, ok := c.Get(ContextUserKey); ok {
		if identity, ok := v.(*session.Identity); ok {
			return identity
		}
	}
	return nil
}
