package utils

import "github.com/gin-gonic/gin"

// CurrentUserID returns the authenticated user's id stored in the gin
// context by the auth middlewares. Both middlewares normalize the claim
// to uint before storing it. Zero means the request carried no identity.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get("userId"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// CurrentRole returns the role claim stored alongside the user id.
func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
