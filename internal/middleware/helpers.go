// internal/middleware/helpers.go
package middleware

import "github.com/gin-gonic/gin"

// AdminID returns the authenticated admin's ID from the request context.
// Only valid behind AuthMiddleware.
func AdminID(c *gin.Context) int64 {
	v, _ := c.Get(CtxAdminID)
	id, _ := v.(int64)
	return id
}

// AdminEmail returns the authenticated admin's email.
func AdminEmail(c *gin.Context) string {
	v, _ := c.Get(CtxAdminEmail)
	email, _ := v.(string)
	return email
}

// AdminName returns the authenticated admin's display name.
func AdminName(c *gin.Context) string {
	v, _ := c.Get(CtxAdminName)
	name, _ := v.(string)
	return name
}

// TokenHash returns the hash of the bearer token that authorized the
// request. It identifies the caller's own session row.
func TokenHash(c *gin.Context) string {
	v, _ := c.Get(CtxTokenHash)
	hash, _ := v.(string)
	return hash
}
