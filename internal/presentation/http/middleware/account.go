package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/georgekarlr/beauty-salon-sub000/internal/presentation/http/dto/response"
)

// AccountHeader carries the remote store account the console acts for
const AccountHeader = "X-Account-ID"

// AccountMiddleware copies the account header into the Gin context. The
// account is the remote store's key for sale and refund submissions;
// verifying it is the store's job, not the console's.
func AccountMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("account_id", c.GetHeader(AccountHeader))
		c.Next()
	}
}

// RequireAccount ensures an account context exists
func RequireAccount() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("account_id") == "" {
			response.BadRequest(c, "Account context required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetAccountID retrieves the account ID from the Gin context
func GetAccountID(c *gin.Context) string {
	return c.GetString("account_id")
}
