package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/georgekarlr/beauty-salon-sub000/internal/domain/enum"
	"github.com/georgekarlr/beauty-salon-sub000/internal/presentation/http/middleware"
)

// GetAccountID extracts the account context from the Gin context
func GetAccountID(c *gin.Context) string {
	return middleware.GetAccountID(c)
}

// sessionID parses the checkout session id path parameter
func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// itemKind parses the cart item kind path parameter
func itemKind(c *gin.Context) (enum.ItemKind, bool) {
	kind, err := enum.ParseItemKind(c.Param("kind"))
	if err != nil {
		return "", false
	}
	return kind, true
}
