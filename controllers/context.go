package controllers

import (
	"github.com/gin-gonic/gin"

	"storeratings/middleware"
	"storeratings/models"
)

// currentUserID returns the authenticated caller's id from the context.
func currentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(middleware.CtxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// currentUserRole returns the authenticated caller's role from the context.
func currentUserRole(c *gin.Context) (models.Role, bool) {
	v, ok := c.Get(middleware.CtxUserRole)
	if !ok {
		return "", false
	}
	role, ok := v.(models.Role)
	return role, ok
}

// currentToken returns the raw bearer token the caller presented.
func currentToken(c *gin.Context) (string, bool) {
	v, ok := c.Get(middleware.CtxToken)
	if !ok {
		return "", false
	}
	token, ok := v.(string)
	return token, ok
}
