package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storeratings/errors"
)

// Response defines the JSON envelope
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success returns a 200 response
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    1,
		Message: "Success",
		Data:    data,
	})
}

// Created returns a 201 response
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    1,
		Message: "Created",
		Data:    data,
	})
}

// BadRequest returns a 400 response
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code:    0,
		Message: message,
	})
}

// ValidationError returns a 400 response for invalid payloads
func ValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code:    0,
		Message: message,
	})
}

// Unauthorized returns a 401 response
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code:    0,
		Message: "Authentication required",
	})
}

// Forbidden returns a 403 response
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code:    0,
		Message: "Access denied",
	})
}

// NotFound returns a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Not found"
	}
	c.JSON(http.StatusNotFound, Response{
		Code:    0,
		Message: message,
	})
}

// Conflict returns a 409 response
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "Conflict"
	}
	c.JSON(http.StatusConflict, Response{
		Code:    0,
		Message: message,
	})
}

// ServerError returns a 500 response without leaking internals
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code:    0,
		Message: "Server error",
	})
}

// Error maps an application error to its canonical status. Unknown errors
// become 500 with a generic message.
func Error(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Status(), Response{
			Code:    0,
			Message: appErr.Message,
		})
		return
	}
	ServerError(c)
}
