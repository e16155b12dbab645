package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is the taxonomy carried from usecases up to the HTTP layer.
// Status picks the HTTP code; Message is safe to show to the caller.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

func Internal(message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message}
}

// OK renders the success envelope with status 200.
func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// Created renders the success envelope with status 201.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// Fail renders the uniform error envelope. Errors outside the taxonomy
// collapse to a generic 500 so internals never leak to the caller.
func Fail(c *gin.Context, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = Internal("Something went wrong!")
	}

	c.JSON(appErr.Status, gin.H{
		"success": false,
		"message": appErr.Message,
		"status":  appErr.Status,
	})
}

// AbortWith renders the error envelope and stops the middleware chain.
func AbortWith(c *gin.Context, err error) {
	Fail(c, err)
	c.Abort()
}
