package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response body. Status is "success" on the
// happy path; anything else marks a failure regardless of HTTP code.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

const statusSuccess = "success"

// Success renders a success envelope with the given payload.
func Success(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Envelope{
		Status:  statusSuccess,
		Message: message,
		Data:    data,
	})
}

// OK renders a 200 success envelope.
func OK(c *gin.Context, message string, data any) {
	Success(c, http.StatusOK, message, data)
}

// Created renders a 201 success envelope.
func Created(c *gin.Context, message string, data any) {
	Success(c, http.StatusCreated, message, data)
}

// Fail records the error for the centralized error handler and aborts
// the handler chain. The handler middleware picks the HTTP status and
// message off the error.
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
