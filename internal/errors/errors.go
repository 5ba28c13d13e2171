// Package errors holds the gin response helpers used by every REST handler.
// Handlers call exactly one helper per failed request; services return
// wrapped errors and never log, so each failure is logged once, here.
package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deyna256/codeforces-rag/internal/logger"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

const (
	CodeNotFound        = "not_found"
	CodeValidationError = "validation_error"
	CodeServerError     = "server_error"
	CodeBadRequest      = "bad_request"
	CodeTooManyRequests = "too_many_requests"
	CodeUpstreamError   = "upstream_error"
)

// NotFound answers 404 for a missing resource.
func NotFound(c *gin.Context, resource string) {
	msg := "resource not found"
	if resource != "" {
		msg = resource + " not found"
	}

	c.JSON(http.StatusNotFound, ErrorResponse{Error: CodeNotFound, Message: msg})
}

// BadRequest answers 400 for requests that are well-formed but unusable,
// like a gym contest URL.
func BadRequest(c *gin.Context, message string, err error) {
	if message == "" {
		message = "invalid request"
	}

	resp := ErrorResponse{Error: CodeBadRequest, Message: message}
	if err != nil {
		resp.Details = classifyError(err).sanitized
	}

	c.JSON(http.StatusBadRequest, resp)
}

// ValidationError answers 400 for binding failures.
func ValidationError(c *gin.Context, err error) {
	resp := ErrorResponse{Error: CodeValidationError, Message: "request validation failed"}
	if err != nil {
		resp.Details = classifyError(err).sanitized
	}

	c.JSON(http.StatusBadRequest, resp)
}

// InternalError answers 500 and logs the full error server-side.
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	logFailure(c, message, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   CodeServerError,
		Message: message,
		Details: classifyError(err).sanitized,
	})
}

// UpstreamError answers 502 when Codeforces or an LLM provider failed.
func UpstreamError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "upstream service failed"
	}

	logFailure(c, message, err)
	c.JSON(http.StatusBadGateway, ErrorResponse{
		Error:   CodeUpstreamError,
		Message: message,
		Details: classifyError(err).sanitized,
	})
}

// TooManyRequests answers 429.
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "too many requests"
	}

	c.JSON(http.StatusTooManyRequests, ErrorResponse{
		Error:   CodeTooManyRequests,
		Message: message,
	})
}

func logFailure(c *gin.Context, message string, err error) {
	logger.ErrorErr(err, message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
}
