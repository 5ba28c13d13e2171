package errors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/test", handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(w, req)

	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestNotFound(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		NotFound(c, "problem")
	})

	assert.Equal(t, http.StatusNotFound, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, CodeNotFound, resp.Error)
	assert.Equal(t, "problem not found", resp.Message)
}

func TestBadRequest(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		BadRequest(c, "invalid contest URL", fmt.Errorf("unrecognized URL"))
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, CodeBadRequest, resp.Error)
	assert.Equal(t, "invalid contest URL", resp.Message)
	assert.Equal(t, "unrecognized URL", resp.Details)
}

func TestValidationError(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		ValidationError(c, fmt.Errorf("url is required"))
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, CodeValidationError, decodeError(t, w).Error)
}

func TestInternalError(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		InternalError(c, "failed to store problem", fmt.Errorf("boom"))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, CodeServerError, decodeError(t, w).Error)
}

func TestUpstreamError(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		UpstreamError(c, "", fmt.Errorf("codeforces unreachable"))
	})

	assert.Equal(t, http.StatusBadGateway, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, CodeUpstreamError, resp.Error)
	assert.Equal(t, "upstream service failed", resp.Message)
}

func TestTooManyRequests(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		TooManyRequests(c, "")
	})

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "too many requests", decodeError(t, w).Message)
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category string
	}{
		{"no rows", pgx.ErrNoRows, CategoryNotFound},
		{"deadline", context.DeadlineExceeded, CategoryTimeout},
		{"timeout string", fmt.Errorf("request timeout after 30s"), CategoryTimeout},
		{"not found string", fmt.Errorf("contest not found"), CategoryNotFound},
		{"database string", fmt.Errorf("postgres connection pool exhausted"), CategoryDatabase},
		{"network string", fmt.Errorf("dial tcp: connection refused"), CategoryNetwork},
		{"unknown", fmt.Errorf("something odd"), CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := classifyError(tt.err)
			assert.Equal(t, tt.category, info.category)
			assert.Equal(t, tt.err.Error(), info.sanitized)
		})
	}
}

func TestClassifyErrorSanitizesInProduction(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	info := classifyError(fmt.Errorf("postgres password authentication failed for user rag"))

	assert.Equal(t, CategoryDatabase, info.category)
	assert.Equal(t, "database operation failed", info.sanitized)
}
