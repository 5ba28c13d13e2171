package problems

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deyna256/codeforces-rag/internal/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// request validation rejects bad input before the problem service is touched,
// so a nil service is safe here
func TestParseHandlerValidation(t *testing.T) {
	router := gin.New()
	router.POST("/problems", ParseHandler(nil))

	tests := []struct {
		name      string
		body      string
		errorCode string
	}{
		{"missing url", `{}`, errors.CodeValidationError},
		{"contest url", `{"url": "https://codeforces.com/contest/2185"}`, errors.CodeBadRequest},
		{"malformed url", `{"url": "codeforces.com/problemset/problem/2185/A"}`, errors.CodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/problems", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp errors.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.errorCode, resp.Error)
		})
	}
}

func TestListQueryBinding(t *testing.T) {
	router := gin.New()

	var bound ListQuery
	router.GET("/problems", func(c *gin.Context) {
		if err := c.ShouldBindQuery(&bound); err != nil {
			errors.ValidationError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/problems?rating_min=800&rating_max=1200&tags=dp&tags=math&contest_id=2185&limit=20", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, bound.RatingMin)
	require.NotNil(t, bound.RatingMax)
	assert.Equal(t, 800, *bound.RatingMin)
	assert.Equal(t, 1200, *bound.RatingMax)
	assert.Equal(t, []string{"dp", "math"}, bound.Tags)
	assert.Equal(t, "2185", bound.ContestID)
	assert.Equal(t, 20, bound.Limit)
}

func TestListQueryDefaultLimit(t *testing.T) {
	router := gin.New()

	var bound ListQuery
	router.GET("/problems", func(c *gin.Context) {
		if err := c.ShouldBindQuery(&bound); err != nil {
			errors.ValidationError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/problems", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 50, bound.Limit)
}
