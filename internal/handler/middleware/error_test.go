//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"signup-engine/internal/handler/httperr"
	"signup-engine/internal/handler/middleware"
	"signup-engine/internal/pkg/errs"
	"signup-engine/internal/usecase/commands"
	"signup-engine/tests/common/httptest"

	"github.com/gin-gonic/gin"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	r.GET("/panic", func(*gin.Context) { panic("boom") })
	r.GET("/busy", func(c *gin.Context) {
		httperr.AbortWithAppError(c, errs.Wrap(commands.ErrTransactionFailure, "create reservation"))
	})
	r.GET("/silent", func(c *gin.Context) {
		_ = c.Error(errs.New("unhandled"))
	})
	return r
}

func TestCustomRecovery(t *testing.T) {
	rec := httptest.PerformRequest(t, newErrorRouter(), http.MethodGet, "/panic", nil, "")
	httptest.AssertErrorCode(t, rec, http.StatusInternalServerError, "INTERNAL")
}

func TestErrorHandler(t *testing.T) {
	t.Run("classified error keeps status and retry hint", func(t *testing.T) {
		rec := httptest.PerformRequest(t, newErrorRouter(), http.MethodGet, "/busy", nil, "")
		httptest.AssertErrorCode(t, rec, http.StatusServiceUnavailable, "TRANSACTION_FAILURE")
		httptest.AssertHeaders(t, rec, map[string]string{"Retry-After": httperr.RetryAfterSeconds})
	})

	t.Run("unwritten private error becomes 500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, newErrorRouter(), http.MethodGet, "/silent", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}
