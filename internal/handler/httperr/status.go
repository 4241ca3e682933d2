package httperr

import (
	"net/http"

	"signup-engine/internal/pkg/errs"
	"signup-engine/internal/usecase/commands"
	"signup-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// RetryAfterSeconds is advertised on 503 responses for transaction failures.
const RetryAfterSeconds = "1"

type mapping struct {
	target error
	status int
	code   string
	msg    string
}

var mappings = []mapping{
	{commands.ErrInvalidIdentifier, http.StatusBadRequest, "INVALID_IDENTIFIER", "Invalid identifier"},
	{commands.ErrInvalidRequestShape, http.StatusBadRequest, "INVALID_REQUEST_SHAPE", "Invalid reservation request"},
	{commands.ErrInvalidSessionDetails, http.StatusBadRequest, "INVALID_SESSION_DETAILS", "Invalid session details"},
	{queries.ErrInvalidFilter, http.StatusBadRequest, "INVALID_FILTER", "Invalid filter"},
	{commands.ErrExceedsCategoryCapacity, http.StatusConflict, "EXCEEDS_CATEGORY_CAPACITY", "Not enough seats in the requested category"},
	{commands.ErrExceedsUnrestrictedCapacity, http.StatusConflict, "EXCEEDS_UNRESTRICTED_CAPACITY", "Not enough unrestricted seats"},
	{commands.ErrExceedsTotalCapacity, http.StatusConflict, "EXCEEDS_TOTAL_CAPACITY", "Session is full"},
	{commands.ErrNotFound, http.StatusNotFound, "NOT_FOUND", "Not found"},
	{commands.ErrUnauthorized, http.StatusForbidden, "UNAUTHORIZED", "Not allowed"},
	{commands.ErrTransactionFailure, http.StatusServiceUnavailable, "TRANSACTION_FAILURE", "Temporarily unavailable, retry later"},
}

// Classify resolves an application error to its HTTP status, error code and
// client message. Unknown errors are internal.
func Classify(err error) (int, string, string) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			return m.status, m.code, m.msg
		}
	}
	return http.StatusInternalServerError, "INTERNAL", "Internal server error"
}

// AbortWithAppError aborts with the status Classify picks for err.
func AbortWithAppError(c *gin.Context, err error) {
	status, code, msg := Classify(err)
	if status == http.StatusServiceUnavailable {
		c.Header("Retry-After", RetryAfterSeconds)
	}
	abort(c, status, err, code, msg, nil)
}
