package handlers

import (
	"net/http"

	"finanzas/internal/errors"

	"github.com/labstack/echo/v4"
)

// All handlers report failures through the two helpers below:
//
// 1. SendError - client errors and business rule violations (4xx responses),
//    e.g. SendError(c, errors.TransactionNotFound) or
//    SendError(c, errors.ValidationGeneral, errors.WithDetails("...")).
//
// 2. SendSystemError - store or internal failures (500 responses). The raw
//    error never reaches the client; it is surfaced through the error handler
//    middleware for logging only.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with a generic message so internal
// details stay out of the response body
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
