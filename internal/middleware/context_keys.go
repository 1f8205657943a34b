package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey is the type of keys stored by this package.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey    = contextKey("logger")
	requestIDCtxKey = contextKey("requestID")
)

// OperatorHeader optionally identifies the operator using the dashboard.
// It is only used to attribute analytics events.
const OperatorHeader = "X-Operator-ID"

// GetRequestIDFromCtx returns the request ID stored by StructuredLoggingMiddleware.
func GetRequestIDFromCtx(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDCtxKey).(string)
	return requestID, ok && requestID != ""
}

// GetOperatorID returns the operator for analytics attribution, falling back
// to the request ID when the header is absent.
func GetOperatorID(c *gin.Context) (string, bool) {
	if operator := c.GetHeader(OperatorHeader); operator != "" {
		return operator, true
	}
	return GetRequestIDFromCtx(c.Request.Context())
}
