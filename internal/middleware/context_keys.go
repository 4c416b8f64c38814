package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// operatorKey is the key used to store the authenticated operator in the request context.
const operatorKey = contextKey("operator")

// WithOperator returns a copy of ctx carrying the operator username.
func WithOperator(ctx context.Context, operator string) context.Context {
	return context.WithValue(ctx, operatorKey, operator)
}

// GetOperatorFromContext retrieves the authenticated operator from the Gin request.
// It returns the operator and a boolean indicating if it was found.
func GetOperatorFromContext(c *gin.Context) (string, bool) {
	operator, ok := c.Request.Context().Value(operatorKey).(string)
	if !ok || operator == "" {
		return "", false
	}
	return operator, true
}
