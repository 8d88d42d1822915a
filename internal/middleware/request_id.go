package middleware

import (
	"log"
	"time"

	"github.com/dayflow-dev/dayflow/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID tags the request with an id, echoed back in the response
// headers and included in the access log line.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(types.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx.Set(types.ContextRequestIDKey, requestID)
		ctx.Header(types.RequestIDHeader, requestID)

		start := time.Now()
		ctx.Next()

		log.Printf("[%s] %s %s -> %d (%v)", requestID, ctx.Request.Method, ctx.Request.URL.Path, ctx.Writer.Status(), time.Since(start))
	}
}
