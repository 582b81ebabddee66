package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs request outcomes as key=value lines and recovers
// from handler panics with a JSON 500.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				logRequest(c, start, "panic", err.Error())
				log.Printf("panic_stack=%s", debug.Stack())

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INTERNAL_SERVER_ERROR",
						"message": "Internal Server Error",
					},
				})
				return
			}

			if c.Writer.Status() >= http.StatusInternalServerError {
				logRequest(c, start, "http_error", fmt.Sprintf("status=%d", c.Writer.Status()))
			}
		}()

		c.Next()
	}
}

func logRequest(c *gin.Context, start time.Time, errType, message string) {
	log.Printf(
		"request_error type=%s status=%d method=%s path=%s query=%s client_ip=%s user_id=%d role=%s latency=%s error=%q",
		errType,
		c.Writer.Status(),
		c.Request.Method,
		c.Request.URL.Path,
		c.Request.URL.RawQuery,
		c.ClientIP(),
		c.GetInt64("user_id"),
		c.GetString("role"),
		time.Since(start),
		message,
	)
}
