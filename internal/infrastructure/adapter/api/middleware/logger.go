package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/timewriter/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/timewriter/internal/domain/port/core"
	"github.com/amirhossein-jamali/timewriter/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timewriter/internal/domain/usecase/timer"
)

// latencySettings renders request latency as milliseconds with microsecond resolution
var latencySettings = entity.Settings{DecimalPlaces: entity.Ptr(3)}

// Logger middleware logs incoming requests and their responses. Latency is
// measured with a stopwatch on clock and rendered by w.
func Logger(logger coreport.Logger, clock coreport.TimeProvider, w usecase.TimeWriterUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		sw := timer.NewStopwatch(clock)
		_ = sw.Start()
		path := c.Request.URL.Path
		method := c.Request.Method
		ip := c.ClientIP()

		c.Next()

		elapsed, _ := sw.Stop()
		statusCode := c.Writer.Status()

		fields := map[string]any{
			"method":      method,
			"path":        path,
			"status":      statusCode,
			"ip":          ip,
			"request_id":  c.GetHeader("X-Request-ID"),
			"user_agent":  c.Request.UserAgent(),
			"errors":      c.Errors.Errors(),
			"status_text": statusText(statusCode),
		}
		if latency, err := w.Write(elapsed, usecase.WriteOptions{To: entity.Millisecond, Settings: latencySettings}); err == nil {
			fields["latency"] = latency
		}
		if ms, err := elapsed.To(entity.Millisecond); err == nil {
			fields["latency_ms"] = ms
		}

		logger.Info("Request processed", fields)
	}
}

// statusText returns the text for the HTTP status code
func statusText(code int) string {
	switch {
	case code >= 100 && code < 200:
		return "Informational"
	case code >= 200 && code < 300:
		return "Success"
	case code >= 300 && code < 400:
		return "Redirect"
	case code >= 400 && code < 500:
		return "Client Error"
	default:
		return "Server Error"
	}
}
