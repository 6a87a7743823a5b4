package middleware

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/shuvo881/virtual-try-on/pkg/log"
)

// Request bodies above this size are not logged. Detection uploads
// carry whole camera frames; logging them would bloat the log files.
const maxLoggedBodySize = 4 * 1024

func LoggerConfig() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID, ok := c.Locals("X-Request-ID").(string)
		if !ok || requestID == "" {
			requestID = "unknown"
		}

		c.Locals("request_id", requestID)

		err := c.Next()

		latency := time.Since(start)
		status := c.Response().StatusCode()

		if err != nil && status == fiber.StatusInternalServerError {
			return err
		}

		logFields := log.Fields{
			"request_id":    requestID,
			"method":        c.Method(),
			"path":          c.Path(),
			"status":        status,
			"latency_ms":    latency.Milliseconds(),
			"ip":            c.IP(),
			"host":          c.Hostname(),
			"user_agent":    c.Get("User-Agent"),
			"referer":       c.Get("Referer"),
			"response_size": len(c.Response().Body()),
		}

		if body := c.Request().Body(); len(body) > 0 {
			logFields["request_body"] = sanitizeRequestBody(body)
		}

		if status >= 500 {
			log.Error(logFields, "Server error")
		} else if status >= 400 {
			log.Warn(logFields, "Client error")
		} else {
			log.Info(logFields, "Success")
		}

		return err
	}
}

func sanitizeRequestBody(body []byte) string {
	if len(body) > maxLoggedBodySize {
		return "[large body omitted]"
	}

	var jsonBody map[string]interface{}
	if err := json.Unmarshal(body, &jsonBody); err != nil {
		return "[non-JSON body]"
	}

	redactedFields := []string{
		"image_base64", "image", "frame",
		"password", "token", "secret", "key", "auth",
		"credential", "authorization",
	}

	for _, field := range redactedFields {
		if _, exists := jsonBody[field]; exists {
			jsonBody[field] = "[REDACTED]"
		}
	}

	sanitized, err := json.Marshal(jsonBody)
	if err != nil {
		return "[sanitization-failed]"
	}

	return string(sanitized)
}

type loggingMiddleware struct {
	logger *logrus.Logger
}

func newLoggingMiddleware(logger *logrus.Logger) *loggingMiddleware {
	return &loggingMiddleware{
		logger: logger,
	}
}

func (m *middleware) NewLoggingMiddleware(ctx *fiber.Ctx) error {
	return ctx.Next()
}
