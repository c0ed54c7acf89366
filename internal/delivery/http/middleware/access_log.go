package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AccessLogMiddleware struct {
	logger *log.Logger
}

func NewAccessLogMiddleware(logger *log.Logger) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &AccessLogMiddleware{logger: logger}
}

// Middleware tags every request with an X-Request-ID (generated when the
// client sends none) and logs one line per request after the handler runs.
func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("X-Request-ID", rid)

		err := c.Next()

		m.logger.Printf("[HTTP] %s %s | rid=%s status=%d latency=%s ip=%s ua=%q",
			c.Method(), c.OriginalURL(), rid,
			c.Response().StatusCode(), time.Since(start).Round(time.Microsecond),
			c.IP(), c.Get("User-Agent"),
		)

		return err
	}
}
