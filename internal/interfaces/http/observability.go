package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/menuqr-api/internal/infrastructure/metrics"
)

// LocalLogger key de Fiber Locals con el logger del request.
const LocalLogger = "logger"

// RequestLogger deja en Locals un sublogger con el request id y registra cada request al terminar.
// Debe ir después de requestid.New().
func RequestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqLog := log.With().Str("request_id", requestID(c)).Logger()
		c.Locals(LocalLogger, reqLog)

		start := time.Now()
		err := c.Next()
		reqLog.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}

// Metrics cuenta requests por método, ruta registrada y status.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		metrics.HTTPRequestsTotal.WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(status)).Inc()
		return err
	}
}

func loggerFrom(c *fiber.Ctx) *zerolog.Logger {
	if l, ok := c.Locals(LocalLogger).(zerolog.Logger); ok {
		return &l
	}
	nop := zerolog.Nop()
	return &nop
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok {
		return id
	}
	return ""
}
