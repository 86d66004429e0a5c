package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/jhoicas/stock-alerts-api/pkg/logger"
)

// HeaderRequestID cabecera de correlación; se respeta si el cliente la envía.
const HeaderRequestID = "X-Request-ID"

const localsLogger = "logger"

// RequestLogger registra método, ruta, status y latencia de cada petición,
// y deja en Locals un sublogger con el request_id.
func RequestLogger(log *logger.Logger) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx) error {
		start := time.Now()

		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(HeaderRequestID, reqID)

		reqLog := log.With().Str("request_id", reqID).Logger()
		c.Locals(localsLogger, &reqLog)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		path := c.Path()
		if q := string(c.Request().URI().QueryString()); q != "" {
			path += "?" + q
		}
		reqLog.Info().
			Str("method", c.Method()).
			Str("path", path).
			Str("ip", c.IP()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("petición procesada")
		return err
	}
}

// requestLogger devuelve el sublogger de la petición o uno nulo si no pasó por RequestLogger.
func requestLogger(c *fiber.Ctx) *zerolog.Logger {
	if l, ok := c.Locals(localsLogger).(*zerolog.Logger); ok && l != nil {
		return l
	}
	nop := zerolog.Nop()
	return &nop
}
