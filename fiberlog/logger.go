package fiberlog

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

const requestMessage = "api request"

// New returns a fiber middleware writing one structured log entry per
// request. Responses with a status of 300 and above log at warn level,
// preflight OPTIONS requests are skipped.
func New(config ...Config) fiber.Handler {
	cfg := ConfigDefault
	if len(config) > 0 {
		cfg = config[0]
	}
	d := &data{pid: os.Getpid()}
	ftm := getFuncTagMap(cfg, d)
	return func(c *fiber.Ctx) error {
		d.start = time.Now()
		err := c.Next()
		d.end = time.Now()
		if c.Method() == fiber.MethodOptions {
			return err
		}

		logger := log.StandardLogger()
		if cfg.Logger != nil {
			logger = cfg.Logger
		}
		entry := logger.WithFields(requestFields(ftm, c, d))
		if c.Response().StatusCode() >= fiber.StatusMultipleChoices {
			entry.Warn(requestMessage)
		} else {
			entry.Info(requestMessage)
		}
		return err
	}
}

// requestFields evaluates the configured tag functions, dropping empty
// string values.
func requestFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	fields := make(log.Fields, len(ftm))
	for tag, fn := range ftm {
		value := fn(c, d)
		if s, ok := value.(string); ok {
			if s != "" {
				fields[tag] = s
			}
			continue
		}
		fields[tag] = value
	}
	return fields
}
