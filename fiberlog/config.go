package fiberlog

import "github.com/sirupsen/logrus"

// Config controls the request-log middleware. A nil Logger falls back to
// the logrus standard logger.
type Config struct {
	Logger *logrus.Logger
	Tags   []string
}

// ConfigDefault logs the bare request line.
var ConfigDefault = Config{
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
	},
}
