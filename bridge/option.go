package bridge

import (
	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/lone-faerie/unitconv/log"
)

type Option func(*Bridge)

// WithClient sets the client used by the bridge instead of one created
// from the config.
func WithClient(c mqtt.Client) Option {
	return func(b *Bridge) {
		b.client = c
	}
}

// WithPrecision sets the number of digits after the decimal point that
// results are rounded to.
func WithPrecision(prec int) Option {
	return func(b *Bridge) {
		b.SetPrecision(prec)
	}
}

// WithLogLevel routes the loggers of the MQTT client package to the default
// logger for every level at or above level.
func WithLogLevel(level log.Level) Option {
	return func(b *Bridge) {
		var noop mqtt.NOOPLogger
		mqtt.ERROR, mqtt.CRITICAL, mqtt.WARN, mqtt.DEBUG = noop, noop, noop, noop
		if level <= log.LevelError {
			mqtt.ERROR = log.ErrorLogger()
			mqtt.CRITICAL = log.ErrorLogger()
		}
		if level <= log.LevelWarn {
			mqtt.WARN = log.WarnLogger()
		}
		if level <= log.LevelDebug {
			mqtt.DEBUG = log.DebugLogger()
		}
	}
}
