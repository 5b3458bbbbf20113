// Package logging provides the process-wide logger used across relay.
//
// It wraps a single logrus.Logger instance behind the five levels the
// server's collaborator contract names: Debug, Info, Warning, Error and
// Critical. Critical does not terminate the process — a single bad
// request or connection must never take the reactor down with it.
package logging

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	once     sync.Once
	instance *logrus.Logger
)

// Get returns the process-wide logger, initializing it on first use.
func Get() *logrus.Logger {
	once.Do(func() {
		instance = logrus.New()
		instance.SetLevel(logrus.DebugLevel)
		instance.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	})
	return instance
}

// SetLevel adjusts the minimum level emitted by the process-wide logger.
func SetLevel(lvl logrus.Level) {
	Get().SetLevel(lvl)
}

// Debug logs at DEBUG level.
func Debug(args ...interface{}) { Get().Debug(args...) }

// Debugf logs a formatted message at DEBUG level.
func Debugf(format string, args ...interface{}) { Get().Debugf(format, args...) }

// Info logs at INFO level.
func Info(args ...interface{}) { Get().Info(args...) }

// Infof logs a formatted message at INFO level.
func Infof(format string, args ...interface{}) { Get().Infof(format, args...) }

// Warning logs at WARNING level.
func Warning(args ...interface{}) { Get().Warn(args...) }

// Warningf logs a formatted message at WARNING level.
func Warningf(format string, args ...interface{}) { Get().Warnf(format, args...) }

// Error logs at ERROR level.
func Error(args ...interface{}) { Get().Error(args...) }

// Errorf logs a formatted message at ERROR level.
func Errorf(format string, args ...interface{}) { Get().Errorf(format, args...) }

// Critical logs at ERROR level tagged critical=true. It intentionally
// does not call os.Exit: a CRITICAL log line marks an unrecoverable
// condition for a single connection or subsystem, not the process.
func Critical(args ...interface{}) {
	Get().WithField("critical", true).Error(args...)
}

// Criticalf logs a formatted CRITICAL message. See Critical.
func Criticalf(format string, args ...interface{}) {
	Get().WithField("critical", true).Errorf(format, args...)
}
