package session

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultTickInterval is the wall-clock length of one tick.
const DefaultTickInterval = time.Second

// Options represent the runtime options of a Runner.
type Options struct {
	Logger       logrus.FieldLogger
	TickInterval time.Duration
}

// DefaultOptions returns the default options for a Runner.
func DefaultOptions() Options {
	return Options{
		Logger:       loggerWithFields(logrus.New()),
		TickInterval: DefaultTickInterval,
	}
}

// WithLogger replaces the Runner's logger.
func (opts Options) WithLogger(logger logrus.FieldLogger) Options {
	opts.Logger = logger.WithField("pkg", "session")
	return opts
}

// WithLogLevel updates the log level of the Runner's logger.
func (opts Options) WithLogLevel(level logrus.Level) Options {
	logger := logrus.New()
	logger.SetLevel(level)
	opts.Logger = loggerWithFields(logger)
	return opts
}

// WithLogOutput updates where the Runner's logger writes to.
func (opts Options) WithLogOutput(output io.Writer) Options {
	logger := logrus.New()
	logger.SetOutput(output)
	opts.Logger = loggerWithFields(logger)
	return opts
}

// WithTickInterval updates the wall-clock length of one tick.
func (opts Options) WithTickInterval(interval time.Duration) Options {
	opts.TickInterval = interval
	return opts
}

func loggerWithFields(logger *logrus.Logger) logrus.FieldLogger {
	return logger.WithField("pkg", "session")
}
