package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Fields carries structured context attached to log entries, such as the
// vendor ID or attribute name being encoded.
type Fields map[string]any

// Logger is the structured logging surface used by the command line tools.
// Library code never logs: encoding stays silent so it can run in hot paths.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
}

type logrusLogger struct {
	entry *logrus.Entry
}

// New creates a logrus backed logger writing to stderr at the given level.
// Unknown level names fall back to info.
func New(level string) Logger {
	return newLogrus(level, nil)
}

// NewWithOutput creates a logrus backed logger writing to the given sink.
func NewWithOutput(level string, out io.Writer) Logger {
	return newLogrus(level, out)
}

func newLogrus(level string, out io.Writer) Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if out != nil {
		logger.SetOutput(out)
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	return &logrusLogger{entry: logrus.NewEntry(logger)}
}

func (l *logrusLogger) Debugf(format string, args ...any) {
	l.entry.Debugf(format, args...)
}

func (l *logrusLogger) Infof(format string, args ...any) {
	l.entry.Infof(format, args...)
}

func (l *logrusLogger) Warnf(format string, args ...any) {
	l.entry.Warnf(format, args...)
}

func (l *logrusLogger) Errorf(format string, args ...any) {
	l.entry.Errorf(format, args...)
}

func (l *logrusLogger) WithField(key string, value any) Logger {
	return &logrusLogger{entry: l.entry.WithField(key, value)}
}

func (l *logrusLogger) WithFields(fields Fields) Logger {
	return &logrusLogger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(string, ...any)        {}
func (nopLogger) WithField(string, any) Logger { return nopLogger{} }
func (nopLogger) WithFields(Fields) Logger     { return nopLogger{} }
