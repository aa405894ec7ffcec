package logging

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// LogrusLogger adapts a logrus entry to Logger. Key–value args become logrus
// fields; a trailing key without a value is stored under "!BADKEY", matching
// slog's convention.
type LogrusLogger struct {
	e *logrus.Entry
}

func NewLogrusLogger(l *logrus.Logger) *LogrusLogger {
	return &LogrusLogger{e: logrus.NewEntry(l)}
}

// NewTextLogrusLogger builds a LogrusLogger with the text formatter.
// When json is true the JSON formatter is used instead.
func NewTextLogrusLogger(w io.Writer, level Level, json bool) *LogrusLogger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrusLevel(level))
	if json {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
	return NewLogrusLogger(l)
}

func logrusLevel(level Level) logrus.Level {
	switch level {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelWarn:
		return logrus.WarnLevel
	case LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func fields(args []any) logrus.Fields {
	f := make(logrus.Fields, len(args)/2+1)
	for i := 0; i < len(args); i += 2 {
		if i+1 >= len(args) {
			f["!BADKEY"] = args[i]
			break
		}
		f[fmt.Sprint(args[i])] = args[i+1]
	}
	return f
}

func (l *LogrusLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.e.WithContext(ctx).WithFields(fields(args)).Debug(msg)
}

func (l *LogrusLogger) Info(ctx context.Context, msg string, args ...any) {
	l.e.WithContext(ctx).WithFields(fields(args)).Info(msg)
}

func (l *LogrusLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.e.WithContext(ctx).WithFields(fields(args)).Warn(msg)
}

func (l *LogrusLogger) Error(ctx context.Context, msg string, args ...any) {
	l.e.WithContext(ctx).WithFields(fields(args)).Error(msg)
}

func (l *LogrusLogger) With(args ...any) Logger {
	return &LogrusLogger{e: l.e.WithFields(fields(args))}
}
